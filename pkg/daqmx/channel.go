// Copyright 2026 The CounterWorker authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package daqmx

// Channel is a virtual channel that has been created on a task.
// It pairs the owning task reference with the resolved virtual channel
// name and is immutable after creation. There is no per-channel native
// teardown; the channel lives until the owning task is cleared.
type Channel struct {
	task *Task
	name string
}

// Name returns the resolved virtual channel name.
func (c Channel) Name() string { return c.name }

// Task returns the task owning this channel.
func (c Channel) Task() *Task { return c.task }
