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

import (
	"github.com/rs/zerolog"

	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
)

// WarningPolicy controls what happens when the driver reports a positive
// (warning) status code.
type WarningPolicy int

const (
	// WarningPolicyLog logs the warning and treats the call as successful.
	WarningPolicyLog WarningPolicy = iota
	// WarningPolicyError surfaces warnings as errors.
	WarningPolicyError
)

// TaskOption modifies a task during construction.
type TaskOption func(*Task)

// WithWarningPolicy sets how driver warnings are handled.
func WithWarningPolicy(p WarningPolicy) TaskOption {
	return func(t *Task) {
		t.warningPolicy = p
	}
}

// Task groups channels and their shared timing configuration inside the
// driver. A task must be used from a single goroutine; the driver handle is
// not made safe for concurrent use by this layer.
type Task struct {
	api           driver.API
	log           zerolog.Logger
	h             driver.TaskHandle
	name          string
	warningPolicy WarningPolicy
	closed        bool

	// CI holds the counter input channels of this task.
	CI *CIChannelCollection
}

// NewTask creates a new task inside the driver.
func NewTask(api driver.API, name string, log zerolog.Logger, opts ...TaskOption) (*Task, error) {
	t := &Task{
		api:  api,
		name: name,
		log:  log.With().Str("component", "daqmx-task").Str("task", name).Logger(),
	}
	for _, o := range opts {
		o(t)
	}
	h, status := api.CreateTask(name)
	if err := t.check(status); err != nil {
		return nil, err
	}
	t.h = h
	t.CI = &CIChannelCollection{task: t}
	return t, nil
}

// Name returns the task name.
func (t *Task) Name() string { return t.name }

// Handle returns the opaque driver handle of this task.
func (t *Task) Handle() driver.TaskHandle { return t.h }

// Start transitions the task to the running state.
func (t *Task) Start() error {
	return t.check(t.api.StartTask(t.h))
}

// Stop transitions the task back to the committed state.
func (t *Task) Stop() error {
	return t.check(t.api.StopTask(t.h))
}

// Close clears the task inside the driver, invalidating its handle and all
// channels created on it. Safe to call more than once.
func (t *Task) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.check(t.api.ClearTask(t.h))
}

// ReadCounterScalarF64 reads a single sample from the task's channel,
// waiting at most timeout seconds.
func (t *Task) ReadCounterScalarF64(timeout float64) (float64, error) {
	value, status := t.api.ReadCounterScalarF64(t.h, timeout)
	if err := t.check(status); err != nil {
		return 0, err
	}
	return value, nil
}

// check translates a driver status code into an error, honoring the task's
// warning policy. A nil result means the call counts as successful.
func (t *Task) check(status driver.Status) error {
	if status.Success() {
		return nil
	}
	daqErr := &Error{Code: status, Message: t.api.ErrorString(status)}
	if status.Warning() {
		if t.warningPolicy == WarningPolicyLog {
			t.log.Warn().Int32("code", int32(status)).Msg(daqErr.Message)
			return nil
		}
		return maskAny(daqErr)
	}
	daqErr.Extended = t.api.ExtendedErrorInfo()
	return maskAny(daqErr)
}
