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

package driver

import (
	"fmt"
	"sync"
)

// Status codes reported by the simulator, using the vendor driver's
// encoding for the matching conditions.
const (
	// SimStatusInvalidTask is reported when a call references an unknown
	// task handle.
	SimStatusInvalidTask Status = -200088
	// SimStatusNoChannel is reported when reading from a task that has no
	// channels.
	SimStatusNoChannel Status = -200477
)

// Sim is an in-memory driver used when no hardware is present.
// It accepts every structurally valid call, records it for inspection, and
// synthesizes counter values that advance on every read.
type Sim struct {
	mutex      sync.Mutex
	nextHandle TaskHandle
	tasks      map[TaskHandle]*simTask
	calls      []Call
	messages   map[Status]string
	failCode   Status
	failInfo   string
	lastInfo   string
}

type simTask struct {
	name     string
	channels []string
	running  bool
	value    float64
}

var _ API = &Sim{}

// NewSim creates a fresh simulated driver.
func NewSim() *Sim {
	return &Sim{
		nextHandle: 1,
		tasks:      make(map[TaskHandle]*simTask),
		messages: map[Status]string{
			SimStatusInvalidTask: "task specified is invalid or does not exist",
			SimStatusNoChannel:   "task contains no channels",
		},
	}
}

// FailNextCreate makes the next CreateChannel call fail with the given
// status code, message and extended diagnostic.
func (s *Sim) FailNextCreate(code Status, message string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failCode = code
	s.failInfo = message
	s.messages[code] = message
}

// Calls returns every CreateChannel invocation seen so far, in order.
func (s *Sim) Calls() []Call {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	result := make([]Call, len(s.calls))
	copy(result, s.calls)
	return result
}

// TaskChannels returns the names of the channels registered on the given
// task inside the simulator.
func (s *Sim) TaskChannels(h TaskHandle) []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	t, ok := s.tasks[h]
	if !ok {
		return nil
	}
	result := make([]string, len(t.channels))
	copy(result, t.channels)
	return result
}

// CreateTask creates a new task inside the driver.
func (s *Sim) CreateTask(name string) (TaskHandle, Status) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	h := s.nextHandle
	s.nextHandle++
	s.tasks[h] = &simTask{name: name}
	return h, 0
}

// ClearTask releases the task and every channel registered on it.
func (s *Sim) ClearTask(h TaskHandle) Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.tasks[h]; !ok {
		return s.fail(SimStatusInvalidTask)
	}
	delete(s.tasks, h)
	return 0
}

// StartTask transitions the task to the running state.
func (s *Sim) StartTask(h TaskHandle) Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	t, ok := s.tasks[h]
	if !ok {
		return s.fail(SimStatusInvalidTask)
	}
	t.running = true
	return 0
}

// StopTask transitions the task back to the committed state.
func (s *Sim) StopTask(h TaskHandle) Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	t, ok := s.tasks[h]
	if !ok {
		return s.fail(SimStatusInvalidTask)
	}
	t.running = false
	return 0
}

// CreateChannel records the call and registers the channel name on the task.
func (s *Sim) CreateChannel(call Call) Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.calls = append(s.calls, call)
	code := s.failCode
	if code != 0 {
		s.failCode = 0
		s.lastInfo = s.failInfo
		// An error aborts the call; a warning still creates the channel.
		if !code.Warning() {
			return code
		}
	}
	t, ok := s.tasks[call.Task]
	if !ok {
		return s.fail(SimStatusInvalidTask)
	}
	name := call.Name
	if name == "" {
		name = call.Channel
	}
	t.channels = append(t.channels, name)
	return code
}

// ReadCounterScalarF64 synthesizes a counter value that advances by one on
// every read. The timeout is ignored; the simulator never blocks.
func (s *Sim) ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, Status) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	t, ok := s.tasks[h]
	if !ok {
		return 0, s.fail(SimStatusInvalidTask)
	}
	if len(t.channels) == 0 {
		return 0, s.fail(SimStatusNoChannel)
	}
	t.value++
	return t.value, 0
}

// ErrorString returns the driver's message for the given status code.
func (s *Sim) ErrorString(code Status) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if msg, ok := s.messages[code]; ok {
		return msg
	}
	return fmt.Sprintf("status code %d", int32(code))
}

// ExtendedErrorInfo returns the diagnostic for the most recent failure.
func (s *Sim) ExtendedErrorInfo() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastInfo
}

// fail records the extended diagnostic for the given code and returns it.
// Callers must hold the mutex.
func (s *Sim) fail(code Status) Status {
	s.lastInfo = s.messages[code]
	return code
}
