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

// TaskHandle is an opaque reference to a driver-resident task configuration.
// It is owned and sized by the driver; callers only hand it back on
// subsequent calls.
type TaskHandle uintptr

// Status is the signed integer result of a driver call.
// Zero means success, negative values are errors, positive values are
// warnings.
type Status int32

// Success returns true when the status code indicates success.
func (s Status) Success() bool { return s == 0 }

// Warning returns true when the status code indicates a warning.
func (s Status) Warning() bool { return s > 0 }

// API of the vendor driver, the closed library that owns all hardware
// semantics. The real implementation crosses a foreign-call boundary;
// the simulator keeps everything in memory.
type API interface {
	// CreateTask creates a new task inside the driver.
	CreateTask(name string) (TaskHandle, Status)
	// ClearTask releases the task and every channel registered on it.
	ClearTask(h TaskHandle) Status
	// StartTask transitions the task to the running state.
	StartTask(h TaskHandle) Status
	// StopTask transitions the task back to the committed state.
	StopTask(h TaskHandle) Status
	// CreateChannel invokes the channel-creation entry point identified
	// by call.Func, with the argument slots marshalled in the driver's
	// documented order and widths.
	CreateChannel(call Call) Status
	// ReadCounterScalarF64 reads a single sample from the task's channel,
	// waiting at most timeout seconds.
	ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, Status)
	// ErrorString returns the driver's message for the given status code.
	ErrorString(code Status) string
	// ExtendedErrorInfo returns the driver's diagnostic for the most
	// recent failure on the calling thread.
	ExtendedErrorInfo() string
}
