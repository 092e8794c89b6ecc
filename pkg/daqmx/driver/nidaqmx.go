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

//go:build daqmx && cgo

package driver

/*
#cgo LDFLAGS: -lnidaqmx
#include <stdlib.h>
#include <NIDAQmx.h>
*/
import "C"

import (
	"unsafe"
)

const errorBufferSize = 2048

// nidaqmx is the foreign boundary to the vendor driver library.
// Every method marshals its arguments into the fixed layout documented for
// the corresponding DAQmx export and returns the raw status code.
type nidaqmx struct{}

// NewNIDAQmx returns a driver backed by the vendor's NI-DAQmx library.
func NewNIDAQmx() (API, error) {
	return &nidaqmx{}, nil
}

// cstrings tracks C string allocations of a single call.
type cstrings struct {
	ptrs []*C.char
}

func (c *cstrings) get(s string) *C.char {
	p := C.CString(s)
	c.ptrs = append(c.ptrs, p)
	return p
}

func (c *cstrings) free() {
	for _, p := range c.ptrs {
		C.free(unsafe.Pointer(p))
	}
}

func b32(v bool) C.bool32 {
	if v {
		return 1
	}
	return 0
}

// CreateTask creates a new task inside the driver.
func (d *nidaqmx) CreateTask(name string) (TaskHandle, Status) {
	var cs cstrings
	defer cs.free()
	var h C.TaskHandle
	status := C.DAQmxCreateTask(cs.get(name), &h)
	return TaskHandle(uintptr(unsafe.Pointer(h))), Status(status)
}

// ClearTask releases the task and every channel registered on it.
func (d *nidaqmx) ClearTask(h TaskHandle) Status {
	return Status(C.DAQmxClearTask(C.TaskHandle(unsafe.Pointer(h))))
}

// StartTask transitions the task to the running state.
func (d *nidaqmx) StartTask(h TaskHandle) Status {
	return Status(C.DAQmxStartTask(C.TaskHandle(unsafe.Pointer(h))))
}

// StopTask transitions the task back to the committed state.
func (d *nidaqmx) StopTask(h TaskHandle) Status {
	return Status(C.DAQmxStopTask(C.TaskHandle(unsafe.Pointer(h))))
}

// ReadCounterScalarF64 reads a single sample from the task's channel.
func (d *nidaqmx) ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, Status) {
	var value C.float64
	status := C.DAQmxReadCounterScalarF64(
		C.TaskHandle(unsafe.Pointer(h)), C.float64(timeout), &value, nil)
	return float64(value), Status(status)
}

// ErrorString returns the driver's message for the given status code.
func (d *nidaqmx) ErrorString(code Status) string {
	buf := make([]C.char, errorBufferSize)
	C.DAQmxGetErrorString(C.int32(code), &buf[0], errorBufferSize)
	return C.GoString(&buf[0])
}

// ExtendedErrorInfo returns the driver's diagnostic for the most recent
// failure on the calling thread.
func (d *nidaqmx) ExtendedErrorInfo() string {
	buf := make([]C.char, errorBufferSize)
	C.DAQmxGetExtendedErrorInfo(&buf[0], errorBufferSize)
	return C.GoString(&buf[0])
}

// CreateChannel invokes the entry point identified by call.Func.
// The argument slots are unpacked in the exact order and widths documented
// for each export; the Args accessors panic on a layout mismatch.
func (d *nidaqmx) CreateChannel(call Call) Status {
	var cs cstrings
	defer cs.free()

	task := C.TaskHandle(unsafe.Pointer(call.Task))
	counter := cs.get(call.Channel)
	name := cs.get(call.Name)
	a := call.Args

	switch call.Func {
	case FuncCreateCIAngEncoderChan:
		return Status(C.DAQmxCreateCIAngEncoderChan(task, counter, name,
			C.int32(a.I32(0)), b32(a.Bool32(1)), C.float64(a.F64(2)),
			C.int32(a.I32(3)), C.int32(a.I32(4)), C.uInt32(a.U32(5)),
			C.float64(a.F64(6)), cs.get(a.Str(7))))
	case FuncCreateCIAngVelocityChan:
		return Status(C.DAQmxCreateCIAngVelocityChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), C.uInt32(a.U32(4)), cs.get(a.Str(5))))
	case FuncCreateCICountEdgesChan:
		return Status(C.DAQmxCreateCICountEdgesChan(task, counter, name,
			C.int32(a.I32(0)), C.uInt32(a.U32(1)), C.int32(a.I32(2))))
	case FuncCreateCIDutyCycleChan:
		return Status(C.DAQmxCreateCIDutyCycleChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			cs.get(a.Str(3))))
	case FuncCreateCIFreqChan:
		return Status(C.DAQmxCreateCIFreqChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), C.int32(a.I32(4)), C.float64(a.F64(5)),
			C.uInt32(a.U32(6)), cs.get(a.Str(7))))
	case FuncCreateCIGPSTimestampChan:
		return Status(C.DAQmxCreateCIGPSTimestampChan(task, counter, name,
			C.int32(a.I32(0)), C.int32(a.I32(1)), cs.get(a.Str(2))))
	case FuncCreateCILinEncoderChan:
		return Status(C.DAQmxCreateCILinEncoderChan(task, counter, name,
			C.int32(a.I32(0)), b32(a.Bool32(1)), C.float64(a.F64(2)),
			C.int32(a.I32(3)), C.int32(a.I32(4)), C.float64(a.F64(5)),
			C.float64(a.F64(6)), cs.get(a.Str(7))))
	case FuncCreateCILinVelocityChan:
		return Status(C.DAQmxCreateCILinVelocityChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), C.float64(a.F64(4)), cs.get(a.Str(5))))
	case FuncCreateCIPeriodChan:
		return Status(C.DAQmxCreateCIPeriodChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), C.int32(a.I32(4)), C.float64(a.F64(5)),
			C.uInt32(a.U32(6)), cs.get(a.Str(7))))
	case FuncCreateCIPulseChanFreq:
		return Status(C.DAQmxCreateCIPulseChanFreq(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2))))
	case FuncCreateCIPulseChanTicks:
		return Status(C.DAQmxCreateCIPulseChanTicks(task, counter, name,
			cs.get(a.Str(0)), C.float64(a.F64(1)), C.float64(a.F64(2))))
	case FuncCreateCIPulseChanTime:
		return Status(C.DAQmxCreateCIPulseChanTime(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2))))
	case FuncCreateCIPulseWidthChan:
		return Status(C.DAQmxCreateCIPulseWidthChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), cs.get(a.Str(4))))
	case FuncCreateCISemiPeriodChan:
		return Status(C.DAQmxCreateCISemiPeriodChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			cs.get(a.Str(3))))
	case FuncCreateCITwoEdgeSepChan:
		return Status(C.DAQmxCreateCITwoEdgeSepChan(task, counter, name,
			C.float64(a.F64(0)), C.float64(a.F64(1)), C.int32(a.I32(2)),
			C.int32(a.I32(3)), C.int32(a.I32(4)), cs.get(a.Str(5))))
	}
	panic("driver: unknown entry point " + call.Func.String())
}
