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
	"strings"
	"testing"
)

func TestSimTaskLifecycle(t *testing.T) {
	sim := NewSim()
	h, status := sim.CreateTask("lifecycle")
	if !status.Success() {
		t.Fatalf("CreateTask failed with %d", status)
	}
	if status := sim.StartTask(h); !status.Success() {
		t.Errorf("StartTask failed with %d", status)
	}
	if status := sim.StopTask(h); !status.Success() {
		t.Errorf("StopTask failed with %d", status)
	}
	if status := sim.ClearTask(h); !status.Success() {
		t.Errorf("ClearTask failed with %d", status)
	}
	if status := sim.ClearTask(h); status != SimStatusInvalidTask {
		t.Errorf("Expected %d for cleared handle, got %d", SimStatusInvalidTask, status)
	}
}

func TestSimInvalidHandle(t *testing.T) {
	sim := NewSim()
	const bogus = TaskHandle(999)
	if status := sim.StartTask(bogus); status != SimStatusInvalidTask {
		t.Errorf("Expected %d, got %d", SimStatusInvalidTask, status)
	}
	if _, status := sim.ReadCounterScalarF64(bogus, 1.0); status != SimStatusInvalidTask {
		t.Errorf("Expected %d, got %d", SimStatusInvalidTask, status)
	}
	if info := sim.ExtendedErrorInfo(); !strings.Contains(info, "invalid") {
		t.Errorf("Expected diagnostic about invalid task, got %q", info)
	}
}

func TestSimCreateChannel(t *testing.T) {
	sim := NewSim()
	h, _ := sim.CreateTask("channels")
	status := sim.CreateChannel(Call{
		Func:    FuncCreateCICountEdgesChan,
		Task:    h,
		Channel: "Dev1/ctr0",
		Name:    "edges",
		Args:    Args{I32(10280), U32(0), I32(10128)},
	})
	if !status.Success() {
		t.Fatalf("CreateChannel failed with %d", status)
	}
	channels := sim.TaskChannels(h)
	if len(channels) != 1 || channels[0] != "edges" {
		t.Errorf("Expected channels [edges], got %v", channels)
	}
	if len(sim.Calls()) != 1 {
		t.Errorf("Expected 1 recorded call, got %d", len(sim.Calls()))
	}
}

func TestSimCreateChannelDefaultsToPhysicalName(t *testing.T) {
	sim := NewSim()
	h, _ := sim.CreateTask("channels")
	sim.CreateChannel(Call{
		Func:    FuncCreateCICountEdgesChan,
		Task:    h,
		Channel: "Dev1/ctr0",
		Args:    Args{I32(10280), U32(0), I32(10128)},
	})
	channels := sim.TaskChannels(h)
	if len(channels) != 1 || channels[0] != "Dev1/ctr0" {
		t.Errorf("Expected physical name fallback, got %v", channels)
	}
}

func TestSimFailNextCreate(t *testing.T) {
	sim := NewSim()
	h, _ := sim.CreateTask("failing")
	sim.FailNextCreate(-89120, "terminal not supported")
	call := Call{Func: FuncCreateCICountEdgesChan, Task: h, Channel: "Dev1/ctr0"}
	if status := sim.CreateChannel(call); status != -89120 {
		t.Errorf("Expected -89120, got %d", status)
	}
	if msg := sim.ErrorString(-89120); msg != "terminal not supported" {
		t.Errorf("Expected injected message, got %q", msg)
	}
	if info := sim.ExtendedErrorInfo(); info != "terminal not supported" {
		t.Errorf("Expected injected diagnostic, got %q", info)
	}
	// The failed call must still be recorded, and the failure is one-shot.
	if len(sim.Calls()) != 1 {
		t.Errorf("Expected 1 recorded call, got %d", len(sim.Calls()))
	}
	if status := sim.CreateChannel(call); !status.Success() {
		t.Errorf("Second call must succeed, got %d", status)
	}
}

func TestSimFailNextCreateWarning(t *testing.T) {
	sim := NewSim()
	h, _ := sim.CreateTask("warning")
	sim.FailNextCreate(200010, "finite acquisition may not buffer all samples")
	call := Call{Func: FuncCreateCICountEdgesChan, Task: h, Channel: "Dev1/ctr0", Name: "edges"}
	status := sim.CreateChannel(call)
	if status != 200010 {
		t.Errorf("Expected 200010, got %d", status)
	}
	if !status.Warning() {
		t.Error("Expected a warning-class status")
	}
	// A warning does not abort the call, so the channel must exist.
	channels := sim.TaskChannels(h)
	if len(channels) != 1 || channels[0] != "edges" {
		t.Errorf("Expected channels [edges] after warning, got %v", channels)
	}
	if _, status := sim.ReadCounterScalarF64(h, 1.0); !status.Success() {
		t.Errorf("Expected readable channel after warning, got %d", status)
	}
}

func TestSimReadCounter(t *testing.T) {
	sim := NewSim()
	h, _ := sim.CreateTask("reader")
	if _, status := sim.ReadCounterScalarF64(h, 1.0); status != SimStatusNoChannel {
		t.Errorf("Expected %d without channels, got %d", SimStatusNoChannel, status)
	}
	sim.CreateChannel(Call{Func: FuncCreateCICountEdgesChan, Task: h, Channel: "Dev1/ctr0"})
	for i := 1; i <= 3; i++ {
		value, status := sim.ReadCounterScalarF64(h, 1.0)
		if !status.Success() {
			t.Fatalf("Read %d failed with %d", i, status)
		}
		if value != float64(i) {
			t.Errorf("Expected value %d, got %v", i, value)
		}
	}
}

func TestSimErrorStringFallback(t *testing.T) {
	sim := NewSim()
	if msg := sim.ErrorString(-123456); msg != "status code -123456" {
		t.Errorf("Expected fallback message, got %q", msg)
	}
}
