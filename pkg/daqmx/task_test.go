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
	"testing"

	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
)

func TestTaskLifecycle(t *testing.T) {
	sim := driver.NewSim()
	task := newTestTask(t, sim)
	if task.Name() != "test-task" {
		t.Errorf("Expected name 'test-task', got %q", task.Name())
	}
	if _, err := task.CI.AddCountEdgesChan("Dev1/ctr0", "", DefaultCountEdgesConfig()); err != nil {
		t.Fatalf("AddCountEdgesChan failed: %v", err)
	}
	if err := task.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	value, err := task.ReadCounterScalarF64(1.0)
	if err != nil {
		t.Fatalf("ReadCounterScalarF64 failed: %v", err)
	}
	if value != 1.0 {
		t.Errorf("Expected first simulated value 1.0, got %v", value)
	}
	if err := task.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := task.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestTaskCloseIdempotent(t *testing.T) {
	sim := driver.NewSim()
	task := newTestTask(t, sim)
	if err := task.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := task.Close(); err != nil {
		t.Errorf("Second Close must be a no-op, got %v", err)
	}
}

func TestTaskReadWithoutChannel(t *testing.T) {
	sim := driver.NewSim()
	task := newTestTask(t, sim)
	defer task.Close()

	_, err := task.ReadCounterScalarF64(1.0)
	daqErr, ok := AsError(err)
	if !ok {
		t.Fatalf("Expected a DAQmx error, got %v", err)
	}
	if daqErr.Code != driver.SimStatusNoChannel {
		t.Errorf("Expected code %d, got %d", driver.SimStatusNoChannel, daqErr.Code)
	}
	if daqErr.Message == "" {
		t.Error("Expected a message")
	}
}

func TestTaskWarningPolicyLog(t *testing.T) {
	sim := driver.NewSim()
	task := newTestTask(t, sim)
	defer task.Close()

	sim.FailNextCreate(200010, "finite acquisition may not buffer all samples")
	ch, err := task.CI.AddCountEdgesChan("Dev1/ctr0", "edges", DefaultCountEdgesConfig())
	if err != nil {
		t.Fatalf("Warning must not fail the call under the default policy: %v", err)
	}
	if ch.Name() != "edges" {
		t.Errorf("Expected channel name 'edges', got %q", ch.Name())
	}
	if task.CI.NumChans() != 1 {
		t.Errorf("Expected 1 channel, got %d", task.CI.NumChans())
	}
	// The channel exists despite the warning, so reads must work.
	if _, err := task.ReadCounterScalarF64(1.0); err != nil {
		t.Errorf("ReadCounterScalarF64 failed after warning: %v", err)
	}
}

func TestTaskWarningPolicyError(t *testing.T) {
	sim := driver.NewSim()
	task := newTestTask(t, sim, WithWarningPolicy(WarningPolicyError))
	defer task.Close()

	sim.FailNextCreate(200010, "finite acquisition may not buffer all samples")
	_, err := task.CI.AddCountEdgesChan("Dev1/ctr0", "", DefaultCountEdgesConfig())
	daqErr, ok := AsError(err)
	if !ok {
		t.Fatalf("Expected a DAQmx error, got %v", err)
	}
	if !daqErr.IsWarning() {
		t.Error("Positive code must count as warning")
	}
	if daqErr.Code != 200010 {
		t.Errorf("Expected code 200010, got %d", daqErr.Code)
	}
	if daqErr.Extended != "" {
		t.Errorf("Warnings carry no extended info, got %q", daqErr.Extended)
	}
	if task.CI.NumChans() != 0 {
		t.Errorf("Expected empty collection, got %d channels", task.CI.NumChans())
	}
}

func TestErrorFormat(t *testing.T) {
	err := &Error{Code: -200088, Message: "task specified is invalid", Extended: "details"}
	expected := "DAQmx error -200088: task specified is invalid: details"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
	warn := &Error{Code: 200010, Message: "may not buffer all samples"}
	expected = "DAQmx warning 200010: may not buffer all samples"
	if warn.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, warn.Error())
	}
}
