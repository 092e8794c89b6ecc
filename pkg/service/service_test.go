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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/daqnet/CounterWorker/model"
	"github.com/daqnet/CounterWorker/pkg/daqmx"
	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
)

func testConfig() model.Config {
	return model.Config{
		SampleInterval: "10ms",
		Channels: []model.Channel{
			{ID: "spindle", Type: model.ChannelTypeCountEdges, Counter: "Dev1/ctr0"},
			{ID: "belt", Type: model.ChannelTypeFrequency, Counter: "Dev1/ctr1", MinVal: 2, MaxVal: 1000},
		},
	}
}

func TestNewService(t *testing.T) {
	sim := driver.NewSim()
	svc, err := New(testConfig(), sim, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	calls := sim.Calls()
	if len(calls) != 2 {
		t.Fatalf("Expected 2 channel creations, got %d", len(calls))
	}
	if calls[0].Func != driver.FuncCreateCICountEdgesChan {
		t.Errorf("Expected FuncCreateCICountEdgesChan, got %s", calls[0].Func)
	}
	if calls[1].Func != driver.FuncCreateCIFreqChan {
		t.Errorf("Expected FuncCreateCIFreqChan, got %s", calls[1].Func)
	}
	if v := calls[1].Args.F64(0); v != 2 {
		t.Errorf("Expected configured min 2, got %v", v)
	}
	if v := calls[1].Args.F64(1); v != 1000 {
		t.Errorf("Expected configured max 1000, got %v", v)
	}
}

func TestNewServiceFailure(t *testing.T) {
	sim := driver.NewSim()
	sim.FailNextCreate(-200431, "selected physical channel does not support the measurement")
	_, err := New(testConfig(), sim, zerolog.Nop())
	if err == nil {
		t.Fatal("Expected an error")
	}
	if daqErr, ok := daqmx.AsError(err); !ok || daqErr.Code != -200431 {
		t.Errorf("Expected DAQmx error -200431, got %v", err)
	}
}

func TestNewServiceInvalidType(t *testing.T) {
	sim := driver.NewSim()
	cfg := model.Config{Channels: []model.Channel{
		{ID: "bad", Type: "voltage", Counter: "Dev1/ctr0"},
	}}
	if _, err := New(cfg, sim, zerolog.Nop()); !model.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestServiceRun(t *testing.T) {
	sim := driver.NewSim()
	svc, err := New(testConfig(), sim, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	received := make(chan Sample, 64)
	cancelReceiver := svc.RegisterSampleReceiver(func(s Sample) {
		select {
		case received <- s:
		default:
		}
	})
	defer cancelReceiver()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	seen := make(map[string]bool)
	deadline := time.After(5 * time.Second)
	for len(seen) < 2 {
		select {
		case s := <-received:
			if s.Value <= 0 {
				t.Errorf("Expected positive value, got %v", s.Value)
			}
			seen[s.ChannelID] = true
		case <-deadline:
			t.Fatalf("Timed out waiting for samples, seen %v", seen)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}

	actuals := svc.GetActuals()
	if len(actuals) != 2 {
		t.Fatalf("Expected 2 actuals, got %d", len(actuals))
	}
	if actuals[0].ChannelID != "belt" || actuals[1].ChannelID != "spindle" {
		t.Errorf("Actuals must be ordered by channel ID, got %v", actuals)
	}
	if svc.TotalSamples() == 0 {
		t.Error("Expected a nonzero sample total")
	}
}

func TestServiceReceiverCancel(t *testing.T) {
	sim := driver.NewSim()
	svc, err := New(testConfig(), sim, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	var count int
	cancelReceiver := svc.RegisterSampleReceiver(func(s Sample) { count++ })
	cancelReceiver()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := svc.Run(ctx); err != nil {
		t.Errorf("Run returned %v", err)
	}
	if count != 0 {
		t.Errorf("Cancelled receiver must not see samples, got %d", count)
	}
}

func TestServiceClose(t *testing.T) {
	sim := driver.NewSim()
	svc, err := New(testConfig(), sim, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Second Close must be a no-op, got %v", err)
	}
}
