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

import "testing"

func TestArgsAccessors(t *testing.T) {
	args := Args{F64(1.5), I32(-7), U32(42), Bool32(true), Str("scale")}
	if v := args.F64(0); v != 1.5 {
		t.Errorf("Expected 1.5, got %v", v)
	}
	if v := args.I32(1); v != -7 {
		t.Errorf("Expected -7, got %d", v)
	}
	if v := args.U32(2); v != 42 {
		t.Errorf("Expected 42, got %d", v)
	}
	if !args.Bool32(3) {
		t.Error("Expected true")
	}
	if v := args.Str(4); v != "scale" {
		t.Errorf("Expected 'scale', got %q", v)
	}
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s must panic", name)
		}
	}()
	f()
}

func TestArgsKindMismatchPanics(t *testing.T) {
	args := Args{F64(1.5)}
	expectPanic(t, "I32 on float slot", func() { args.I32(0) })
	expectPanic(t, "Str on float slot", func() { args.Str(0) })
}

func TestArgsOutOfRangePanics(t *testing.T) {
	args := Args{F64(1.5)}
	expectPanic(t, "index past end", func() { args.F64(1) })
}

func TestFuncString(t *testing.T) {
	if s := FuncCreateCICountEdgesChan.String(); s != "CreateCICountEdgesChan" {
		t.Errorf("Expected 'CreateCICountEdgesChan', got %q", s)
	}
	if s := Func(99).String(); s != "Func(99)" {
		t.Errorf("Expected 'Func(99)', got %q", s)
	}
}

func TestStatus(t *testing.T) {
	if !Status(0).Success() {
		t.Error("Zero must be success")
	}
	if Status(-200088).Success() || Status(-200088).Warning() {
		t.Error("Negative code must be an error")
	}
	if !Status(200010).Warning() {
		t.Error("Positive code must be a warning")
	}
	if Status(200010).Success() {
		t.Error("Warning is not success")
	}
}
