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

import "fmt"

// Func identifies a channel-creation entry point of the vendor driver.
type Func int

const (
	FuncCreateCIAngEncoderChan Func = iota
	FuncCreateCIAngVelocityChan
	FuncCreateCICountEdgesChan
	FuncCreateCIDutyCycleChan
	FuncCreateCIFreqChan
	FuncCreateCIGPSTimestampChan
	FuncCreateCILinEncoderChan
	FuncCreateCILinVelocityChan
	FuncCreateCIPeriodChan
	FuncCreateCIPulseChanFreq
	FuncCreateCIPulseChanTicks
	FuncCreateCIPulseChanTime
	FuncCreateCIPulseWidthChan
	FuncCreateCISemiPeriodChan
	FuncCreateCITwoEdgeSepChan
)

var funcNames = map[Func]string{
	FuncCreateCIAngEncoderChan:   "CreateCIAngEncoderChan",
	FuncCreateCIAngVelocityChan:  "CreateCIAngVelocityChan",
	FuncCreateCICountEdgesChan:   "CreateCICountEdgesChan",
	FuncCreateCIDutyCycleChan:    "CreateCIDutyCycleChan",
	FuncCreateCIFreqChan:         "CreateCIFreqChan",
	FuncCreateCIGPSTimestampChan: "CreateCIGPSTimestampChan",
	FuncCreateCILinEncoderChan:   "CreateCILinEncoderChan",
	FuncCreateCILinVelocityChan:  "CreateCILinVelocityChan",
	FuncCreateCIPeriodChan:       "CreateCIPeriodChan",
	FuncCreateCIPulseChanFreq:    "CreateCIPulseChanFreq",
	FuncCreateCIPulseChanTicks:   "CreateCIPulseChanTicks",
	FuncCreateCIPulseChanTime:    "CreateCIPulseChanTime",
	FuncCreateCIPulseWidthChan:   "CreateCIPulseWidthChan",
	FuncCreateCISemiPeriodChan:   "CreateCISemiPeriodChan",
	FuncCreateCITwoEdgeSepChan:   "CreateCITwoEdgeSepChan",
}

// String returns the name of the driver export, without vendor prefix.
func (f Func) String() string {
	if name, ok := funcNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Func(%d)", int(f))
}

// Kind of a fixed-width argument slot.
type Kind uint8

const (
	KindF64 Kind = iota
	KindI32
	KindU32
	KindBool32
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindF64:
		return "float64"
	case KindI32:
		return "int32"
	case KindU32:
		return "uint32"
	case KindBool32:
		return "bool32"
	case KindStr:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arg is a single fixed-width argument slot of a driver call.
type Arg struct {
	kind Kind
	f64  float64
	i32  int32
	u32  uint32
	b    bool
	str  string
}

// F64 builds a 64-bit float argument slot.
func F64(v float64) Arg { return Arg{kind: KindF64, f64: v} }

// I32 builds a signed 32-bit argument slot.
func I32(v int32) Arg { return Arg{kind: KindI32, i32: v} }

// U32 builds an unsigned 32-bit argument slot.
func U32(v uint32) Arg { return Arg{kind: KindU32, u32: v} }

// Bool32 builds a 32-bit boolean argument slot.
func Bool32(v bool) Arg { return Arg{kind: KindBool32, b: v} }

// Str builds a NUL-terminated string argument slot.
func Str(v string) Arg { return Arg{kind: KindStr, str: v} }

// Kind returns the width classification of the slot.
func (a Arg) Kind() Kind { return a.kind }

// Args is the ordered argument list of a driver call.
//
// The accessors panic on an index or kind mismatch: the slot layout is part
// of the driver's documented signature, and a deviation would silently
// corrupt the native call rather than fail it.
type Args []Arg

func (a Args) slot(i int, kind Kind) Arg {
	if i >= len(a) {
		panic(fmt.Sprintf("driver: argument %d out of range (%d slots)", i, len(a)))
	}
	if a[i].kind != kind {
		panic(fmt.Sprintf("driver: argument %d has kind %s, want %s", i, a[i].kind, kind))
	}
	return a[i]
}

// F64 returns the 64-bit float in slot i.
func (a Args) F64(i int) float64 { return a.slot(i, KindF64).f64 }

// I32 returns the signed 32-bit value in slot i.
func (a Args) I32(i int) int32 { return a.slot(i, KindI32).i32 }

// U32 returns the unsigned 32-bit value in slot i.
func (a Args) U32(i int) uint32 { return a.slot(i, KindU32).u32 }

// Bool32 returns the 32-bit boolean in slot i.
func (a Args) Bool32(i int) bool { return a.slot(i, KindBool32).b }

// Str returns the string in slot i.
func (a Args) Str(i int) string { return a.slot(i, KindStr).str }

// Call describes a single channel-creation invocation: which entry point to
// call, on which task, and the modality-specific argument tail in the
// driver's documented order.
type Call struct {
	Func    Func
	Task    TaskHandle
	Channel string // physical channel specifier
	Name    string // virtual name to assign, as resolved by the caller
	Args    Args
}
