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

// The integer values in this file are a wire contract: they must match the
// vendor driver's documented encoding exactly.

// Edge selects the signal edge polarity.
type Edge int32

const (
	EdgeRising  Edge = 10280
	EdgeFalling Edge = 10171
)

func (e Edge) valid() bool {
	switch e {
	case EdgeRising, EdgeFalling:
		return true
	}
	return false
}

// CountDirection selects whether the counter increments or decrements.
type CountDirection int32

const (
	CountDirectionUp            CountDirection = 10128
	CountDirectionDown          CountDirection = 10124
	CountDirectionExtControlled CountDirection = 10326
)

func (d CountDirection) valid() bool {
	switch d {
	case CountDirectionUp, CountDirectionDown, CountDirectionExtControlled:
		return true
	}
	return false
}

// EncoderType selects how encoder pulses on signal A and signal B are
// counted and interpreted.
type EncoderType int32

const (
	EncoderTypeX1               EncoderType = 10090
	EncoderTypeX2               EncoderType = 10091
	EncoderTypeX4               EncoderType = 10092
	EncoderTypeTwoPulseCounting EncoderType = 10313
)

func (t EncoderType) valid() bool {
	switch t {
	case EncoderTypeX1, EncoderTypeX2, EncoderTypeX4, EncoderTypeTwoPulseCounting:
		return true
	}
	return false
}

// EncoderZIndexPhase selects the states signal A and signal B must be in
// while signal Z is high for the measurement to reset.
type EncoderZIndexPhase int32

const (
	EncoderZIndexPhaseAHighBHigh EncoderZIndexPhase = 10040
	EncoderZIndexPhaseAHighBLow  EncoderZIndexPhase = 10041
	EncoderZIndexPhaseALowBHigh  EncoderZIndexPhase = 10042
	EncoderZIndexPhaseALowBLow   EncoderZIndexPhase = 10043
)

func (p EncoderZIndexPhase) valid() bool {
	switch p {
	case EncoderZIndexPhaseAHighBHigh, EncoderZIndexPhaseAHighBLow,
		EncoderZIndexPhaseALowBHigh, EncoderZIndexPhaseALowBLow:
		return true
	}
	return false
}

// AngleUnits for angular position measurements.
type AngleUnits int32

const (
	AngleUnitsDegrees         AngleUnits = 10146
	AngleUnitsRadians         AngleUnits = 10273
	AngleUnitsTicks           AngleUnits = 10279
	AngleUnitsFromCustomScale AngleUnits = 10065
)

func (u AngleUnits) valid() bool {
	switch u {
	case AngleUnitsDegrees, AngleUnitsRadians, AngleUnitsTicks, AngleUnitsFromCustomScale:
		return true
	}
	return false
}

// AngularVelocityUnits for angular velocity measurements.
type AngularVelocityUnits int32

const (
	AngularVelocityUnitsRPM              AngularVelocityUnits = 16080
	AngularVelocityUnitsRadiansPerSecond AngularVelocityUnits = 16081
	AngularVelocityUnitsDegreesPerSecond AngularVelocityUnits = 16082
	AngularVelocityUnitsFromCustomScale  AngularVelocityUnits = 10065
)

func (u AngularVelocityUnits) valid() bool {
	switch u {
	case AngularVelocityUnitsRPM, AngularVelocityUnitsRadiansPerSecond,
		AngularVelocityUnitsDegreesPerSecond, AngularVelocityUnitsFromCustomScale:
		return true
	}
	return false
}

// CounterFrequencyMethod selects how the driver calculates the period or
// frequency of the signal.
type CounterFrequencyMethod int32

const (
	CounterFrequencyMethodLowFrequency1Counter   CounterFrequencyMethod = 10105
	CounterFrequencyMethodHighFrequency2Counters CounterFrequencyMethod = 10157
	CounterFrequencyMethodLargeRange2Counters    CounterFrequencyMethod = 10205
)

func (m CounterFrequencyMethod) valid() bool {
	switch m {
	case CounterFrequencyMethodLowFrequency1Counter,
		CounterFrequencyMethodHighFrequency2Counters,
		CounterFrequencyMethodLargeRange2Counters:
		return true
	}
	return false
}

// FrequencyUnits for frequency measurements.
type FrequencyUnits int32

const (
	FrequencyUnitsHz              FrequencyUnits = 10373
	FrequencyUnitsTicks           FrequencyUnits = 10279
	FrequencyUnitsFromCustomScale FrequencyUnits = 10065
)

func (u FrequencyUnits) valid() bool {
	switch u {
	case FrequencyUnitsHz, FrequencyUnitsTicks, FrequencyUnitsFromCustomScale:
		return true
	}
	return false
}

// GpsSignalType selects the method used to synchronize the counter to a
// GPS receiver.
type GpsSignalType int32

const (
	GpsSignalTypeIRIGB GpsSignalType = 10070
	GpsSignalTypePPS   GpsSignalType = 10080
	GpsSignalTypeNone  GpsSignalType = 10071
)

func (t GpsSignalType) valid() bool {
	switch t {
	case GpsSignalTypeIRIGB, GpsSignalTypePPS, GpsSignalTypeNone:
		return true
	}
	return false
}

// LengthUnits for linear position measurements.
type LengthUnits int32

const (
	LengthUnitsMeters          LengthUnits = 10219
	LengthUnitsInches          LengthUnits = 10379
	LengthUnitsTicks           LengthUnits = 10279
	LengthUnitsFromCustomScale LengthUnits = 10065
)

func (u LengthUnits) valid() bool {
	switch u {
	case LengthUnitsMeters, LengthUnitsInches, LengthUnitsTicks, LengthUnitsFromCustomScale:
		return true
	}
	return false
}

// TimeUnits for time and period measurements.
type TimeUnits int32

const (
	TimeUnitsSeconds         TimeUnits = 10364
	TimeUnitsTicks           TimeUnits = 10279
	TimeUnitsFromCustomScale TimeUnits = 10065
)

func (u TimeUnits) valid() bool {
	switch u {
	case TimeUnitsSeconds, TimeUnitsTicks, TimeUnitsFromCustomScale:
		return true
	}
	return false
}

// VelocityUnits for linear velocity measurements.
type VelocityUnits int32

const (
	VelocityUnitsMetersPerSecond VelocityUnits = 16094
	VelocityUnitsInchesPerSecond VelocityUnits = 16095
	VelocityUnitsFromCustomScale VelocityUnits = 10065
)

func (u VelocityUnits) valid() bool {
	switch u {
	case VelocityUnitsMetersPerSecond, VelocityUnitsInchesPerSecond, VelocityUnitsFromCustomScale:
		return true
	}
	return false
}
