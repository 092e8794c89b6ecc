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
	"fmt"

	"github.com/pkg/errors"

	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
)

// CIChannelCollection contains the counter input channels of a task.
// Channels are kept in creation order; the driver permits duplicate names
// and this layer does not deduplicate.
type CIChannelCollection struct {
	task     *Task
	channels []Channel
}

// Channels returns the channels in creation order.
func (c *CIChannelCollection) Channels() []Channel {
	result := make([]Channel, len(c.channels))
	copy(result, c.channels)
	return result
}

// NumChans returns the number of channels in the collection.
func (c *CIChannelCollection) NumChans() int {
	return len(c.channels)
}

// resolveName returns the virtual name to pass to the driver for the given
// specifier and optional alias. When the alias covers more than one
// physical channel, an ordinal range suffix is appended; the driver expands
// that range itself.
func resolveName(counter, alias string) (string, error) {
	if alias == "" {
		return counter, nil
	}
	names, err := UnflattenChannelString(counter)
	if err != nil {
		return "", err
	}
	if len(names) > 1 {
		return fmt.Sprintf("%s0:%d", alias, len(names)-1), nil
	}
	return alias, nil
}

// addChan is the generic creation operation shared by all modalities: it
// validates and resolves the naming arguments, invokes the entry point with
// the modality's argument table, translates the status code and registers
// the new channel. On failure the collection is left unchanged.
func (c *CIChannelCollection) addChan(fn driver.Func, counter, alias string, args driver.Args) (Channel, error) {
	if counter == "" {
		return Channel{}, errors.Wrap(ValidationError, "counter must not be empty")
	}
	resolved, err := resolveName(counter, alias)
	if err != nil {
		return Channel{}, err
	}
	status := c.task.api.CreateChannel(driver.Call{
		Func:    fn,
		Task:    c.task.h,
		Channel: counter,
		Name:    resolved,
		Args:    args,
	})
	if err := c.task.check(status); err != nil {
		channelCreateErrorsTotal.WithLabelValues(fn.String()).Inc()
		return Channel{}, err
	}
	channelsCreatedTotal.WithLabelValues(fn.String()).Inc()
	ch := Channel{task: c.task, name: resolved}
	c.channels = append(c.channels, ch)
	return ch, nil
}

// requireRange validates an expected measurement range.
func requireRange(min, max float64) error {
	if min >= max {
		return errors.Wrapf(ValidationError, "invalid range: min (%v) must be less than max (%v)", min, max)
	}
	return nil
}

func invalidEnum(field string, value int32) error {
	return errors.Wrapf(ValidationError, "%s has invalid value %d", field, value)
}

// AngEncoderConfig configures a channel that uses an angular encoder to
// measure angular position.
type AngEncoderConfig struct {
	DecodingType    EncoderType
	ZidxEnable      bool
	ZidxVal         float64
	ZidxPhase       EncoderZIndexPhase
	Units           AngleUnits
	PulsesPerRev    uint32
	InitialAngle    float64
	CustomScaleName string
}

// DefaultAngEncoderConfig returns the driver's documented defaults.
func DefaultAngEncoderConfig() AngEncoderConfig {
	return AngEncoderConfig{
		DecodingType: EncoderTypeX4,
		ZidxPhase:    EncoderZIndexPhaseAHighBHigh,
		Units:        AngleUnitsDegrees,
		PulsesPerRev: 24,
	}
}

// AddAngEncoderChan creates a channel that uses an angular encoder to
// measure angular position.
func (c *CIChannelCollection) AddAngEncoderChan(counter, alias string, cfg AngEncoderConfig) (Channel, error) {
	if !cfg.DecodingType.valid() {
		return Channel{}, invalidEnum("decoding type", int32(cfg.DecodingType))
	}
	if !cfg.ZidxPhase.valid() {
		return Channel{}, invalidEnum("z-index phase", int32(cfg.ZidxPhase))
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCIAngEncoderChan, counter, alias, driver.Args{
		driver.I32(int32(cfg.DecodingType)),
		driver.Bool32(cfg.ZidxEnable),
		driver.F64(cfg.ZidxVal),
		driver.I32(int32(cfg.ZidxPhase)),
		driver.I32(int32(cfg.Units)),
		driver.U32(cfg.PulsesPerRev),
		driver.F64(cfg.InitialAngle),
		driver.Str(cfg.CustomScaleName),
	})
}

// AngVelocityConfig configures a channel that measures angular velocity.
type AngVelocityConfig struct {
	MinVal          float64
	MaxVal          float64
	DecodingType    EncoderType
	Units           AngularVelocityUnits
	PulsesPerRev    uint32
	CustomScaleName string
}

// DefaultAngVelocityConfig returns the driver's documented defaults.
func DefaultAngVelocityConfig() AngVelocityConfig {
	return AngVelocityConfig{
		MinVal:       0.0,
		MaxVal:       1.0,
		DecodingType: EncoderTypeX4,
		Units:        AngularVelocityUnitsRPM,
		PulsesPerRev: 24,
	}
}

// AddAngVelocityChan creates a channel to measure the angular velocity of a
// digital signal.
func (c *CIChannelCollection) AddAngVelocityChan(counter, alias string, cfg AngVelocityConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.DecodingType.valid() {
		return Channel{}, invalidEnum("decoding type", int32(cfg.DecodingType))
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCIAngVelocityChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.DecodingType)),
		driver.I32(int32(cfg.Units)),
		driver.U32(cfg.PulsesPerRev),
		driver.Str(cfg.CustomScaleName),
	})
}

// CountEdgesConfig configures a channel that counts edges of a digital
// signal.
type CountEdgesConfig struct {
	Edge           Edge
	InitialCount   uint32
	CountDirection CountDirection
}

// DefaultCountEdgesConfig returns the driver's documented defaults.
func DefaultCountEdgesConfig() CountEdgesConfig {
	return CountEdgesConfig{
		Edge:           EdgeRising,
		CountDirection: CountDirectionUp,
	}
}

// AddCountEdgesChan creates a channel to count the number of rising or
// falling edges of a digital signal.
func (c *CIChannelCollection) AddCountEdgesChan(counter, alias string, cfg CountEdgesConfig) (Channel, error) {
	if !cfg.Edge.valid() {
		return Channel{}, invalidEnum("edge", int32(cfg.Edge))
	}
	if !cfg.CountDirection.valid() {
		return Channel{}, invalidEnum("count direction", int32(cfg.CountDirection))
	}
	return c.addChan(driver.FuncCreateCICountEdgesChan, counter, alias, driver.Args{
		driver.I32(int32(cfg.Edge)),
		driver.U32(cfg.InitialCount),
		driver.I32(int32(cfg.CountDirection)),
	})
}

// DutyCycleConfig configures a channel that measures the duty cycle of a
// digital pulse.
type DutyCycleConfig struct {
	MinFreq         float64
	MaxFreq         float64
	Edge            Edge
	CustomScaleName string
}

// DefaultDutyCycleConfig returns the driver's documented defaults.
func DefaultDutyCycleConfig() DutyCycleConfig {
	return DutyCycleConfig{
		MinFreq: 2.0,
		MaxFreq: 10000.0,
		Edge:    EdgeRising,
	}
}

// AddDutyCycleChan creates a channel to measure the duty cycle of a digital
// pulse.
func (c *CIChannelCollection) AddDutyCycleChan(counter, alias string, cfg DutyCycleConfig) (Channel, error) {
	if err := requireRange(cfg.MinFreq, cfg.MaxFreq); err != nil {
		return Channel{}, err
	}
	if !cfg.Edge.valid() {
		return Channel{}, invalidEnum("edge", int32(cfg.Edge))
	}
	return c.addChan(driver.FuncCreateCIDutyCycleChan, counter, alias, driver.Args{
		driver.F64(cfg.MinFreq),
		driver.F64(cfg.MaxFreq),
		driver.I32(int32(cfg.Edge)),
		driver.Str(cfg.CustomScaleName),
	})
}

// FreqConfig configures a channel that measures the frequency of a digital
// signal.
type FreqConfig struct {
	MinVal          float64
	MaxVal          float64
	Units           FrequencyUnits
	Edge            Edge
	MeasMethod      CounterFrequencyMethod
	MeasTime        float64
	Divisor         uint32
	CustomScaleName string
}

// DefaultFreqConfig returns the driver's documented defaults.
func DefaultFreqConfig() FreqConfig {
	return FreqConfig{
		MinVal:     2.0,
		MaxVal:     100.0,
		Units:      FrequencyUnitsHz,
		Edge:       EdgeRising,
		MeasMethod: CounterFrequencyMethodLowFrequency1Counter,
		MeasTime:   0.001,
		Divisor:    4,
	}
}

// AddFreqChan creates a channel to measure the frequency of a digital
// signal.
func (c *CIChannelCollection) AddFreqChan(counter, alias string, cfg FreqConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	if !cfg.Edge.valid() {
		return Channel{}, invalidEnum("edge", int32(cfg.Edge))
	}
	if !cfg.MeasMethod.valid() {
		return Channel{}, invalidEnum("measurement method", int32(cfg.MeasMethod))
	}
	return c.addChan(driver.FuncCreateCIFreqChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
		driver.I32(int32(cfg.Edge)),
		driver.I32(int32(cfg.MeasMethod)),
		driver.F64(cfg.MeasTime),
		driver.U32(cfg.Divisor),
		driver.Str(cfg.CustomScaleName),
	})
}

// GPSTimestampConfig configures a channel that takes a timestamp from a
// special purpose counter synchronized to a GPS receiver.
type GPSTimestampConfig struct {
	Units           TimeUnits
	SyncMethod      GpsSignalType
	CustomScaleName string
}

// DefaultGPSTimestampConfig returns the driver's documented defaults.
func DefaultGPSTimestampConfig() GPSTimestampConfig {
	return GPSTimestampConfig{
		Units:      TimeUnitsSeconds,
		SyncMethod: GpsSignalTypeIRIGB,
	}
}

// AddGPSTimestampChan creates a channel that takes a timestamp synchronized
// to a GPS receiver.
func (c *CIChannelCollection) AddGPSTimestampChan(counter, alias string, cfg GPSTimestampConfig) (Channel, error) {
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	if !cfg.SyncMethod.valid() {
		return Channel{}, invalidEnum("sync method", int32(cfg.SyncMethod))
	}
	return c.addChan(driver.FuncCreateCIGPSTimestampChan, counter, alias, driver.Args{
		driver.I32(int32(cfg.Units)),
		driver.I32(int32(cfg.SyncMethod)),
		driver.Str(cfg.CustomScaleName),
	})
}

// LinEncoderConfig configures a channel that uses a linear encoder to
// measure linear position.
type LinEncoderConfig struct {
	DecodingType    EncoderType
	ZidxEnable      bool
	ZidxVal         float64
	ZidxPhase       EncoderZIndexPhase
	Units           LengthUnits
	DistPerPulse    float64
	InitialPos      float64
	CustomScaleName string
}

// DefaultLinEncoderConfig returns the driver's documented defaults.
func DefaultLinEncoderConfig() LinEncoderConfig {
	return LinEncoderConfig{
		DecodingType: EncoderTypeX4,
		ZidxPhase:    EncoderZIndexPhaseAHighBHigh,
		Units:        LengthUnitsMeters,
		DistPerPulse: 0.001,
	}
}

// AddLinEncoderChan creates a channel that uses a linear encoder to measure
// linear position.
func (c *CIChannelCollection) AddLinEncoderChan(counter, alias string, cfg LinEncoderConfig) (Channel, error) {
	if !cfg.DecodingType.valid() {
		return Channel{}, invalidEnum("decoding type", int32(cfg.DecodingType))
	}
	if !cfg.ZidxPhase.valid() {
		return Channel{}, invalidEnum("z-index phase", int32(cfg.ZidxPhase))
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCILinEncoderChan, counter, alias, driver.Args{
		driver.I32(int32(cfg.DecodingType)),
		driver.Bool32(cfg.ZidxEnable),
		driver.F64(cfg.ZidxVal),
		driver.I32(int32(cfg.ZidxPhase)),
		driver.I32(int32(cfg.Units)),
		driver.F64(cfg.DistPerPulse),
		driver.F64(cfg.InitialPos),
		driver.Str(cfg.CustomScaleName),
	})
}

// LinVelocityConfig configures a channel that uses a linear encoder to
// measure linear velocity.
type LinVelocityConfig struct {
	MinVal          float64
	MaxVal          float64
	DecodingType    EncoderType
	Units           VelocityUnits
	DistPerPulse    float64
	CustomScaleName string
}

// DefaultLinVelocityConfig returns the driver's documented defaults.
func DefaultLinVelocityConfig() LinVelocityConfig {
	return LinVelocityConfig{
		MinVal:       0.0,
		MaxVal:       1.0,
		DecodingType: EncoderTypeX4,
		Units:        VelocityUnitsMetersPerSecond,
		DistPerPulse: 0.001,
	}
}

// AddLinVelocityChan creates a channel that uses a linear encoder to
// measure linear velocity.
func (c *CIChannelCollection) AddLinVelocityChan(counter, alias string, cfg LinVelocityConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.DecodingType.valid() {
		return Channel{}, invalidEnum("decoding type", int32(cfg.DecodingType))
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCILinVelocityChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.DecodingType)),
		driver.I32(int32(cfg.Units)),
		driver.F64(cfg.DistPerPulse),
		driver.Str(cfg.CustomScaleName),
	})
}

// PeriodConfig configures a channel that measures the period of a digital
// signal.
type PeriodConfig struct {
	MinVal          float64
	MaxVal          float64
	Units           TimeUnits
	Edge            Edge
	MeasMethod      CounterFrequencyMethod
	MeasTime        float64
	Divisor         uint32
	CustomScaleName string
}

// DefaultPeriodConfig returns the driver's documented defaults.
func DefaultPeriodConfig() PeriodConfig {
	return PeriodConfig{
		MinVal:     0.000001,
		MaxVal:     0.1,
		Units:      TimeUnitsSeconds,
		Edge:       EdgeRising,
		MeasMethod: CounterFrequencyMethodLowFrequency1Counter,
		MeasTime:   0.001,
		Divisor:    4,
	}
}

// AddPeriodChan creates a channel to measure the period of a digital
// signal.
func (c *CIChannelCollection) AddPeriodChan(counter, alias string, cfg PeriodConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	if !cfg.Edge.valid() {
		return Channel{}, invalidEnum("edge", int32(cfg.Edge))
	}
	if !cfg.MeasMethod.valid() {
		return Channel{}, invalidEnum("measurement method", int32(cfg.MeasMethod))
	}
	return c.addChan(driver.FuncCreateCIPeriodChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
		driver.I32(int32(cfg.Edge)),
		driver.I32(int32(cfg.MeasMethod)),
		driver.F64(cfg.MeasTime),
		driver.U32(cfg.Divisor),
		driver.Str(cfg.CustomScaleName),
	})
}

// PulseFreqConfig configures a channel that measures pulse specifications
// as pairs of frequency and duty cycle.
type PulseFreqConfig struct {
	MinVal float64
	MaxVal float64
	Units  FrequencyUnits
}

// DefaultPulseFreqConfig returns the driver's documented defaults.
func DefaultPulseFreqConfig() PulseFreqConfig {
	return PulseFreqConfig{
		MinVal: 1000,
		MaxVal: 1000000,
		Units:  FrequencyUnitsHz,
	}
}

// AddPulseChanFreq creates a channel to measure pulse specifications,
// returning the measurements as pairs of frequency and duty cycle.
func (c *CIChannelCollection) AddPulseChanFreq(counter, alias string, cfg PulseFreqConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCIPulseChanFreq, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
	})
}

// PulseTicksConfig configures a channel that measures pulse specifications
// as pairs of high ticks and low ticks.
type PulseTicksConfig struct {
	SourceTerminal string
	MinVal         float64
	MaxVal         float64
}

// DefaultPulseTicksConfig returns the driver's documented defaults.
func DefaultPulseTicksConfig() PulseTicksConfig {
	return PulseTicksConfig{
		SourceTerminal: "OnboardClock",
		MinVal:         1000,
		MaxVal:         1000000,
	}
}

// AddPulseChanTicks creates a channel to measure pulse specifications,
// returning the measurements as pairs of high ticks and low ticks.
func (c *CIChannelCollection) AddPulseChanTicks(counter, alias string, cfg PulseTicksConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	return c.addChan(driver.FuncCreateCIPulseChanTicks, counter, alias, driver.Args{
		driver.Str(cfg.SourceTerminal),
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
	})
}

// PulseTimeConfig configures a channel that measures pulse specifications
// as pairs of high time and low time.
type PulseTimeConfig struct {
	MinVal float64
	MaxVal float64
	Units  TimeUnits
}

// DefaultPulseTimeConfig returns the driver's documented defaults.
func DefaultPulseTimeConfig() PulseTimeConfig {
	return PulseTimeConfig{
		MinVal: 0.000001,
		MaxVal: 0.001,
		Units:  TimeUnitsSeconds,
	}
}

// AddPulseChanTime creates a channel to measure pulse specifications,
// returning the measurements as pairs of high time and low time.
func (c *CIChannelCollection) AddPulseChanTime(counter, alias string, cfg PulseTimeConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCIPulseChanTime, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
	})
}

// PulseWidthConfig configures a channel that measures the width of a
// digital pulse.
type PulseWidthConfig struct {
	MinVal          float64
	MaxVal          float64
	Units           TimeUnits
	StartingEdge    Edge
	CustomScaleName string
}

// DefaultPulseWidthConfig returns the driver's documented defaults.
func DefaultPulseWidthConfig() PulseWidthConfig {
	return PulseWidthConfig{
		MinVal:       0.000001,
		MaxVal:       0.1,
		Units:        TimeUnitsSeconds,
		StartingEdge: EdgeRising,
	}
}

// AddPulseWidthChan creates a channel to measure the width of a digital
// pulse. The starting edge determines whether a high or low pulse is
// measured.
func (c *CIChannelCollection) AddPulseWidthChan(counter, alias string, cfg PulseWidthConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	if !cfg.StartingEdge.valid() {
		return Channel{}, invalidEnum("starting edge", int32(cfg.StartingEdge))
	}
	return c.addChan(driver.FuncCreateCIPulseWidthChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
		driver.I32(int32(cfg.StartingEdge)),
		driver.Str(cfg.CustomScaleName),
	})
}

// SemiPeriodConfig configures a channel that measures the time between
// state transitions of a digital signal.
type SemiPeriodConfig struct {
	MinVal          float64
	MaxVal          float64
	Units           TimeUnits
	CustomScaleName string
}

// DefaultSemiPeriodConfig returns the driver's documented defaults.
func DefaultSemiPeriodConfig() SemiPeriodConfig {
	return SemiPeriodConfig{
		MinVal: 0.000001,
		MaxVal: 0.1,
		Units:  TimeUnitsSeconds,
	}
}

// AddSemiPeriodChan creates a channel to measure the time between state
// transitions of a digital signal.
func (c *CIChannelCollection) AddSemiPeriodChan(counter, alias string, cfg SemiPeriodConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	return c.addChan(driver.FuncCreateCISemiPeriodChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
		driver.Str(cfg.CustomScaleName),
	})
}

// TwoEdgeSepConfig configures a channel that measures the time between an
// edge of one digital signal and an edge of another.
type TwoEdgeSepConfig struct {
	MinVal          float64
	MaxVal          float64
	Units           TimeUnits
	FirstEdge       Edge
	SecondEdge      Edge
	CustomScaleName string
}

// DefaultTwoEdgeSepConfig returns the driver's documented defaults.
func DefaultTwoEdgeSepConfig() TwoEdgeSepConfig {
	return TwoEdgeSepConfig{
		MinVal:     0.000001,
		MaxVal:     1.0,
		Units:      TimeUnitsSeconds,
		FirstEdge:  EdgeRising,
		SecondEdge: EdgeFalling,
	}
}

// AddTwoEdgeSepChan creates a channel that measures the amount of time
// between an edge of one digital signal and an edge of another digital
// signal.
func (c *CIChannelCollection) AddTwoEdgeSepChan(counter, alias string, cfg TwoEdgeSepConfig) (Channel, error) {
	if err := requireRange(cfg.MinVal, cfg.MaxVal); err != nil {
		return Channel{}, err
	}
	if !cfg.Units.valid() {
		return Channel{}, invalidEnum("units", int32(cfg.Units))
	}
	if !cfg.FirstEdge.valid() {
		return Channel{}, invalidEnum("first edge", int32(cfg.FirstEdge))
	}
	if !cfg.SecondEdge.valid() {
		return Channel{}, invalidEnum("second edge", int32(cfg.SecondEdge))
	}
	return c.addChan(driver.FuncCreateCITwoEdgeSepChan, counter, alias, driver.Args{
		driver.F64(cfg.MinVal),
		driver.F64(cfg.MaxVal),
		driver.I32(int32(cfg.Units)),
		driver.I32(int32(cfg.FirstEdge)),
		driver.I32(int32(cfg.SecondEdge)),
		driver.Str(cfg.CustomScaleName),
	})
}
