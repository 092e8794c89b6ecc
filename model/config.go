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

package model

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ChannelType selects the counter measurement modality of a channel.
type ChannelType string

const (
	ChannelTypeCountEdges ChannelType = "count-edges"
	ChannelTypeFrequency  ChannelType = "frequency"
	ChannelTypePeriod     ChannelType = "period"
	ChannelTypePulseWidth ChannelType = "pulse-width"
	ChannelTypeDutyCycle  ChannelType = "duty-cycle"
	ChannelTypeAngEncoder ChannelType = "ang-encoder"
)

// Validate the channel type.
func (t ChannelType) Validate() error {
	switch t {
	case ChannelTypeCountEdges, ChannelTypeFrequency, ChannelTypePeriod,
		ChannelTypePulseWidth, ChannelTypeDutyCycle, ChannelTypeAngEncoder:
		return nil
	}
	return errors.Wrapf(ValidationError, "unsupported channel type '%s'", string(t))
}

const (
	// EdgeRising selects the rising signal edge.
	EdgeRising = "rising"
	// EdgeFalling selects the falling signal edge.
	EdgeFalling = "falling"

	defaultSampleInterval = time.Second
)

// Channel configures a single counter input channel, sampled by its own
// task.
type Channel struct {
	// Unique ID of the channel within the worker
	ID string `json:"id"`
	// Measurement modality
	Type ChannelType `json:"type"`
	// Physical counter specifier, e.g. "Dev1/ctr0" or "Dev1/ctr0:3"
	Counter string `json:"counter"`
	// Optional virtual channel name
	Name string `json:"name,omitempty"`
	// Edge polarity ("rising" or "falling"); empty means rising
	Edge string `json:"edge,omitempty"`
	// Expected measurement range, for modalities that take one.
	// When both are zero, the driver defaults are used.
	MinVal float64 `json:"min-val,omitempty"`
	MaxVal float64 `json:"max-val,omitempty"`
	// Encoder pulses per revolution (ang-encoder only)
	PulsesPerRev uint32 `json:"pulses-per-rev,omitempty"`
	// Sample interval override, e.g. "250ms"
	SampleInterval string `json:"sample-interval,omitempty"`
}

// Validate the channel configuration, returning nil on ok,
// or an error upon validation issues.
func (c Channel) Validate() error {
	if c.ID == "" {
		return errors.Wrap(ValidationError, "channel has no id")
	}
	if c.Counter == "" {
		return errors.Wrapf(ValidationError, "channel '%s' has no counter", c.ID)
	}
	if err := c.Type.Validate(); err != nil {
		return maskAny(err)
	}
	switch c.Edge {
	case "", EdgeRising, EdgeFalling:
		// ok
	default:
		return errors.Wrapf(ValidationError, "invalid edge '%s' in channel '%s'", c.Edge, c.ID)
	}
	if (c.MinVal != 0 || c.MaxVal != 0) && c.MinVal >= c.MaxVal {
		return errors.Wrapf(ValidationError, "invalid range [%v, %v] in channel '%s'", c.MinVal, c.MaxVal, c.ID)
	}
	if c.SampleInterval != "" {
		if _, err := time.ParseDuration(c.SampleInterval); err != nil {
			return errors.Wrapf(ValidationError, "invalid sample-interval '%s' in channel '%s'", c.SampleInterval, c.ID)
		}
	}
	return nil
}

// GetSampleInterval returns the sample interval of the channel, falling
// back to the given default.
func (c Channel) GetSampleInterval(defaultInterval time.Duration) time.Duration {
	if c.SampleInterval == "" {
		return defaultInterval
	}
	interval, err := time.ParseDuration(c.SampleInterval)
	if err != nil {
		return defaultInterval
	}
	return interval
}

// Config is the root worker configuration.
type Config struct {
	// Default sample interval for all channels, e.g. "1s"
	SampleInterval string `json:"sample-interval,omitempty"`
	// List of counter channels sampled by the worker
	Channels []Channel `json:"channels"`
}

// ChannelByID returns the channel with given ID.
// Return false if not found.
func (c Config) ChannelByID(id string) (Channel, bool) {
	for _, ch := range c.Channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return Channel{}, false
}

// GetSampleInterval returns the configured default sample interval.
func (c Config) GetSampleInterval() time.Duration {
	if c.SampleInterval == "" {
		return defaultSampleInterval
	}
	interval, err := time.ParseDuration(c.SampleInterval)
	if err != nil {
		return defaultSampleInterval
	}
	return interval
}

// Validate the given configuration, returning nil on ok,
// or an error upon validation issues.
func (c Config) Validate() error {
	if c.SampleInterval != "" {
		if _, err := time.ParseDuration(c.SampleInterval); err != nil {
			return errors.Wrapf(ValidationError, "invalid sample-interval '%s'", c.SampleInterval)
		}
	}
	if len(c.Channels) == 0 {
		return errors.Wrap(ValidationError, "no channels configured")
	}
	seen := make(map[string]struct{})
	for _, ch := range c.Channels {
		if err := ch.Validate(); err != nil {
			return maskAny(err)
		}
		if _, found := seen[ch.ID]; found {
			return errors.Wrapf(ValidationError, "duplicate channel id '%s'", ch.ID)
		}
		seen[ch.ID] = struct{}{}
	}
	return nil
}

// LoadConfig reads and validates a worker configuration from the given
// JSON file.
func LoadConfig(path string) (Config, error) {
	var config Config
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, maskAny(err)
	}
	if err := json.Unmarshal(content, &config); err != nil {
		return Config{}, errors.Wrapf(ValidationError, "cannot parse '%s': %s", path, err.Error())
	}
	if err := config.Validate(); err != nil {
		return Config{}, maskAny(err)
	}
	return config, nil
}
