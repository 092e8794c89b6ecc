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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validChannel() Channel {
	return Channel{
		ID:      "spindle",
		Type:    ChannelTypeCountEdges,
		Counter: "Dev1/ctr0",
	}
}

func TestChannelValidate(t *testing.T) {
	if err := validChannel().Validate(); err != nil {
		t.Errorf("Valid channel rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Channel)
	}{
		{"no id", func(c *Channel) { c.ID = "" }},
		{"no counter", func(c *Channel) { c.Counter = "" }},
		{"bad type", func(c *Channel) { c.Type = "voltage" }},
		{"bad edge", func(c *Channel) { c.Edge = "both" }},
		{"inverted range", func(c *Channel) { c.MinVal = 10; c.MaxVal = 2 }},
		{"bad interval", func(c *Channel) { c.SampleInterval = "soon" }},
	}
	for _, test := range tests {
		c := validChannel()
		test.mutate(&c)
		if err := c.Validate(); !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", test.name, err)
		}
	}
}

func TestChannelGetSampleInterval(t *testing.T) {
	c := validChannel()
	if interval := c.GetSampleInterval(time.Second); interval != time.Second {
		t.Errorf("Expected fallback to default, got %v", interval)
	}
	c.SampleInterval = "250ms"
	if interval := c.GetSampleInterval(time.Second); interval != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", interval)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Channels: []Channel{validChannel()}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}

	empty := Config{}
	if err := empty.Validate(); !IsValidation(err) {
		t.Errorf("Expected validation error for empty config, got %v", err)
	}

	duplicate := Config{Channels: []Channel{validChannel(), validChannel()}}
	if err := duplicate.Validate(); !IsValidation(err) {
		t.Errorf("Expected validation error for duplicate ids, got %v", err)
	}

	badInterval := Config{SampleInterval: "soon", Channels: []Channel{validChannel()}}
	if err := badInterval.Validate(); !IsValidation(err) {
		t.Errorf("Expected validation error for bad interval, got %v", err)
	}
}

func TestConfigChannelByID(t *testing.T) {
	cfg := Config{Channels: []Channel{validChannel()}}
	if _, found := cfg.ChannelByID("spindle"); !found {
		t.Error("Expected to find channel 'spindle'")
	}
	if _, found := cfg.ChannelByID("missing"); found {
		t.Error("Did not expect to find channel 'missing'")
	}
}

func TestLoadConfig(t *testing.T) {
	content := `{
		"sample-interval": "500ms",
		"channels": [
			{"id": "spindle", "type": "count-edges", "counter": "Dev1/ctr0", "edge": "falling"},
			{"id": "belt", "type": "frequency", "counter": "Dev1/ctr1", "min-val": 2, "max-val": 1000}
		]
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GetSampleInterval() != 500*time.Millisecond {
		t.Errorf("Expected 500ms default interval, got %v", cfg.GetSampleInterval())
	}
	if len(cfg.Channels) != 2 {
		t.Fatalf("Expected 2 channels, got %d", len(cfg.Channels))
	}
	if cfg.Channels[0].Edge != EdgeFalling {
		t.Errorf("Expected falling edge, got %q", cfg.Channels[0].Edge)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !IsValidation(err) {
		t.Errorf("Expected validation error for invalid JSON, got %v", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
