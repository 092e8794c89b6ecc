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
	"github.com/daqnet/CounterWorker/pkg/metrics"
)

const (
	subSystem = "service"
)

var (
	// Number of samples read per channel
	samplesReadTotal = metrics.MustRegisterCounterVec(subSystem,
		"samples_read_total",
		"Number of samples read",
		"id")

	// Number of failed sample reads per channel
	sampleErrorsTotal = metrics.MustRegisterCounterVec(subSystem,
		"sample_errors_total",
		"Number of failed sample reads",
		"id")

	// Most recent sample value per channel
	sampleValueGauge = metrics.MustRegisterGaugeVec(subSystem,
		"sample_value",
		"Most recent sample value",
		"id")

	// Number of samples published to MQTT
	mqttPublishedTotal = metrics.MustRegisterCounterVec(subSystem,
		"mqtt_published_total",
		"Number of samples published to MQTT",
		"id")
)
