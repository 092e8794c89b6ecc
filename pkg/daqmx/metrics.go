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
	"github.com/daqnet/CounterWorker/pkg/metrics"
)

const (
	subSystem = "daqmx"
)

var (
	// Total number of channels created per driver entry point
	channelsCreatedTotal = metrics.MustRegisterCounterVec(subSystem,
		"channels_created_total",
		"Total number of channels created",
		"func")

	// Total number of failed channel-creation calls per driver entry point
	channelCreateErrorsTotal = metrics.MustRegisterCounterVec(subSystem,
		"channel_create_errors_total",
		"Total number of failed channel-creation calls",
		"func")
)
