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

//go:build !daqmx || !cgo

package driver

import "github.com/pkg/errors"

// NewNIDAQmx returns an error: this binary was built without the vendor
// driver. Build with `-tags daqmx` and the NI-DAQmx SDK installed.
func NewNIDAQmx() (API, error) {
	return nil, errors.New("NI-DAQmx support not compiled in (build with -tags daqmx)")
}
