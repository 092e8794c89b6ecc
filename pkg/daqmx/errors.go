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

var (
	// MalformedSpecifierError is returned when a physical channel
	// specifier cannot be parsed.
	MalformedSpecifierError = errors.New("malformed channel specifier")
	// IsMalformedSpecifier returns true for MalformedSpecifierError causes.
	IsMalformedSpecifier = isErrorFunc(MalformedSpecifierError)

	// ValidationError is returned when channel configuration fails local
	// validation, before any driver call is made.
	ValidationError = errors.New("validation failed")
	// IsValidation returns true for ValidationError causes.
	IsValidation = isErrorFunc(ValidationError)

	maskAny = errors.WithStack
)

func isErrorFunc(typeOfError error) func(err error) bool {
	return func(err error) bool {
		return err == typeOfError || errors.Cause(err) == typeOfError
	}
}

// Error is a driver-reported error or warning, carrying the raw status
// code, the driver's message for that code and, for errors, the extended
// diagnostic of the failed call.
type Error struct {
	Code     driver.Status
	Message  string
	Extended string
}

func (e *Error) Error() string {
	kind := "error"
	if e.IsWarning() {
		kind = "warning"
	}
	if e.Extended != "" {
		return fmt.Sprintf("DAQmx %s %d: %s: %s", kind, int32(e.Code), e.Message, e.Extended)
	}
	return fmt.Sprintf("DAQmx %s %d: %s", kind, int32(e.Code), e.Message)
}

// IsWarning returns true when the underlying status code is positive.
func (e *Error) IsWarning() bool { return e.Code.Warning() }

// AsError returns the *Error in the cause chain of err, if any.
func AsError(err error) (*Error, bool) {
	daqErr, ok := errors.Cause(err).(*Error)
	return daqErr, ok
}
