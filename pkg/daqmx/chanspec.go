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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// UnflattenChannelString parses a possibly compound physical-channel
// specifier into the ordered list of individual channel names it denotes.
// Supported forms are comma lists ("Dev1/ctr0,Dev1/ctr2") and colon ranges
// ("Dev1/ctr0:3", "Dev1/ctr0:Dev1/ctr3"), in any combination.
// Device-relative order is preserved; nothing is dropped or duplicated.
func UnflattenChannelString(spec string) ([]string, error) {
	var result []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Wrapf(MalformedSpecifierError, "empty entry in specifier '%s'", spec)
		}
		expanded, err := expandRange(part)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	if len(result) == 0 {
		return nil, errors.Wrap(MalformedSpecifierError, "empty specifier")
	}
	return result, nil
}

// FlattenChannelString is the inverse of UnflattenChannelString: it joins
// individual channel names, compressing consecutive runs with a shared
// prefix into colon ranges.
func FlattenChannelString(names []string) string {
	var parts []string
	for i := 0; i < len(names); {
		prefix, start, err := splitTrailingDigits(names[i])
		if err != nil {
			parts = append(parts, names[i])
			i++
			continue
		}
		end := start
		j := i + 1
		for j < len(names) {
			p, n, err := splitTrailingDigits(names[j])
			if err != nil || p != prefix || n != end+1 {
				break
			}
			end = n
			j++
		}
		if end > start {
			parts = append(parts, fmt.Sprintf("%s%d:%d", prefix, start, end))
		} else {
			parts = append(parts, names[i])
		}
		i = j
	}
	return strings.Join(parts, ",")
}

// expandRange expands a single (non-comma) entry, which is either a plain
// channel name or a colon range.
func expandRange(part string) ([]string, error) {
	before, after, found := strings.Cut(part, ":")
	if !found {
		return []string{part}, nil
	}
	prefix, start, err := splitTrailingDigits(before)
	if err != nil {
		return nil, errors.Wrapf(MalformedSpecifierError, "range start '%s' has no numeric suffix", before)
	}
	endPrefix, end, err := splitTrailingDigits(after)
	if err != nil {
		return nil, errors.Wrapf(MalformedSpecifierError, "range end '%s' has no numeric suffix", after)
	}
	if endPrefix != "" && endPrefix != prefix {
		return nil, errors.Wrapf(MalformedSpecifierError, "range bounds '%s' and '%s' name different channels", before, after)
	}
	if end < start {
		return nil, errors.Wrapf(MalformedSpecifierError, "inverted range %d:%d in '%s'", start, end, part)
	}
	names := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		names = append(names, prefix+strconv.Itoa(i))
	}
	return names, nil
}

// splitTrailingDigits splits a channel name into its prefix and trailing
// channel number.
func splitTrailingDigits(s string) (string, int, error) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return "", 0, errors.Wrapf(MalformedSpecifierError, "'%s' has no numeric suffix", s)
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return "", 0, errors.Wrapf(MalformedSpecifierError, "invalid channel number in '%s'", s)
	}
	return s[:i], n, nil
}
