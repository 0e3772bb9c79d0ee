// Copyright 2025 go-highway Authors
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

package half

import (
	"errors"
	"fmt"
	"strconv"
)

// String formats h like a float32 holding the same value. The output
// parses back to h with ParseFloat16.
func (h Float16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}

// String formats b like a float32 holding the same value.
func (b BFloat16) String() string {
	return strconv.FormatFloat(float64(b.Float32()), 'g', -1, 32)
}

// ParseFloat16 parses a decimal or hexadecimal floating-point string, as
// accepted by strconv.ParseFloat, and rounds it to Float16. Out-of-range
// values become infinities rather than errors.
func ParseFloat16(s string) (Float16, error) {
	f, err := parseWide(s)
	if err != nil {
		return Float16NaN, fmt.Errorf("half: parsing %q as float16: %w", s, err)
	}
	return Float64ToFloat16(f), nil
}

// ParseBFloat16 parses a floating-point string and rounds it to BFloat16.
func ParseBFloat16(s string) (BFloat16, error) {
	f, err := parseWide(s)
	if err != nil {
		return BFloat16NaN, fmt.Errorf("half: parsing %q as bfloat16: %w", s, err)
	}
	return Float64ToBFloat16(f), nil
}

// parseWide treats a float64 range error as success: strconv already
// returned the signed infinity or zero that the narrower formats want.
func parseWide(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}
