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
	"os"
	"strconv"
	"strings"
)

// Policy describes how a build decides between hardware and software
// conversions.
type Policy int

const (
	// PolicySoftware always uses the integer conversion engine. It applies
	// to the noasm build tag and to architectures without a backend.
	PolicySoftware Policy = iota

	// PolicyRuntime checks the CPU once at first use and picks the hardware
	// backend when the extension is present.
	PolicyRuntime

	// PolicyStatic uses the hardware backend unconditionally because the
	// build target guarantees the extension (GOAMD64=v3, or macOS on arm64).
	PolicyStatic
)

// String returns a human-readable name for the policy.
func (p Policy) String() string {
	switch p {
	case PolicySoftware:
		return "software"
	case PolicyRuntime:
		return "runtime"
	case PolicyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Capabilities records which half-precision instruction extensions are
// usable in this process.
type Capabilities struct {
	// Policy is the dispatch policy compiled into this binary.
	Policy Policy

	// F16C reports x86 F16C conversions, with AVX state enabled by the OS.
	F16C bool

	// FP16 reports the ARMv8.2-A FP16 extension (scalar and vector
	// conversions and arithmetic).
	FP16 bool

	// NoSimd reports that HALF_NO_SIMD forced the software backend.
	NoSimd bool
}

// String lists the policy and the usable extensions.
func (c Capabilities) String() string {
	var b strings.Builder
	b.WriteString(c.Policy.String())
	if c.F16C {
		b.WriteString("+f16c")
	}
	if c.FP16 {
		b.WriteString("+fp16")
	}
	if c.NoSimd {
		b.WriteString(" (HALF_NO_SIMD)")
	}
	return b.String()
}

// Detect returns the process-wide capability token. Under PolicyRuntime the
// CPU is queried once, on the first call from any goroutine; the other
// policies return a value fixed at compile time.
func Detect() Capabilities {
	return detectCapabilities()
}

// ActiveBackend returns the name of the backend serving conversions.
func ActiveBackend() string {
	return active().Name()
}

// HasNativeArithmetic reports whether Float16 arithmetic runs on hardware
// half-precision instructions rather than through float32.
func HasNativeArithmetic() bool {
	return activeArith() != nil
}

// NoSimdEnv checks if the HALF_NO_SIMD environment variable is set.
// When set, runtime-dispatched builds use the software backend regardless
// of CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HALF_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Backend is the fixed operation set a conversion backend provides. Values
// travel as raw bit patterns so that backends do not depend on this
// package's types.
type Backend interface {
	// Name identifies the backend, e.g. "f16c" or "software".
	Name() string

	// Lanes is the float32 batch width of the bulk operations.
	Lanes() int

	F16ToF32(h uint16) float32
	F32ToF16(f float32) uint16
	F16ToF64(h uint16) float64
	F64ToF16(f float64) uint16

	// The bulk operations convert the longest prefix of src that the
	// backend handles in whole batches and return its length. dst is at
	// least as long as src.
	PromoteF16ToF32(src []uint16, dst []float32) int
	DemoteF32ToF16(src []float32, dst []uint16) int
	PromoteF16ToF64(src []uint16, dst []float64) int
	DemoteF64ToF16(src []float64, dst []uint16) int
}

// ArithmeticBackend is implemented by backends with native binary16
// arithmetic. Results are rounded once, directly to binary16.
type ArithmeticBackend interface {
	Backend

	AddF16(a, b uint16) uint16
	SubF16(a, b uint16) uint16
	MulF16(a, b uint16) uint16
	DivF16(a, b uint16) uint16
	MulAddF16(a, b, c uint16) uint16 // a*b + c

	AddF16x8(a, b [8]uint16) [8]uint16
	SubF16x8(a, b [8]uint16) [8]uint16
	MulF16x8(a, b [8]uint16) [8]uint16
	DivF16x8(a, b [8]uint16) [8]uint16
	MulAddF16x8(a, b, c [8]uint16) [8]uint16 // a*b + c per lane
}
