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

//go:build !noasm && amd64

// Float16 conversions for AMD64 with F16C (requires AVX state enabled by
// the OS). F16C only converts; there is no half-precision arithmetic.
package asm

// F16CLanes is the number of halves converted per YMM batch.
const F16CLanes = 8

// ============================================================================
// Scalar conversions
// ============================================================================

// F16ToF32F16C widens one binary16 value with VCVTPH2PS.
func F16ToF32F16C(h uint16) float32

// F32ToF16F16C narrows one float32 with VCVTPS2PH, rounding to nearest even.
func F32ToF16F16C(f float32) uint16

// ============================================================================
// 4-lane conversions (XMM)
// ============================================================================

//go:noescape
func promoteF16x4F16C(src *[4]uint16, dst *[4]float32)

//go:noescape
func demoteF32x4F16C(src *[4]float32, dst *[4]uint16)

// PromoteF16x4F16C widens four halves at once.
func PromoteF16x4F16C(v [4]uint16) [4]float32 {
	var r [4]float32
	promoteF16x4F16C(&v, &r)
	return r
}

// DemoteF32x4F16C narrows four float32 values at once.
func DemoteF32x4F16C(v [4]float32) [4]uint16 {
	var r [4]uint16
	demoteF32x4F16C(&v, &r)
	return r
}

// ============================================================================
// Bulk conversions (YMM, 8 lanes per iteration)
// ============================================================================

//go:noescape
func promoteF16ToF32F16C(src *uint16, dst *float32, n int)

//go:noescape
func demoteF32ToF16F16C(src *float32, dst *uint16, n int)

// PromoteF16ToF32F16C widens the longest prefix of a whose length is a
// multiple of F16CLanes into result and returns that length. result must be
// at least as long as a; this is not checked.
func PromoteF16ToF32F16C(a []uint16, result []float32) int {
	n := len(a) &^ (F16CLanes - 1)
	if n == 0 {
		return 0
	}
	promoteF16ToF32F16C(&a[0], &result[0], n)
	return n
}

// DemoteF32ToF16F16C narrows the longest prefix of a whose length is a
// multiple of F16CLanes into result and returns that length. result must be
// at least as long as a; this is not checked.
func DemoteF32ToF16F16C(a []float32, result []uint16) int {
	n := len(a) &^ (F16CLanes - 1)
	if n == 0 {
		return 0
	}
	demoteF32ToF16F16C(&a[0], &result[0], n)
	return n
}
