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

//go:build !noasm && arm64

// Float16 operations for ARM64 with the FP16 extension (ARMv8.2-A
// FEAT_FP16, reported as FPHP and ASIMDHP).
package asm

// FP16 bulk conversion widths.
const (
	FP16Lanes    = 8 // halves per float32 batch
	FP16F64Lanes = 4 // halves per float64 batch
)

// ============================================================================
// Scalar conversions
// ============================================================================

// F16ToF32FP16 widens one binary16 value (FCVT Sd, Hn).
func F16ToF32FP16(h uint16) float32

// F32ToF16FP16 narrows one float32 (FCVT Hd, Sn), rounding to nearest even.
func F32ToF16FP16(f float32) uint16

// F16ToF64FP16 widens one binary16 value (FCVT Dd, Hn).
func F16ToF64FP16(h uint16) float64

// F64ToF16FP16 narrows one float64 in a single rounding step (FCVT Hd, Dn).
func F64ToF16FP16(f float64) uint16

// ============================================================================
// Scalar arithmetic
// ============================================================================

// AddF16FP16 returns a + b computed in binary16.
func AddF16FP16(a, b uint16) uint16

// SubF16FP16 returns a - b computed in binary16.
func SubF16FP16(a, b uint16) uint16

// MulF16FP16 returns a * b computed in binary16.
func MulF16FP16(a, b uint16) uint16

// DivF16FP16 returns a / b computed in binary16.
func DivF16FP16(a, b uint16) uint16

// MulAddF16FP16 returns a*b + c with a single rounding (FMADD).
func MulAddF16FP16(a, b, c uint16) uint16

// ============================================================================
// 4-lane conversions
// ============================================================================

//go:noescape
func promoteF16x4FP16(src *[4]uint16, dst *[4]float32)

//go:noescape
func demoteF32x4FP16(src *[4]float32, dst *[4]uint16)

//go:noescape
func promoteF16x4ToF64FP16(src *[4]uint16, dst *[4]float64)

//go:noescape
func demoteF64x4FP16(src *[4]float64, dst *[4]uint16)

// PromoteF16x4FP16 widens four halves to float32 (FCVTL).
func PromoteF16x4FP16(v [4]uint16) [4]float32 {
	var r [4]float32
	promoteF16x4FP16(&v, &r)
	return r
}

// DemoteF32x4FP16 narrows four float32 values (FCVTN).
func DemoteF32x4FP16(v [4]float32) [4]uint16 {
	var r [4]uint16
	demoteF32x4FP16(&v, &r)
	return r
}

// PromoteF16x4ToF64FP16 widens four halves to float64.
func PromoteF16x4ToF64FP16(v [4]uint16) [4]float64 {
	var r [4]float64
	promoteF16x4ToF64FP16(&v, &r)
	return r
}

// DemoteF64x4FP16 narrows four float64 values. The float64 to float32 step
// uses FCVTXN (round to odd) so the final FCVTN rounds only once in effect.
func DemoteF64x4FP16(v [4]float64) [4]uint16 {
	var r [4]uint16
	demoteF64x4FP16(&v, &r)
	return r
}

// ============================================================================
// Bulk conversions
// ============================================================================

//go:noescape
func promoteF16ToF32FP16(src *uint16, dst *float32, n int)

//go:noescape
func demoteF32ToF16FP16(src *float32, dst *uint16, n int)

//go:noescape
func promoteF16ToF64FP16(src *uint16, dst *float64, n int)

//go:noescape
func demoteF64ToF16FP16(src *float64, dst *uint16, n int)

// PromoteF16ToF32FP16 widens the longest prefix of a whose length is a
// multiple of FP16Lanes into result and returns that length. result must be
// at least as long as a; this is not checked.
func PromoteF16ToF32FP16(a []uint16, result []float32) int {
	n := len(a) &^ (FP16Lanes - 1)
	if n == 0 {
		return 0
	}
	promoteF16ToF32FP16(&a[0], &result[0], n)
	return n
}

// DemoteF32ToF16FP16 is the narrowing counterpart of PromoteF16ToF32FP16.
func DemoteF32ToF16FP16(a []float32, result []uint16) int {
	n := len(a) &^ (FP16Lanes - 1)
	if n == 0 {
		return 0
	}
	demoteF32ToF16FP16(&a[0], &result[0], n)
	return n
}

// PromoteF16ToF64FP16 widens the longest prefix of a whose length is a
// multiple of FP16F64Lanes and returns that length.
func PromoteF16ToF64FP16(a []uint16, result []float64) int {
	n := len(a) &^ (FP16F64Lanes - 1)
	if n == 0 {
		return 0
	}
	promoteF16ToF64FP16(&a[0], &result[0], n)
	return n
}

// DemoteF64ToF16FP16 is the narrowing counterpart of PromoteF16ToF64FP16.
func DemoteF64ToF16FP16(a []float64, result []uint16) int {
	n := len(a) &^ (FP16F64Lanes - 1)
	if n == 0 {
		return 0
	}
	demoteF64ToF16FP16(&a[0], &result[0], n)
	return n
}
