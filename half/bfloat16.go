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
	"math"

	"github.com/ajroetker/go-half/half/internal/softfloat"
)

// BFloat16 represents a Brain Floating Point 16-bit number.
// It has the same exponent range as float32 but reduced mantissa precision.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
//
// Properties:
//   - Total bits: 16
//   - Exponent bits: 8 (bias: 127, same as float32)
//   - Mantissa bits: 7
//   - Max value: ~3.39e38 (same range as float32)
//   - Precision: ~2.4 decimal digits
//
// BFloat16 is the upper 16 bits of a float32, which makes widening a shift.
// No backend offers native BFloat16 arithmetic, so conversions and
// arithmetic always run in software.
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero                 BFloat16 = 0x0000 // Positive zero
	BFloat16NegZero              BFloat16 = 0x8000 // Negative zero
	BFloat16One                  BFloat16 = 0x3F80 // 1.0
	BFloat16NegOne               BFloat16 = 0xBF80 // -1.0
	BFloat16Inf                  BFloat16 = 0x7F80 // Positive infinity
	BFloat16NegInf               BFloat16 = 0xFF80 // Negative infinity
	BFloat16NaN                  BFloat16 = 0x7FC0 // Quiet NaN (canonical)
	BFloat16Epsilon              BFloat16 = 0x3C00 // 2^-7
	BFloat16Max                  BFloat16 = 0x7F7F // ~3.39e38 (max finite value)
	BFloat16Min                  BFloat16 = 0xFF7F // ~-3.39e38 (most negative finite value)
	BFloat16MinPositive          BFloat16 = 0x0080 // ~1.18e-38 (smallest normal)
	BFloat16MinPositiveSubnormal BFloat16 = 0x0001 // ~9.18e-41 (smallest subnormal)
)

// BFloat16 approximations of mathematical constants, rounded to nearest.
const (
	BFloat16E      BFloat16 = 0x402E // 2.71875
	BFloat16Pi     BFloat16 = 0x4049 // 3.140625
	BFloat16Sqrt2  BFloat16 = 0x3FB5 // 1.4140625
	BFloat16Ln2    BFloat16 = 0x3F31 // 0.69140625
	BFloat16Ln10   BFloat16 = 0x4013 // 2.296875
	BFloat16Log2E  BFloat16 = 0x3FB9 // 1.4453125
	BFloat16Log10E BFloat16 = 0x3EDE // 0.43359375
)

// BFloat16 format parameters.
const (
	BFloat16MantissaDigits = 8
	BFloat16Digits         = 2
	BFloat16MinExp         = -125
	BFloat16MaxExp         = 128
	BFloat16Min10Exp       = -37
	BFloat16Max10Exp       = 38
)

const (
	bfloat16ExpMask      = 0x7F80
	bfloat16MantissaMask = 0x007F
	bfloat16SignMask     = 0x8000
)

// BFloat16ToFloat32 converts a BFloat16 to float32.
// This is a simple bit shift since bfloat16 is the upper 16 bits of float32.
func BFloat16ToFloat32(b BFloat16) float32 {
	return math.Float32frombits(softfloat.BF16ToF32Bits(uint16(b)))
}

// Float32ToBFloat16 converts a float32 to BFloat16 with round-to-nearest-even.
func Float32ToBFloat16(f float32) BFloat16 {
	return BFloat16(softfloat.F32BitsToBF16(math.Float32bits(f)))
}

// BFloat16ToFloat64 converts a BFloat16 to float64. The result is exact.
func BFloat16ToFloat64(b BFloat16) float64 {
	return math.Float64frombits(softfloat.BF16ToF64Bits(uint16(b)))
}

// Float64ToBFloat16 converts a float64 to BFloat16. The value is narrowed
// to float32 first with round-to-odd, so the result is rounded only once
// in effect.
func Float64ToBFloat16(f float64) BFloat16 {
	return BFloat16(softfloat.F64BitsToBF16(math.Float64bits(f)))
}

// NewBFloat16 creates a BFloat16 from a float32 value.
func NewBFloat16(f float32) BFloat16 {
	return Float32ToBFloat16(f)
}

// NewBFloat16FromFloat64 creates a BFloat16 from a float64 value.
func NewBFloat16FromFloat64(f float64) BFloat16 {
	return Float64ToBFloat16(f)
}

// BFloat16FromBits creates a BFloat16 from raw bits.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// Float32 converts this BFloat16 to float32.
func (b BFloat16) Float32() float32 {
	return BFloat16ToFloat32(b)
}

// Float64 converts this BFloat16 to float64.
func (b BFloat16) Float64() float64 {
	return BFloat16ToFloat64(b)
}

// IsNaN returns true if b is a NaN value.
func (b BFloat16) IsNaN() bool {
	return b&bfloat16ExpMask == bfloat16ExpMask && b&bfloat16MantissaMask != 0
}

// IsInf returns true if b is positive or negative infinity.
func (b BFloat16) IsInf() bool {
	return b&0x7FFF == bfloat16ExpMask
}

// IsFinite returns true if b is neither infinite nor NaN.
func (b BFloat16) IsFinite() bool {
	return b&bfloat16ExpMask != bfloat16ExpMask
}

// IsZero returns true if b is positive or negative zero.
func (b BFloat16) IsZero() bool {
	return b&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set.
func (b BFloat16) IsNegative() bool {
	return b&bfloat16SignMask != 0
}

// IsDenormal returns true if b is a denormalized (subnormal) number.
func (b BFloat16) IsDenormal() bool {
	return b&bfloat16ExpMask == 0 && b&bfloat16MantissaMask != 0
}

// IsNormal returns true if b is neither zero, subnormal, infinite nor NaN.
func (b BFloat16) IsNormal() bool {
	exp := b & bfloat16ExpMask
	return exp != 0 && exp != bfloat16ExpMask
}
