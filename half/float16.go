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

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Total bits: 16
//   - Exponent bits: 5 (bias: 15)
//   - Mantissa bits: 10
//   - Max value: 65504
//   - Min positive normal: ~6.10e-5
//   - Precision: ~3.3 decimal digits
//
// Every 16-bit pattern is a valid Float16. The == operator compares bit
// patterns; use Eq for IEEE equality.
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero                 Float16 = 0x0000 // Positive zero
	Float16NegZero              Float16 = 0x8000 // Negative zero
	Float16One                  Float16 = 0x3C00 // 1.0
	Float16NegOne               Float16 = 0xBC00 // -1.0
	Float16Inf                  Float16 = 0x7C00 // Positive infinity
	Float16NegInf               Float16 = 0xFC00 // Negative infinity
	Float16NaN                  Float16 = 0x7E00 // Quiet NaN (canonical)
	Float16Epsilon              Float16 = 0x1400 // 2^-10, the gap between 1 and the next value
	Float16Max                  Float16 = 0x7BFF // 65504 (max finite value)
	Float16Min                  Float16 = 0xFBFF // -65504 (most negative finite value)
	Float16MinPositive          Float16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	Float16MinPositiveSubnormal Float16 = 0x0001 // 2^-24 (~5.96e-8, smallest subnormal)
)

// Float16 approximations of mathematical constants, rounded to nearest.
const (
	Float16E      Float16 = 0x4170 // 2.71875
	Float16Pi     Float16 = 0x4248 // 3.140625
	Float16Sqrt2  Float16 = 0x3DA8 // 1.4140625
	Float16Ln2    Float16 = 0x398C // 0.693359375
	Float16Ln10   Float16 = 0x409B // 2.302734375
	Float16Log2E  Float16 = 0x3DC5 // 1.4423828125
	Float16Log10E Float16 = 0x36F3 // 0.434326171875
)

// Float16 format parameters.
const (
	Float16MantissaDigits = 11 // significand bits, including the implicit one
	Float16Digits         = 3  // decimal digits that survive a round trip
	Float16MinExp         = -13
	Float16MaxExp         = 16
	Float16Min10Exp       = -4
	Float16Max10Exp       = 4
)

const (
	float16ExpMask      = 0x7C00
	float16MantissaMask = 0x03FF
	float16SignMask     = 0x8000
)

// Float16ToFloat32 converts a single Float16 to float32. The result is exact.
func Float16ToFloat32(h Float16) float32 {
	return active().F16ToF32(uint16(h))
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
// Overflow gives a signed infinity and underflow a signed zero or a
// rounded subnormal.
func Float32ToFloat16(f float32) Float16 {
	return Float16(active().F32ToF16(f))
}

// Float16ToFloat64 converts a single Float16 to float64. The result is exact.
func Float16ToFloat64(h Float16) float64 {
	return active().F16ToF64(uint16(h))
}

// Float64ToFloat16 converts a float64 to Float16 with a single
// round-to-nearest-even step.
func Float64ToFloat16(f float64) Float16 {
	return Float16(active().F64ToF16(f))
}

// NewFloat16 creates a Float16 from a float32 value.
func NewFloat16(f float32) Float16 {
	return Float32ToFloat16(f)
}

// NewFloat16FromFloat64 creates a Float16 from a float64 value.
func NewFloat16FromFloat64(f float64) Float16 {
	return Float64ToFloat16(f)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts this Float16 to float64.
func (h Float16) Float64() float64 {
	return Float16ToFloat64(h)
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&float16ExpMask == float16ExpMask && h&float16MantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == float16ExpMask
}

// IsFinite returns true if h is neither infinite nor NaN.
func (h Float16) IsFinite() bool {
	return h&float16ExpMask != float16ExpMask
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set. This includes -0 and
// NaNs with the sign bit set.
func (h Float16) IsNegative() bool {
	return h&float16SignMask != 0
}

// IsDenormal returns true if h is a denormalized (subnormal) number.
func (h Float16) IsDenormal() bool {
	return h&float16ExpMask == 0 && h&float16MantissaMask != 0
}

// IsNormal returns true if h is neither zero, subnormal, infinite nor NaN.
func (h Float16) IsNormal() bool {
	exp := h & float16ExpMask
	return exp != 0 && exp != float16ExpMask
}

// Float16ToBFloat16 converts a Float16 to BFloat16, rounding the mantissa to
// seven bits. Every Float16 is in BFloat16 range.
func Float16ToBFloat16(h Float16) BFloat16 {
	return Float32ToBFloat16(Float16ToFloat32(h))
}

// BFloat16ToFloat16 converts a BFloat16 to Float16. Values beyond the
// Float16 range overflow to infinity or underflow to zero.
func BFloat16ToFloat16(b BFloat16) Float16 {
	return Float32ToFloat16(BFloat16ToFloat32(b))
}
