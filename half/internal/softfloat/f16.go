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

// Package softfloat converts between the 16-bit float layouts and the
// float32/float64 bit patterns using integer arithmetic only.
//
// Every function is total: each of the 65536 16-bit patterns is a valid
// input, and every wide pattern (including NaNs with arbitrary payloads)
// encodes to some 16-bit pattern. Rounding is always round-to-nearest-even.
package softfloat

// IEEE binary16 layout.
const (
	f16SignMask     = 0x8000
	f16ExpMask      = 0x1F
	f16MantissaBits = 10
	f16MantissaMask = 0x3FF
	f16ExpBias      = 15
	f16Inf          = 0x7C00
	f16QuietBit     = 0x0200
)

// F16ToF32Bits decodes a binary16 pattern into float32 bits. The result is
// exact; NaNs keep their sign and payload with the quiet bit forced.
func F16ToF32Bits(h uint16) uint32 {
	sign := uint32(h&f16SignMask) << 16
	exp := uint32(h>>f16MantissaBits) & f16ExpMask
	mant := uint32(h & f16MantissaMask)

	switch exp {
	case 0:
		if mant == 0 {
			return sign
		}
		// Subnormal: shift the leading one up to the implicit bit position.
		shift := uint32(LeadingZeros16(uint16(mant)) - 5)
		mant = (mant << shift) & f16MantissaMask
		return sign | (113-shift)<<23 | mant<<13
	case f16ExpMask:
		if mant == 0 {
			return sign | 0x7F800000
		}
		return sign | 0x7FC00000 | mant<<13
	}
	return sign | (exp+127-f16ExpBias)<<23 | mant<<13
}

// F16ToF64Bits decodes a binary16 pattern into float64 bits.
func F16ToF64Bits(h uint16) uint64 {
	sign := uint64(h&f16SignMask) << 48
	exp := uint64(h>>f16MantissaBits) & f16ExpMask
	mant := uint64(h & f16MantissaMask)

	switch exp {
	case 0:
		if mant == 0 {
			return sign
		}
		shift := uint64(LeadingZeros16(uint16(mant)) - 5)
		mant = (mant << shift) & f16MantissaMask
		return sign | (1009-shift)<<52 | mant<<42
	case f16ExpMask:
		if mant == 0 {
			return sign | 0x7FF0000000000000
		}
		return sign | 0x7FF8000000000000 | mant<<42
	}
	return sign | (exp+1023-f16ExpBias)<<52 | mant<<42
}

// F32BitsToF16 encodes float32 bits as binary16.
//
// Magnitudes at or above 65520 become infinity, magnitudes at or below 2^-25
// become zero, and everything in between rounds to the nearest binary16
// value with ties to even. A rounding carry may move a subnormal into the
// normal range or the largest normal into infinity.
func F32BitsToF16(x uint32) uint16 {
	sign := uint16(x>>16) & f16SignMask
	biased := (x >> 23) & 0xFF
	mant := x & 0x7FFFFF

	if biased == 0xFF {
		if mant == 0 {
			return sign | f16Inf
		}
		// The quiet bit keeps a truncated payload from reading as infinity.
		return sign | f16Inf | f16QuietBit | uint16(mant>>13)
	}

	exp := int32(biased) - 127
	switch {
	case exp > f16ExpBias:
		return sign | f16Inf
	case exp >= 1-f16ExpBias:
		h := uint32(exp+f16ExpBias)<<f16MantissaBits | mant>>13
		return sign | uint16(roundNearestEven32(h, mant&0x1FFF, 0x1000))
	case exp < -25:
		return sign
	}

	// Subnormal result: the unit in the last place is 2^-24.
	mant |= 0x800000
	shift := uint32(-exp - 1)
	h := mant >> shift
	rem := mant & (1<<shift - 1)
	return sign | uint16(roundNearestEven32(h, rem, 1<<(shift-1)))
}

// F64BitsToF16 encodes float64 bits as binary16 with a single rounding step
// taken directly from the 52-bit significand.
func F64BitsToF16(x uint64) uint16 {
	sign := uint16(x>>48) & f16SignMask
	biased := (x >> 52) & 0x7FF
	mant := x & (1<<52 - 1)

	if biased == 0x7FF {
		if mant == 0 {
			return sign | f16Inf
		}
		return sign | f16Inf | f16QuietBit | uint16(mant>>42)
	}

	exp := int64(biased) - 1023
	switch {
	case exp > f16ExpBias:
		return sign | f16Inf
	case exp >= 1-f16ExpBias:
		h := uint64(exp+f16ExpBias)<<f16MantissaBits | mant>>42
		return sign | uint16(roundNearestEven64(h, mant&(1<<42-1), 1<<41))
	case exp < -25:
		return sign
	}

	mant |= 1 << 52
	shift := uint64(28 - exp)
	h := mant >> shift
	rem := mant & (1<<shift - 1)
	return sign | uint16(roundNearestEven64(h, rem, 1<<(shift-1)))
}

// roundNearestEven32 rounds the truncated value h up by one when the
// discarded bits rem exceed half, or equal half and h is odd.
func roundNearestEven32(h, rem, half uint32) uint32 {
	if rem > half || (rem == half && h&1 != 0) {
		h++
	}
	return h
}

func roundNearestEven64(h, rem, half uint64) uint64 {
	if rem > half || (rem == half && h&1 != 0) {
		h++
	}
	return h
}
