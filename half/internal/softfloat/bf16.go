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

package softfloat

import "math"

// BF16ToF32Bits decodes a bfloat16 pattern into float32 bits. The exponent
// layouts match, so this is a plain shift.
func BF16ToF32Bits(b uint16) uint32 {
	return uint32(b) << 16
}

// BF16ToF64Bits decodes a bfloat16 pattern into float64 bits by widening the
// float32 value.
func BF16ToF64Bits(b uint16) uint64 {
	return math.Float64bits(float64(math.Float32frombits(BF16ToF32Bits(b))))
}

// F32BitsToBF16 encodes float32 bits as bfloat16, rounding the discarded low
// half to nearest with ties to even. NaNs keep their sign and the top of the
// payload with the quiet bit forced.
func F32BitsToBF16(x uint32) uint16 {
	if x&0x7FFFFFFF > 0x7F800000 {
		return uint16(x>>16) | 0x0040
	}
	// Adding 0x7FFF carries into bit 16 when bit 15 is set and any lower bit
	// is set; the extra lsb breaks exact ties toward even. A carry out of the
	// largest finite value lands on infinity.
	x += 0x7FFF + (x>>16)&1
	return uint16(x >> 16)
}

// F64BitsToBF16 encodes float64 bits as bfloat16 by first narrowing to
// float32 with round-to-odd, then rounding that to bfloat16.
func F64BitsToBF16(x uint64) uint16 {
	return F32BitsToBF16(F64BitsToF32RoundOdd(x))
}

// F64BitsToF32RoundOdd narrows float64 bits to float32 bits. Inexact
// results are rounded to whichever neighbour has an odd significand, which
// keeps a sticky trace of the discarded bits. A later round-to-nearest-even
// into any format at least two bits narrower than float32 then yields the
// correctly rounded result of the original float64.
//
// NaNs narrow the way the float64 to float32 conversion does; finite values
// beyond the float32 range narrow to the largest finite float32.
func F64BitsToF32RoundOdd(x uint64) uint32 {
	f := math.Float64frombits(x)
	n := float32(f)
	bits := math.Float32bits(n)
	if math.IsNaN(f) || float64(n) == f {
		return bits
	}
	if bits&1 != 0 {
		return bits
	}
	// n is even and inexact, so the other bracketing neighbour is odd.
	if math.Abs(float64(n)) > math.Abs(f) {
		return bits - 1
	}
	return bits + 1
}
