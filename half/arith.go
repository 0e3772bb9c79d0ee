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

import "math"

// Float16 arithmetic runs on native binary16 instructions when the selected
// backend has them. Otherwise each operation promotes to float32, computes,
// and demotes. float32 carries more than twice the Float16 significand plus
// two bits, so the two roundings of +, -, * and / agree with one correctly
// rounded binary16 operation and both paths give the same bits.
//
// BFloat16 has no native backend and always uses the float32 path.

// Add returns h + o.
func (h Float16) Add(o Float16) Float16 {
	if a := activeArith(); a != nil {
		return Float16(a.AddF16(uint16(h), uint16(o)))
	}
	return Float32ToFloat16(h.Float32() + o.Float32())
}

// Sub returns h - o.
func (h Float16) Sub(o Float16) Float16 {
	if a := activeArith(); a != nil {
		return Float16(a.SubF16(uint16(h), uint16(o)))
	}
	return Float32ToFloat16(h.Float32() - o.Float32())
}

// Mul returns h * o.
func (h Float16) Mul(o Float16) Float16 {
	if a := activeArith(); a != nil {
		return Float16(a.MulF16(uint16(h), uint16(o)))
	}
	return Float32ToFloat16(h.Float32() * o.Float32())
}

// Div returns h / o.
func (h Float16) Div(o Float16) Float16 {
	if a := activeArith(); a != nil {
		return Float16(a.DivF16(uint16(h), uint16(o)))
	}
	return Float32ToFloat16(h.Float32() / o.Float32())
}

// Fma returns h*b + c computed with a single rounding.
func (h Float16) Fma(b, c Float16) Float16 {
	if a := activeArith(); a != nil {
		return Float16(a.MulAddF16(uint16(h), uint16(b), uint16(c)))
	}
	return Float64ToFloat16(fmaRoundOdd(h.Float64(), b.Float64(), c.Float64()))
}

// Neg returns -h. Only the sign bit changes, so NaN stays NaN.
func (h Float16) Neg() Float16 {
	return h ^ float16SignMask
}

// Abs returns |h|.
func (h Float16) Abs() Float16 {
	return h &^ float16SignMask
}

// CopySign returns a value with the magnitude of h and the sign of sign.
func (h Float16) CopySign(sign Float16) Float16 {
	return h&^float16SignMask | sign&float16SignMask
}

// Signum returns 1 for positive values (including +0 and +Inf), -1 for
// negative ones, and h itself when h is NaN.
func (h Float16) Signum() Float16 {
	if h.IsNaN() {
		return h
	}
	return Float16One.CopySign(h)
}

// Add returns b + o.
func (b BFloat16) Add(o BFloat16) BFloat16 {
	return Float32ToBFloat16(b.Float32() + o.Float32())
}

// Sub returns b - o.
func (b BFloat16) Sub(o BFloat16) BFloat16 {
	return Float32ToBFloat16(b.Float32() - o.Float32())
}

// Mul returns b * o.
func (b BFloat16) Mul(o BFloat16) BFloat16 {
	return Float32ToBFloat16(b.Float32() * o.Float32())
}

// Div returns b / o.
func (b BFloat16) Div(o BFloat16) BFloat16 {
	return Float32ToBFloat16(b.Float32() / o.Float32())
}

// Fma returns b*m + c computed with a single rounding.
func (b BFloat16) Fma(m, c BFloat16) BFloat16 {
	return Float64ToBFloat16(fmaRoundOdd(b.Float64(), m.Float64(), c.Float64()))
}

// Neg returns -b.
func (b BFloat16) Neg() BFloat16 {
	return b ^ bfloat16SignMask
}

// Abs returns |b|.
func (b BFloat16) Abs() BFloat16 {
	return b &^ bfloat16SignMask
}

// CopySign returns a value with the magnitude of b and the sign of sign.
func (b BFloat16) CopySign(sign BFloat16) BFloat16 {
	return b&^bfloat16SignMask | sign&bfloat16SignMask
}

// Signum returns 1 for positive values, -1 for negative ones, and b itself
// when b is NaN.
func (b BFloat16) Signum() BFloat16 {
	if b.IsNaN() {
		return b
	}
	return BFloat16One.CopySign(b)
}

// fmaRoundOdd returns x*y + z rounded to odd in float64. x and y must be
// half-precision values, so their product is exact in float64; the sum's
// rounding error is recovered with TwoSum and folded into the last bit.
// Rounding the result once more to a format with at least two fewer
// significand bits gives the correctly rounded x*y + z.
func fmaRoundOdd(x, y, z float64) float64 {
	p := float64(x * y)
	s := p + z
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return s
	}
	bb := s - p
	e := (p - (s - bb)) + (z - bb)
	if e == 0 {
		return s
	}
	bits := math.Float64bits(s)
	if bits&1 != 0 {
		return s
	}
	// s is even and inexact: step one ulp toward the exact value.
	if (e > 0) == (s > 0) {
		bits++
	} else {
		bits--
	}
	return math.Float64frombits(bits)
}
