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

// Category is the IEEE 754 class of a half-precision value.
type Category int

const (
	CategoryNaN Category = iota
	CategoryInfinite
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "nan"
	case CategoryInfinite:
		return "infinite"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Classify returns the category of h.
func (h Float16) Classify() Category {
	return classify(uint16(h&float16ExpMask), uint16(h&float16MantissaMask), float16ExpMask)
}

// Classify returns the category of b.
func (b BFloat16) Classify() Category {
	return classify(uint16(b&bfloat16ExpMask), uint16(b&bfloat16MantissaMask), bfloat16ExpMask)
}

func classify(exp, mant, expMask uint16) Category {
	switch {
	case exp == expMask && mant != 0:
		return CategoryNaN
	case exp == expMask:
		return CategoryInfinite
	case exp == 0 && mant == 0:
		return CategoryZero
	case exp == 0:
		return CategorySubnormal
	default:
		return CategoryNormal
	}
}

// Both formats widen to float32 exactly, so the IEEE comparisons below
// compare the widened values: NaN is unordered and +0 equals -0.

// Eq reports whether h == o under IEEE rules.
func (h Float16) Eq(o Float16) bool { return h.Float32() == o.Float32() }

// Lt reports whether h < o.
func (h Float16) Lt(o Float16) bool { return h.Float32() < o.Float32() }

// Le reports whether h <= o.
func (h Float16) Le(o Float16) bool { return h.Float32() <= o.Float32() }

// Gt reports whether h > o.
func (h Float16) Gt(o Float16) bool { return h.Float32() > o.Float32() }

// Ge reports whether h >= o.
func (h Float16) Ge(o Float16) bool { return h.Float32() >= o.Float32() }

// Eq reports whether b == o under IEEE rules.
func (b BFloat16) Eq(o BFloat16) bool { return b.Float32() == o.Float32() }

// Lt reports whether b < o.
func (b BFloat16) Lt(o BFloat16) bool { return b.Float32() < o.Float32() }

// Le reports whether b <= o.
func (b BFloat16) Le(o BFloat16) bool { return b.Float32() <= o.Float32() }

// Gt reports whether b > o.
func (b BFloat16) Gt(o BFloat16) bool { return b.Float32() > o.Float32() }

// Ge reports whether b >= o.
func (b BFloat16) Ge(o BFloat16) bool { return b.Float32() >= o.Float32() }

// Min returns the smaller of h and o. A NaN operand is ignored unless both
// are NaN. Min(+0, -0) is -0.
func (h Float16) Min(o Float16) Float16 {
	switch {
	case h.IsNaN():
		return o
	case o.IsNaN():
		return h
	case h.IsZero() && o.IsZero():
		return h | o
	case h.Lt(o):
		return h
	default:
		return o
	}
}

// Max returns the larger of h and o. A NaN operand is ignored unless both
// are NaN. Max(+0, -0) is +0.
func (h Float16) Max(o Float16) Float16 {
	switch {
	case h.IsNaN():
		return o
	case o.IsNaN():
		return h
	case h.IsZero() && o.IsZero():
		return h & o
	case h.Gt(o):
		return h
	default:
		return o
	}
}

// Clamp restricts h to [lo, hi]. A NaN h is returned unchanged. Clamp
// panics if lo > hi or if either bound is NaN.
func (h Float16) Clamp(lo, hi Float16) Float16 {
	if !lo.Le(hi) {
		panic("half: Clamp bounds out of order or NaN")
	}
	if h.Lt(lo) {
		return lo
	}
	if h.Gt(hi) {
		return hi
	}
	return h
}

// TotalCmp compares h and o under the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. It orders -NaN < -Inf < ... < -0 < +0 < ... < +Inf <
// +NaN, with NaNs further ordered by payload.
func (h Float16) TotalCmp(o Float16) int {
	return totalCmp(uint16(h), uint16(o))
}

// Min returns the smaller of b and o, ignoring a single NaN operand.
func (b BFloat16) Min(o BFloat16) BFloat16 {
	switch {
	case b.IsNaN():
		return o
	case o.IsNaN():
		return b
	case b.IsZero() && o.IsZero():
		return b | o
	case b.Lt(o):
		return b
	default:
		return o
	}
}

// Max returns the larger of b and o, ignoring a single NaN operand.
func (b BFloat16) Max(o BFloat16) BFloat16 {
	switch {
	case b.IsNaN():
		return o
	case o.IsNaN():
		return b
	case b.IsZero() && o.IsZero():
		return b & o
	case b.Gt(o):
		return b
	default:
		return o
	}
}

// Clamp restricts b to [lo, hi]. It panics if lo > hi or if either bound
// is NaN.
func (b BFloat16) Clamp(lo, hi BFloat16) BFloat16 {
	if !lo.Le(hi) {
		panic("half: Clamp bounds out of order or NaN")
	}
	if b.Lt(lo) {
		return lo
	}
	if b.Gt(hi) {
		return hi
	}
	return b
}

// TotalCmp compares b and o under the IEEE 754 totalOrder predicate.
func (b BFloat16) TotalCmp(o BFloat16) int {
	return totalCmp(uint16(b), uint16(o))
}

// totalCmp maps sign-magnitude bits onto a two's complement key: negative
// values have their magnitude bits flipped so larger magnitudes sort lower.
func totalCmp(a, b uint16) int {
	ka, kb := int16(a), int16(b)
	ka ^= int16(uint16(ka>>15) >> 1)
	kb ^= int16(uint16(kb>>15) >> 1)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
