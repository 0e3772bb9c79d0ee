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

// Bulk conversions write len(src) elements to dst and panic if dst is
// shorter. The active backend converts the longest whole-batch prefix and
// the remainder goes through the scalar conversion, so the result always
// matches converting each element on its own.

// Float16sToFloat32s widens src into dst.
func Float16sToFloat32s(dst []float32, src []Float16) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	b := active()
	bits := Float16sToBits(src)
	for i := b.PromoteF16ToF32(bits, dst); i < len(bits); i++ {
		dst[i] = b.F16ToF32(bits[i])
	}
}

// Float32sToFloat16s narrows src into dst with round-to-nearest-even.
func Float32sToFloat16s(dst []Float16, src []float32) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	b := active()
	bits := Float16sToBits(dst)
	for i := b.DemoteF32ToF16(src, bits); i < len(src); i++ {
		bits[i] = b.F32ToF16(src[i])
	}
}

// Float16sToFloat64s widens src into dst.
func Float16sToFloat64s(dst []float64, src []Float16) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	b := active()
	bits := Float16sToBits(src)
	for i := b.PromoteF16ToF64(bits, dst); i < len(bits); i++ {
		dst[i] = b.F16ToF64(bits[i])
	}
}

// Float64sToFloat16s narrows src into dst, rounding each value once.
func Float64sToFloat16s(dst []Float16, src []float64) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	b := active()
	bits := Float16sToBits(dst)
	for i := b.DemoteF64ToF16(src, bits); i < len(src); i++ {
		bits[i] = b.F64ToF16(src[i])
	}
}

// BFloat16sToFloat32s widens src into dst.
func BFloat16sToFloat32s(dst []float32, src []BFloat16) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	for i, v := range src {
		dst[i] = BFloat16ToFloat32(v)
	}
}

// Float32sToBFloat16s narrows src into dst with round-to-nearest-even.
func Float32sToBFloat16s(dst []BFloat16, src []float32) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	for i, f := range src {
		dst[i] = Float32ToBFloat16(f)
	}
}

// BFloat16sToFloat64s widens src into dst.
func BFloat16sToFloat64s(dst []float64, src []BFloat16) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	for i, v := range src {
		dst[i] = BFloat16ToFloat64(v)
	}
}

// Float64sToBFloat16s narrows src into dst, rounding each value once.
func Float64sToBFloat16s(dst []BFloat16, src []float64) {
	if len(dst) < len(src) {
		panic("half: dst slice too short")
	}
	for i, f := range src {
		dst[i] = Float64ToBFloat16(f)
	}
}

// ToFloat32s returns a new slice holding src widened to float32.
func ToFloat32s(src []Float16) []float32 {
	dst := make([]float32, len(src))
	Float16sToFloat32s(dst, src)
	return dst
}

// ToFloat64s returns a new slice holding src widened to float64.
func ToFloat64s(src []Float16) []float64 {
	dst := make([]float64, len(src))
	Float16sToFloat64s(dst, src)
	return dst
}

// FromFloat32s returns a new slice holding src narrowed to Float16.
func FromFloat32s(src []float32) []Float16 {
	dst := make([]Float16, len(src))
	Float32sToFloat16s(dst, src)
	return dst
}

// FromFloat64s returns a new slice holding src narrowed to Float16.
func FromFloat64s(src []float64) []Float16 {
	dst := make([]Float16, len(src))
	Float64sToFloat16s(dst, src)
	return dst
}

// BFloat16ToFloat32s returns a new slice holding src widened to float32.
func BFloat16ToFloat32s(src []BFloat16) []float32 {
	dst := make([]float32, len(src))
	BFloat16sToFloat32s(dst, src)
	return dst
}

// BFloat16ToFloat64s returns a new slice holding src widened to float64.
func BFloat16ToFloat64s(src []BFloat16) []float64 {
	dst := make([]float64, len(src))
	BFloat16sToFloat64s(dst, src)
	return dst
}

// BFloat16FromFloat32s returns a new slice holding src narrowed to BFloat16.
func BFloat16FromFloat32s(src []float32) []BFloat16 {
	dst := make([]BFloat16, len(src))
	Float32sToBFloat16s(dst, src)
	return dst
}

// BFloat16FromFloat64s returns a new slice holding src narrowed to BFloat16.
func BFloat16FromFloat64s(src []float64) []BFloat16 {
	dst := make([]BFloat16, len(src))
	Float64sToBFloat16s(dst, src)
	return dst
}
