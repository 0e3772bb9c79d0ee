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

// Slice arithmetic applies the scalar Float16 operations element-wise over
// len(a) elements. With a native arithmetic backend, whole batches of
// float16Lanes run as one vector instruction and the remainder runs through
// the scalar methods; the results are identical either way.

const float16Lanes = 8

type vecOp2 func(ArithmeticBackend, [8]uint16, [8]uint16) [8]uint16

// AddFloat16s sets dst[i] = a[i] + b[i].
func AddFloat16s(dst, a, b []Float16) {
	checkOperands(len(dst), len(a), len(b))
	binaryFloat16s(dst, a, b, ArithmeticBackend.AddF16x8, Float16.Add)
}

// SubFloat16s sets dst[i] = a[i] - b[i].
func SubFloat16s(dst, a, b []Float16) {
	checkOperands(len(dst), len(a), len(b))
	binaryFloat16s(dst, a, b, ArithmeticBackend.SubF16x8, Float16.Sub)
}

// MulFloat16s sets dst[i] = a[i] * b[i].
func MulFloat16s(dst, a, b []Float16) {
	checkOperands(len(dst), len(a), len(b))
	binaryFloat16s(dst, a, b, ArithmeticBackend.MulF16x8, Float16.Mul)
}

// DivFloat16s sets dst[i] = a[i] / b[i].
func DivFloat16s(dst, a, b []Float16) {
	checkOperands(len(dst), len(a), len(b))
	binaryFloat16s(dst, a, b, ArithmeticBackend.DivF16x8, Float16.Div)
}

// FmaFloat16s sets dst[i] = a[i]*b[i] + c[i] with one rounding per element.
func FmaFloat16s(dst, a, b, c []Float16) {
	checkOperands(len(dst), len(a), len(b))
	if len(c) < len(a) {
		panic("half: c slice too short")
	}
	ar := activeArith()
	if ar == nil {
		for i := range a {
			dst[i] = a[i].Fma(b[i], c[i])
		}
		return
	}
	ab, bb, cb, db := Float16sToBits(a), Float16sToBits(b), Float16sToBits(c), Float16sToBits(dst)
	processWithTail(len(a), float16Lanes,
		func(offset int) {
			r := ar.MulAddF16x8([8]uint16(ab[offset:]), [8]uint16(bb[offset:]), [8]uint16(cb[offset:]))
			copy(db[offset:], r[:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = a[i].Fma(b[i], c[i])
			}
		},
	)
}

// AxpyFloat16s sets y[i] = alpha*x[i] + y[i] with one rounding per element.
func AxpyFloat16s(alpha Float16, x, y []Float16) {
	if len(y) < len(x) {
		panic("half: y slice too short")
	}
	ar := activeArith()
	if ar == nil {
		for i := range x {
			y[i] = alpha.Fma(x[i], y[i])
		}
		return
	}
	var av [8]uint16
	for i := range av {
		av[i] = uint16(alpha)
	}
	xb, yb := Float16sToBits(x), Float16sToBits(y)
	processWithTail(len(x), float16Lanes,
		func(offset int) {
			r := ar.MulAddF16x8(av, [8]uint16(xb[offset:]), [8]uint16(yb[offset:]))
			copy(yb[offset:], r[:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				y[i] = alpha.Fma(x[i], y[i])
			}
		},
	)
}

func checkOperands(dst, a, b int) {
	if b < a {
		panic("half: b slice too short")
	}
	if dst < a {
		panic("half: dst slice too short")
	}
}

func binaryFloat16s(dst, a, b []Float16, vec vecOp2, scalar func(Float16, Float16) Float16) {
	ar := activeArith()
	if ar == nil {
		for i := range a {
			dst[i] = scalar(a[i], b[i])
		}
		return
	}
	ab, bb, db := Float16sToBits(a), Float16sToBits(b), Float16sToBits(dst)
	processWithTail(len(a), float16Lanes,
		func(offset int) {
			r := vec(ar, [8]uint16(ab[offset:]), [8]uint16(bb[offset:]))
			copy(db[offset:], r[:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = scalar(a[i], b[i])
			}
		},
	)
}
