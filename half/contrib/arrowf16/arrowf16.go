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

// Package arrowf16 moves half-precision data between the half package and
// Apache Arrow float16 columns.
//
// Arrow stores float16 values as raw binary16 bit patterns, the same layout
// as half.Float16, so reading a column is a zero-copy view. Widening and
// narrowing go through the half package's bulk conversions and keep the
// column's validity bitmap.
package arrowf16

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/float16"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajroetker/go-half/half"
)

// ErrUnsupportedType is returned when an Arrow array is not a float16
// column.
var ErrUnsupportedType = errors.New("arrowf16: unsupported arrow type")

// ToNum converts a Float16 to Arrow's float16 representation.
func ToNum(h half.Float16) float16.Num {
	return float16.FromBits(h.Bits())
}

// FromNum converts an Arrow float16 value to Float16.
func FromNum(n float16.Num) half.Float16 {
	return half.Float16FromBits(n.Uint16())
}

// Values returns the values of arr as Float16 without copying. Null slots
// hold whatever bits the column stores there. The result is only valid
// while arr is retained.
func Values(arr *array.Float16) []half.Float16 {
	nums := arr.Values()
	if len(nums) == 0 {
		return nil
	}
	return unsafe.Slice((*half.Float16)(unsafe.Pointer(&nums[0])), len(nums))
}

// FromArrow returns the values of a float16 array, or ErrUnsupportedType
// for any other array type.
func FromArrow(arr arrow.Array) ([]half.Float16, error) {
	f16, ok := arr.(*array.Float16)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
	return Values(f16), nil
}

// NewArray builds a float16 array from values. valid marks which slots are
// non-null; nil means all of them.
func NewArray(mem memory.Allocator, values []half.Float16, valid []bool) *array.Float16 {
	b := array.NewFloat16Builder(mem)
	defer b.Release()

	nums := make([]float16.Num, len(values))
	for i, h := range values {
		nums[i] = ToNum(h)
	}
	b.AppendValues(nums, valid)
	return b.NewFloat16Array()
}

// Widen converts a float16 array to a float32 array with the same nulls.
func Widen(mem memory.Allocator, arr *array.Float16) *array.Float32 {
	wide := make([]float32, arr.Len())
	half.Float16sToFloat32s(wide, Values(arr))

	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues(wide, validity(arr))
	return b.NewFloat32Array()
}

// Narrow converts a float32 array to a float16 array with the same nulls,
// rounding each value to nearest even.
func Narrow(mem memory.Allocator, arr *array.Float32) *array.Float16 {
	narrow := make([]half.Float16, arr.Len())
	half.Float32sToFloat16s(narrow, arr.Float32Values())
	return NewArray(mem, narrow, validity(arr))
}

// validity expands the null bitmap of arr, or returns nil when it has no
// nulls.
func validity(arr arrow.Array) []bool {
	if arr.NullN() == 0 {
		return nil
	}
	valid := make([]bool, arr.Len())
	for i := range valid {
		valid[i] = arr.IsValid(i)
	}
	return valid
}
