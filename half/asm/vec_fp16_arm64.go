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

package asm

import "unsafe"

// Float16x8 is a 128-bit vector of eight binary16 lanes.
//
// Lanes are addressed by indexing the array, so a constant index outside
// [0, 8) is rejected by the compiler.
type Float16x8 [8]uint16

//go:noescape
func addF16x8(a, b, r *Float16x8)

//go:noescape
func subF16x8(a, b, r *Float16x8)

//go:noescape
func mulF16x8(a, b, r *Float16x8)

//go:noescape
func divF16x8(a, b, r *Float16x8)

//go:noescape
func mulAddF16x8(a, b, c, r *Float16x8)

// ===== Float16x8 constructors =====

// BroadcastFloat16x8 returns a vector with every lane set to h.
func BroadcastFloat16x8(h uint16) Float16x8 {
	return Float16x8{h, h, h, h, h, h, h, h}
}

// LoadFloat16x8 loads the first eight values of s. It panics if s is
// shorter than eight.
func LoadFloat16x8(s []uint16) Float16x8 {
	return Float16x8(s[:8])
}

// LoadFloat16x8Ptr loads eight halves from p. p must point to 16 readable
// bytes that no other goroutine writes during the call.
func LoadFloat16x8Ptr(p unsafe.Pointer) Float16x8 {
	return *(*Float16x8)(p)
}

// ===== Float16x8 methods =====

// StoreSlice stores the vector to the first eight elements of s.
func (v Float16x8) StoreSlice(s []uint16) {
	copy(s[:8], v[:])
}

// StorePtr stores the vector to p. p must point to 16 writable bytes that
// no other goroutine accesses during the call.
func (v Float16x8) StorePtr(p unsafe.Pointer) {
	*(*Float16x8)(p) = v
}

// Add performs element-wise addition.
func (v Float16x8) Add(other Float16x8) Float16x8 {
	var r Float16x8
	addF16x8(&v, &other, &r)
	return r
}

// Sub performs element-wise subtraction.
func (v Float16x8) Sub(other Float16x8) Float16x8 {
	var r Float16x8
	subF16x8(&v, &other, &r)
	return r
}

// Mul performs element-wise multiplication.
func (v Float16x8) Mul(other Float16x8) Float16x8 {
	var r Float16x8
	mulF16x8(&v, &other, &r)
	return r
}

// Div performs element-wise division.
func (v Float16x8) Div(other Float16x8) Float16x8 {
	var r Float16x8
	divF16x8(&v, &other, &r)
	return r
}

// MulAdd performs fused multiply-add: v * a + b
func (v Float16x8) MulAdd(a, b Float16x8) Float16x8 {
	var r Float16x8
	mulAddF16x8(&v, &a, &b, &r)
	return r
}

// MulAddBroadcast performs v * s + b with s broadcast to every lane.
//
// Multiplying by a single lane of another vector is written as
// v.MulAddBroadcast(w[lane], b); a constant lane outside the vector fails
// to compile.
func (v Float16x8) MulAddBroadcast(s uint16, b Float16x8) Float16x8 {
	return v.MulAdd(BroadcastFloat16x8(s), b)
}
