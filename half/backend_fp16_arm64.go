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

//go:build arm64 && !noasm

package half

import "github.com/ajroetker/go-half/half/asm"

// fp16Backend uses the ARMv8.2-A FP16 instructions for conversion and for
// native binary16 arithmetic.
type fp16Backend struct{}

var _ ArithmeticBackend = fp16Backend{}

func (fp16Backend) Name() string { return "fp16" }
func (fp16Backend) Lanes() int   { return asm.FP16Lanes }

func (fp16Backend) F16ToF32(h uint16) float32 { return asm.F16ToF32FP16(h) }
func (fp16Backend) F32ToF16(f float32) uint16 { return asm.F32ToF16FP16(f) }
func (fp16Backend) F16ToF64(h uint16) float64 { return asm.F16ToF64FP16(h) }
func (fp16Backend) F64ToF16(f float64) uint16 { return asm.F64ToF16FP16(f) }

func (fp16Backend) PromoteF16ToF32(src []uint16, dst []float32) int {
	return asm.PromoteF16ToF32FP16(src, dst)
}

func (fp16Backend) DemoteF32ToF16(src []float32, dst []uint16) int {
	return asm.DemoteF32ToF16FP16(src, dst)
}

func (fp16Backend) PromoteF16ToF64(src []uint16, dst []float64) int {
	return asm.PromoteF16ToF64FP16(src, dst)
}

func (fp16Backend) DemoteF64ToF16(src []float64, dst []uint16) int {
	return asm.DemoteF64ToF16FP16(src, dst)
}

func (fp16Backend) AddF16(a, b uint16) uint16       { return asm.AddF16FP16(a, b) }
func (fp16Backend) SubF16(a, b uint16) uint16       { return asm.SubF16FP16(a, b) }
func (fp16Backend) MulF16(a, b uint16) uint16       { return asm.MulF16FP16(a, b) }
func (fp16Backend) DivF16(a, b uint16) uint16       { return asm.DivF16FP16(a, b) }
func (fp16Backend) MulAddF16(a, b, c uint16) uint16 { return asm.MulAddF16FP16(a, b, c) }

func (fp16Backend) AddF16x8(a, b [8]uint16) [8]uint16 {
	return asm.Float16x8(a).Add(asm.Float16x8(b))
}

func (fp16Backend) SubF16x8(a, b [8]uint16) [8]uint16 {
	return asm.Float16x8(a).Sub(asm.Float16x8(b))
}

func (fp16Backend) MulF16x8(a, b [8]uint16) [8]uint16 {
	return asm.Float16x8(a).Mul(asm.Float16x8(b))
}

func (fp16Backend) DivF16x8(a, b [8]uint16) [8]uint16 {
	return asm.Float16x8(a).Div(asm.Float16x8(b))
}

func (fp16Backend) MulAddF16x8(a, b, c [8]uint16) [8]uint16 {
	return asm.Float16x8(a).MulAdd(asm.Float16x8(b), asm.Float16x8(c))
}
