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

//go:build amd64 && !noasm

package half

import (
	"math"

	"github.com/ajroetker/go-half/half/asm"
	"github.com/ajroetker/go-half/half/internal/softfloat"
)

// f16cBackend converts with VCVTPH2PS/VCVTPS2PH. F16C has no float64 forms
// and no arithmetic: float64 values are narrowed to float32 with
// round-to-odd first, which keeps the final VCVTPS2PH rounding exact, and
// arithmetic falls back to float32 emulation.
type f16cBackend struct{}

var _ Backend = f16cBackend{}

func (f16cBackend) Name() string { return "f16c" }
func (f16cBackend) Lanes() int   { return asm.F16CLanes }

func (f16cBackend) F16ToF32(h uint16) float32 { return asm.F16ToF32F16C(h) }
func (f16cBackend) F32ToF16(f float32) uint16 { return asm.F32ToF16F16C(f) }

func (f16cBackend) F16ToF64(h uint16) float64 {
	return float64(asm.F16ToF32F16C(h))
}

func (f16cBackend) F64ToF16(f float64) uint16 {
	return asm.F32ToF16F16C(narrowRoundOdd(f))
}

func (f16cBackend) PromoteF16ToF32(src []uint16, dst []float32) int {
	return asm.PromoteF16ToF32F16C(src, dst)
}

func (f16cBackend) DemoteF32ToF16(src []float32, dst []uint16) int {
	return asm.DemoteF32ToF16F16C(src, dst)
}

func (f16cBackend) PromoteF16ToF64(src []uint16, dst []float64) int {
	var wide [asm.F16CLanes]float32
	n := len(src) &^ (asm.F16CLanes - 1)
	for i := 0; i < n; i += asm.F16CLanes {
		asm.PromoteF16ToF32F16C(src[i:i+asm.F16CLanes], wide[:])
		for j, f := range wide {
			dst[i+j] = float64(f)
		}
	}
	return n
}

func (f16cBackend) DemoteF64ToF16(src []float64, dst []uint16) int {
	var narrow [asm.F16CLanes]float32
	n := len(src) &^ (asm.F16CLanes - 1)
	for i := 0; i < n; i += asm.F16CLanes {
		for j := range narrow {
			narrow[j] = narrowRoundOdd(src[i+j])
		}
		asm.DemoteF32ToF16F16C(narrow[:], dst[i:i+asm.F16CLanes])
	}
	return n
}

func narrowRoundOdd(f float64) float32 {
	return math.Float32frombits(softfloat.F64BitsToF32RoundOdd(math.Float64bits(f)))
}
