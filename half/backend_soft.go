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

import (
	"math"

	"github.com/ajroetker/go-half/half/internal/softfloat"
)

// softBackend runs the integer conversion engine. It has no batch width
// requirement, so its bulk operations convert whole slices.
type softBackend struct{}

var _ Backend = softBackend{}

func (softBackend) Name() string { return "software" }
func (softBackend) Lanes() int   { return 1 }

func (softBackend) F16ToF32(h uint16) float32 {
	return math.Float32frombits(softfloat.F16ToF32Bits(h))
}

func (softBackend) F32ToF16(f float32) uint16 {
	return softfloat.F32BitsToF16(math.Float32bits(f))
}

func (softBackend) F16ToF64(h uint16) float64 {
	return math.Float64frombits(softfloat.F16ToF64Bits(h))
}

func (softBackend) F64ToF16(f float64) uint16 {
	return softfloat.F64BitsToF16(math.Float64bits(f))
}

func (s softBackend) PromoteF16ToF32(src []uint16, dst []float32) int {
	dst = dst[:len(src)]
	for i, h := range src {
		dst[i] = s.F16ToF32(h)
	}
	return len(src)
}

func (s softBackend) DemoteF32ToF16(src []float32, dst []uint16) int {
	dst = dst[:len(src)]
	for i, f := range src {
		dst[i] = s.F32ToF16(f)
	}
	return len(src)
}

func (s softBackend) PromoteF16ToF64(src []uint16, dst []float64) int {
	dst = dst[:len(src)]
	for i, h := range src {
		dst[i] = s.F16ToF64(h)
	}
	return len(src)
}

func (s softBackend) DemoteF64ToF16(src []float64, dst []uint16) int {
	dst = dst[:len(src)]
	for i, f := range src {
		dst[i] = s.F64ToF16(f)
	}
	return len(src)
}
