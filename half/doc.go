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

// Package half provides the IEEE 754 binary16 (Float16) and bfloat16
// (BFloat16) formats with bit-exact conversion to and from float32 and
// float64, arithmetic, and bulk slice conversion.
//
// Conversions round to nearest, ties to even. Overflow gives a signed
// infinity, and NaN stays NaN with its sign. Hardware backends (F16C on
// amd64, FP16 on arm64) are selected at build time or on first use and
// produce the same bits as the software engine for every non-NaN input.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-half/half"
//
//	h := half.NewFloat16(1.5)
//	sum := h.Add(half.Float16One) // 2.5
//
//	// Bulk conversion uses 8-lane hardware batches where available.
//	dst := make([]float32, len(weights))
//	half.Float16sToFloat32s(dst, weights)
//
// Set HALF_NO_SIMD=1 to force the software backend in builds that detect
// CPU features at runtime. Build with -tags noasm to drop the assembly
// entirely.
package half
