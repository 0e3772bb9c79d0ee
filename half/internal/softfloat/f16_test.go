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

package softfloat

import (
	"math"
	"testing"

	"github.com/maruel/floatx"
	"github.com/x448/float16"
)

func isF16NaN(h uint16) bool { return h&0x7C00 == 0x7C00 && h&0x3FF != 0 }

// TestF16DecodeExhaustive checks every binary16 pattern against an
// independent decoder and against the float64 decoder.
func TestF16DecodeExhaustive(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		h := uint16(i)
		got := F16ToF32Bits(h)
		f := math.Float32frombits(got)
		if isF16NaN(h) {
			if !math.IsNaN(float64(f)) {
				t.Fatalf("F16ToF32Bits(0x%04X): got 0x%08X, want NaN", h, got)
			}
			if got>>31 != uint32(h>>15) {
				t.Fatalf("F16ToF32Bits(0x%04X): NaN sign lost", h)
			}
			if got&0x00400000 == 0 {
				t.Fatalf("F16ToF32Bits(0x%04X): quiet bit not set in 0x%08X", h, got)
			}
			continue
		}
		if want := math.Float32bits(floatx.F16(h).Float32()); got != want {
			t.Fatalf("F16ToF32Bits(0x%04X): got 0x%08X, want 0x%08X", h, got, want)
		}
		if got64, want64 := F16ToF64Bits(h), math.Float64bits(float64(f)); got64 != want64 {
			t.Fatalf("F16ToF64Bits(0x%04X): got 0x%016X, want 0x%016X", h, got64, want64)
		}
	}
}

// TestF16RoundTripExhaustive encodes every decoded pattern back.
func TestF16RoundTripExhaustive(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		h := uint16(i)
		back32 := F32BitsToF16(F16ToF32Bits(h))
		back64 := F64BitsToF16(F16ToF64Bits(h))
		if isF16NaN(h) {
			if !isF16NaN(back32) || !isF16NaN(back64) {
				t.Fatalf("round trip of NaN 0x%04X: got 0x%04X / 0x%04X", h, back32, back64)
			}
			if back32&0x8000 != h&0x8000 || back64&0x8000 != h&0x8000 {
				t.Fatalf("round trip of NaN 0x%04X lost the sign", h)
			}
			// Quiet NaNs survive unchanged.
			if h&0x0200 != 0 && (back32 != h || back64 != h) {
				t.Fatalf("round trip of quiet NaN 0x%04X: got 0x%04X / 0x%04X", h, back32, back64)
			}
			continue
		}
		if back32 != h {
			t.Fatalf("F32BitsToF16(F16ToF32Bits(0x%04X)): got 0x%04X", h, back32)
		}
		if back64 != h {
			t.Fatalf("F64BitsToF16(F16ToF64Bits(0x%04X)): got 0x%04X", h, back64)
		}
	}
}

// TestF32BitsToF16Oracle walks a dense stride of float32 patterns and
// compares against an independent round-to-nearest-even encoder.
func TestF32BitsToF16Oracle(t *testing.T) {
	step := uint64(0x1001)
	if testing.Short() {
		step = 0x10001
	}
	for i := uint64(0); i < 1<<32; i += step {
		x := uint32(i)
		f := math.Float32frombits(x)
		if math.IsNaN(float64(f)) {
			continue
		}
		got := F32BitsToF16(x)
		if want := float16.Fromfloat32(f).Bits(); got != want {
			t.Fatalf("F32BitsToF16(0x%08X = %g): got 0x%04X, want 0x%04X", x, f, got, want)
		}
		// float64(f) is exact, so the direct float64 path must agree.
		if got64 := F64BitsToF16(math.Float64bits(float64(f))); got64 != got {
			t.Fatalf("F64BitsToF16(%g): got 0x%04X, want 0x%04X", f, got64, got)
		}
	}
}

// TestF16EncodeBoundaries covers the rounding and range edges.
func TestF16EncodeBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint16
	}{
		{"One", 1.0, 0x3C00},
		{"Zero", 0.0, 0x0000},
		{"NegZero", math.Copysign(0, -1), 0x8000},
		{"NegTwoAndHalf", -2.5, 0xC100},
		{"MaxFinite", 65504.0, 0x7BFF},
		{"BelowOverflowTie", 65519.0, 0x7BFF},
		{"OverflowTie", 65520.0, 0x7C00},
		{"NegOverflow", -1e6, 0xFC00},
		{"Inf", math.Inf(1), 0x7C00},
		{"NegInf", math.Inf(-1), 0xFC00},
		{"MinNormal", 0x1p-14, 0x0400},
		{"MaxSubnormal", 0x1p-14 - 0x1p-24, 0x03FF},
		{"SubnormalCarryToNormal", 0x1p-14 - 0x1p-25, 0x0400},
		{"MinSubnormal", 0x1p-24, 0x0001},
		{"HalfMinSubnormalTiesToZero", 0x1p-25, 0x0000},
		{"NegHalfMinSubnormal", -0x1p-25, 0x8000},
		{"AboveHalfMinSubnormal", 0x1p-25 * 1.5, 0x0001},
		{"OneAndHalfMinSubnormalTiesUp", 0x1p-24 * 1.5, 0x0002},
		{"TwoAndHalfMinSubnormalTiesDown", 0x1p-24 * 2.5, 0x0002},
		{"QuarterMinSubnormal", 0x1p-26, 0x0000},
		{"TieToEvenDown", 1 + 0x1p-11, 0x3C00},
		{"TieToEvenUp", 1 + 3*0x1p-11, 0x3C02},
		{"OneTenth", 0.1, 0x2E66},
		{"OneThird", 1.0 / 3, 0x3555},
		{"Pi", math.Pi, 0x4248},
		{"SmallSubnormal", 1e-5, 0x00A8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F64BitsToF16(math.Float64bits(tt.in)); got != tt.want {
				t.Errorf("F64BitsToF16(%g): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
			}
			f := float32(tt.in)
			if float64(f) != tt.in {
				return
			}
			if got := F32BitsToF16(math.Float32bits(f)); got != tt.want {
				t.Errorf("F32BitsToF16(%g): got 0x%04X, want 0x%04X", f, got, tt.want)
			}
		})
	}
}

// TestF64BitsToF16SingleRounding uses float64 inputs whose float32
// rounding lands exactly on a binary16 tie.
func TestF64BitsToF16SingleRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{1 + 0x1p-11 + 0x1p-40, 0x3C01},
		{1 + 0x1p-11 - 0x1p-40, 0x3C00},
		{0x1p-25 + 0x1p-60, 0x0001},
		{-(0x1p-25 + 0x1p-60), 0x8001},
		{65520 - 0x1p-30, 0x7BFF},
	}
	for _, tt := range tests {
		if got := F64BitsToF16(math.Float64bits(tt.in)); got != tt.want {
			t.Errorf("F64BitsToF16(%v): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
		}
	}
}

func TestF16EncodeNaN(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint16
	}{
		{"QuietNaN", 0x7FC00000, 0x7E00},
		{"NegQuietNaN", 0xFFC00000, 0xFE00},
		{"SignalingLowPayload", 0x7F800001, 0x7E00},
		{"SignalingHighPayload", 0x7F802000, 0x7E01},
		{"AllOnes", 0xFFFFFFFF, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F32BitsToF16(tt.in); got != tt.want {
				t.Errorf("F32BitsToF16(0x%08X): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
			}
			in64 := math.Float64bits(float64(math.Float32frombits(tt.in)))
			if got := F64BitsToF16(in64); !isF16NaN(got) || got&0x8000 != tt.want&0x8000 {
				t.Errorf("F64BitsToF16(0x%016X): got 0x%04X, want a NaN with sign of 0x%04X", in64, got, tt.want)
			}
		})
	}
}

func TestF16DecodeSpecial(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint32
	}{
		{"Zero", 0x0000, 0x00000000},
		{"NegZero", 0x8000, 0x80000000},
		{"One", 0x3C00, 0x3F800000},
		{"Max", 0x7BFF, 0x477FE000},
		{"MinNormal", 0x0400, 0x38800000},
		{"MinSubnormal", 0x0001, 0x33800000},
		{"MaxSubnormal", 0x03FF, 0x387FC000},
		{"Inf", 0x7C00, 0x7F800000},
		{"NegInf", 0xFC00, 0xFF800000},
		{"QuietNaN", 0x7E00, 0x7FC00000},
		{"SignalingNaN", 0x7C01, 0x7FC02000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F16ToF32Bits(tt.in); got != tt.want {
				t.Errorf("F16ToF32Bits(0x%04X): got 0x%08X, want 0x%08X", tt.in, got, tt.want)
			}
		})
	}
}

func BenchmarkF32BitsToF16(b *testing.B) {
	x := math.Float32bits(3.14159)
	var sink uint16
	for i := 0; i < b.N; i++ {
		sink += F32BitsToF16(x + uint32(i&0xFF))
	}
	_ = sink
}

func BenchmarkF16ToF32Bits(b *testing.B) {
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink += F16ToF32Bits(uint16(i))
	}
	_ = sink
}
