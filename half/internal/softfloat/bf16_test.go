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
)

func isBF16NaN(b uint16) bool { return b&0x7F80 == 0x7F80 && b&0x7F != 0 }

// referenceBF16 picks the nearer of the two bfloat16 values bracketing f by
// measuring both distances in float64, where they are exact.
func referenceBF16(f float32) uint16 {
	x := math.Float32bits(f)
	lo := uint16(x >> 16)
	if x&0xFFFF == 0 {
		return lo
	}
	mag := math.Abs(float64(f))
	loMag := math.Abs(float64(math.Float32frombits(uint32(lo) << 16)))
	hiMag := 0x1p128
	if lo&0x7FFF != 0x7F7F {
		hiMag = math.Abs(float64(math.Float32frombits(uint32(lo+1) << 16)))
	}
	dlo, dhi := mag-loMag, hiMag-mag
	if dhi < dlo || (dhi == dlo && lo&1 == 1) {
		return lo + 1
	}
	return lo
}

func TestBF16DecodeExhaustive(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		b := uint16(i)
		got := BF16ToF32Bits(b)
		if got != uint32(b)<<16 {
			t.Fatalf("BF16ToF32Bits(0x%04X): got 0x%08X", b, got)
		}
		f := math.Float32frombits(got)
		exp := b & 0x7F80
		if exp != 0 && exp != 0x7F80 {
			if want := floatx.BF16(b).Float32(); f != want {
				t.Fatalf("BF16ToF32Bits(0x%04X): got %g, want %g", b, f, want)
			}
		}
		got64 := math.Float64frombits(BF16ToF64Bits(b))
		if isBF16NaN(b) {
			if !math.IsNaN(got64) || math.Signbit(got64) != (b&0x8000 != 0) {
				t.Fatalf("BF16ToF64Bits(0x%04X): got %v, want NaN with matching sign", b, got64)
			}
			continue
		}
		if got64 != float64(f) || math.Signbit(got64) != math.Signbit(float64(f)) {
			t.Fatalf("BF16ToF64Bits(0x%04X): got %v, want %v", b, got64, f)
		}
		if back := F32BitsToBF16(got); back != b {
			t.Fatalf("F32BitsToBF16(BF16ToF32Bits(0x%04X)): got 0x%04X", b, back)
		}
		if back := F64BitsToBF16(BF16ToF64Bits(b)); back != b {
			t.Fatalf("F64BitsToBF16(BF16ToF64Bits(0x%04X)): got 0x%04X", b, back)
		}
	}
}

func TestF32BitsToBF16Reference(t *testing.T) {
	step := uint64(0x1001)
	if testing.Short() {
		step = 0x10001
	}
	for i := uint64(0); i < 1<<32; i += step {
		x := uint32(i)
		f := math.Float32frombits(x)
		if math.IsNaN(float64(f)) {
			if got := F32BitsToBF16(x); !isBF16NaN(got) || got&0x8000 != uint16(x>>16)&0x8000 {
				t.Fatalf("F32BitsToBF16(0x%08X): got 0x%04X, want NaN", x, got)
			}
			continue
		}
		want := referenceBF16(f)
		if got := F32BitsToBF16(x); got != want {
			t.Fatalf("F32BitsToBF16(0x%08X = %g): got 0x%04X, want 0x%04X", x, f, got, want)
		}
		if got := F64BitsToBF16(math.Float64bits(float64(f))); got != want {
			t.Fatalf("F64BitsToBF16(%g): got 0x%04X, want 0x%04X", f, got, want)
		}
	}
}

func TestBF16EncodeBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint16
	}{
		{"One", 1.0, 0x3F80},
		{"NegZero", math.Copysign(0, -1), 0x8000},
		{"TieToEvenDown", 1 + 0x1p-8, 0x3F80},
		{"TieToEvenUp", 1 + 3*0x1p-8, 0x3F82},
		{"AboveTie", 1 + 0x1p-8 + 0x1p-40, 0x3F81},
		{"OverflowTie", 0x1.FFp127, 0x7F80},
		{"BelowOverflowTie", 0x1.FFp127 - 0x1p97, 0x7F7F},
		{"BeyondFloat32", 1e300, 0x7F80},
		{"NegBeyondFloat32", -1e300, 0xFF80},
		{"Tenth", 0.1, 0x3DCD},
		{"NegThird", -1.0 / 3, 0xBEAB},
		{"MinSubnormal", 0x1p-133, 0x0001},
		{"HalfMinSubnormal", 0x1p-134, 0x0000},
		{"AboveHalfMinSubnormal", 0x1p-134 + 0x1p-170, 0x0001},
		{"ThreeHalvesMinSubnormal", 3 * 0x1p-134, 0x0002},
		{"BelowFloat32", 1e-300, 0x0000},
		{"NegBelowFloat32", -1e-300, 0x8000},
		{"Inf", math.Inf(1), 0x7F80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F64BitsToBF16(math.Float64bits(tt.in)); got != tt.want {
				t.Errorf("F64BitsToBF16(%g): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
			}
		})
	}
}

func TestF64BitsToF32RoundOdd(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint32
	}{
		{"Exact", 1.5, 0x3FC00000},
		{"InexactOddNearest", 1 + 0x1p-23 + 0x1p-40, 0x3F800001},
		{"InexactEvenNearestUp", 1 + 0x1p-23 - 0x1p-40, 0x3F800001},
		{"InexactEvenNearestDown", 1 + 0x1p-40, 0x3F800001},
		{"NegInexact", -(1 + 0x1p-40), 0xBF800001},
		{"Overflow", 1e300, 0x7F7FFFFF},
		{"NegOverflow", -1e300, 0xFF7FFFFF},
		{"Underflow", 1e-300, 0x00000001},
		{"Inf", math.Inf(-1), 0xFF800000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F64BitsToF32RoundOdd(math.Float64bits(tt.in)); got != tt.want {
				t.Errorf("F64BitsToF32RoundOdd(%g): got 0x%08X, want 0x%08X", tt.in, got, tt.want)
			}
		})
	}
	if got := F64BitsToF32RoundOdd(math.Float64bits(math.NaN())); !math.IsNaN(float64(math.Float32frombits(got))) {
		t.Errorf("F64BitsToF32RoundOdd(NaN): got 0x%08X", got)
	}
}

func TestBF16EncodeNaN(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint16
	}{
		{0x7FC00000, 0x7FC0},
		{0xFFC00000, 0xFFC0},
		{0x7F800001, 0x7FC0},
		{0x7FA00000, 0x7FE0},
		{0xFFFFFFFF, 0xFFFF},
	}
	for _, tt := range tests {
		if got := F32BitsToBF16(tt.in); got != tt.want {
			t.Errorf("F32BitsToBF16(0x%08X): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
		}
	}
}
