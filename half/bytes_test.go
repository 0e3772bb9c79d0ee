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
	"bytes"
	"encoding/binary"
	"testing"
)

func TestFloat16Bytes(t *testing.T) {
	h := Float16FromBits(0x3C01)
	if got := h.ToLEBytes(); got != [2]byte{0x01, 0x3C} {
		t.Errorf("ToLEBytes(0x3C01): got %#v", got)
	}
	if got := h.ToBEBytes(); got != [2]byte{0x3C, 0x01} {
		t.Errorf("ToBEBytes(0x3C01): got %#v", got)
	}
	if got := Float16FromLEBytes(h.ToLEBytes()); got != h {
		t.Errorf("Float16FromLEBytes: got 0x%04X, want 0x%04X", got, h)
	}
	if got := Float16FromBEBytes(h.ToBEBytes()); got != h {
		t.Errorf("Float16FromBEBytes: got 0x%04X, want 0x%04X", got, h)
	}
	if got := Float16FromNEBytes(h.ToNEBytes()); got != h {
		t.Errorf("Float16FromNEBytes: got 0x%04X, want 0x%04X", got, h)
	}

	var native [2]byte
	binary.NativeEndian.PutUint16(native[:], 0x3C01)
	if got := h.ToNEBytes(); got != native {
		t.Errorf("ToNEBytes(0x3C01): got %#v, want %#v", got, native)
	}
}

func TestBFloat16Bytes(t *testing.T) {
	b := BFloat16FromBits(0x3F81)
	if got := b.ToLEBytes(); got != [2]byte{0x81, 0x3F} {
		t.Errorf("ToLEBytes(0x3F81): got %#v", got)
	}
	if got := b.ToBEBytes(); got != [2]byte{0x3F, 0x81} {
		t.Errorf("ToBEBytes(0x3F81): got %#v", got)
	}
	if BFloat16FromLEBytes(b.ToLEBytes()) != b || BFloat16FromBEBytes(b.ToBEBytes()) != b || BFloat16FromNEBytes(b.ToNEBytes()) != b {
		t.Error("BFloat16 byte round trip failed")
	}
}

func TestSliceByteCodecs(t *testing.T) {
	hs := []Float16{Float16One, Float16NegZero, Float16Inf}
	enc := EncodeFloat16sLE([]byte{0xAA}, hs)
	want := []byte{0xAA, 0x00, 0x3C, 0x00, 0x80, 0x00, 0x7C}
	if !bytes.Equal(enc, want) {
		t.Fatalf("EncodeFloat16sLE: got % X, want % X", enc, want)
	}
	dec := make([]Float16, len(hs))
	DecodeFloat16sLE(dec, enc[1:])
	for i := range hs {
		if dec[i] != hs[i] {
			t.Errorf("DecodeFloat16sLE[%d]: got 0x%04X, want 0x%04X", i, dec[i], hs[i])
		}
	}

	bs := []BFloat16{BFloat16One, BFloat16NaN}
	benc := EncodeBFloat16sLE(nil, bs)
	if !bytes.Equal(benc, []byte{0x80, 0x3F, 0xC0, 0x7F}) {
		t.Fatalf("EncodeBFloat16sLE: got % X", benc)
	}
	bdec := make([]BFloat16, 2)
	DecodeBFloat16sLE(bdec, benc)
	if bdec[0] != BFloat16One || bdec[1] != BFloat16NaN {
		t.Errorf("DecodeBFloat16sLE: got %04X", bdec)
	}

	defer func() {
		if recover() == nil {
			t.Error("DecodeFloat16sLE with short src did not panic")
		}
	}()
	DecodeFloat16sLE(make([]Float16, 3), make([]byte, 5))
}
