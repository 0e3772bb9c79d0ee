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

import "encoding/binary"

// ToLEBytes returns the little-endian encoding of h.
func (h Float16) ToLEBytes() [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(h))
	return b
}

// ToBEBytes returns the big-endian encoding of h.
func (h Float16) ToBEBytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(h))
	return b
}

// ToNEBytes returns the encoding of h in the host byte order.
func (h Float16) ToNEBytes() [2]byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], uint16(h))
	return b
}

// Float16FromLEBytes decodes a little-endian Float16.
func Float16FromLEBytes(b [2]byte) Float16 {
	return Float16(binary.LittleEndian.Uint16(b[:]))
}

// Float16FromBEBytes decodes a big-endian Float16.
func Float16FromBEBytes(b [2]byte) Float16 {
	return Float16(binary.BigEndian.Uint16(b[:]))
}

// Float16FromNEBytes decodes a Float16 in the host byte order.
func Float16FromNEBytes(b [2]byte) Float16 {
	return Float16(binary.NativeEndian.Uint16(b[:]))
}

// ToLEBytes returns the little-endian encoding of b.
func (b BFloat16) ToLEBytes() [2]byte {
	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], uint16(b))
	return out
}

// ToBEBytes returns the big-endian encoding of b.
func (b BFloat16) ToBEBytes() [2]byte {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], uint16(b))
	return out
}

// ToNEBytes returns the encoding of b in the host byte order.
func (b BFloat16) ToNEBytes() [2]byte {
	var out [2]byte
	binary.NativeEndian.PutUint16(out[:], uint16(b))
	return out
}

// BFloat16FromLEBytes decodes a little-endian BFloat16.
func BFloat16FromLEBytes(b [2]byte) BFloat16 {
	return BFloat16(binary.LittleEndian.Uint16(b[:]))
}

// BFloat16FromBEBytes decodes a big-endian BFloat16.
func BFloat16FromBEBytes(b [2]byte) BFloat16 {
	return BFloat16(binary.BigEndian.Uint16(b[:]))
}

// BFloat16FromNEBytes decodes a BFloat16 in the host byte order.
func BFloat16FromNEBytes(b [2]byte) BFloat16 {
	return BFloat16(binary.NativeEndian.Uint16(b[:]))
}

// DecodeFloat16sLE decodes len(dst) little-endian values from src, which
// must hold at least 2*len(dst) bytes.
func DecodeFloat16sLE(dst []Float16, src []byte) {
	if len(src) < 2*len(dst) {
		panic("half: src slice too short")
	}
	for i := range dst {
		dst[i] = Float16(binary.LittleEndian.Uint16(src[2*i:]))
	}
}

// EncodeFloat16sLE appends the little-endian encoding of src to dst.
func EncodeFloat16sLE(dst []byte, src []Float16) []byte {
	for _, h := range src {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(h))
	}
	return dst
}

// DecodeBFloat16sLE decodes len(dst) little-endian values from src, which
// must hold at least 2*len(dst) bytes.
func DecodeBFloat16sLE(dst []BFloat16, src []byte) {
	if len(src) < 2*len(dst) {
		panic("half: src slice too short")
	}
	for i := range dst {
		dst[i] = BFloat16(binary.LittleEndian.Uint16(src[2*i:]))
	}
}

// EncodeBFloat16sLE appends the little-endian encoding of src to dst.
func EncodeBFloat16sLE(dst []byte, src []BFloat16) []byte {
	for _, b := range src {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(b))
	}
	return dst
}
