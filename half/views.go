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

import "unsafe"

// The views below relabel memory without copying or converting: the result
// aliases the argument. Float16, BFloat16 and uint16 share size and
// alignment, so every bit pattern is a valid element of each.

// Float16sFromBits views a slice of raw bit patterns as Float16 values.
func Float16sFromBits(bits []uint16) []Float16 {
	if len(bits) == 0 {
		return nil
	}
	return unsafe.Slice((*Float16)(unsafe.Pointer(&bits[0])), len(bits))
}

// Float16sToBits views Float16 values as their raw bit patterns.
func Float16sToBits(s []Float16) []uint16 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&s[0])), len(s))
}

// BFloat16sFromBits views a slice of raw bit patterns as BFloat16 values.
func BFloat16sFromBits(bits []uint16) []BFloat16 {
	if len(bits) == 0 {
		return nil
	}
	return unsafe.Slice((*BFloat16)(unsafe.Pointer(&bits[0])), len(bits))
}

// BFloat16sToBits views BFloat16 values as their raw bit patterns.
func BFloat16sToBits(s []BFloat16) []uint16 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&s[0])), len(s))
}
