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

//go:build darwin && arm64 && !noasm

package half

import "syscall"

// hasFP16 checks if ARM FP16 is available via sysctl on macOS and iOS.
// Older kernels only publish the hw.optional.neon_fp16 name.
func hasFP16() bool {
	for _, name := range []string{"hw.optional.arm.FEAT_FP16", "hw.optional.neon_fp16"} {
		val, err := syscall.Sysctl(name)
		if err != nil {
			continue
		}
		return len(val) > 0 && val[0] == 1
	}
	return false
}
