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

//go:build amd64 && !amd64.v3 && !noasm

package half

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

var (
	detectOnce sync.Once
	detected   Capabilities
	selected   Backend
)

func detectCapabilities() Capabilities {
	detectOnce.Do(func() {
		detected = Capabilities{
			Policy: PolicyRuntime,
			// The F16C instructions are VEX encoded, so the OS must also have
			// enabled AVX state. x/sys/cpu folds the XGETBV check into HasAVX.
			F16C:   cpu.X86.HasAVX && cpuid.CPU.Supports(cpuid.F16C),
			NoSimd: NoSimdEnv(),
		}
		selected = softBackend{}
		if detected.F16C && !detected.NoSimd {
			selected = f16cBackend{}
		}
	})
	return detected
}

func active() Backend {
	detectCapabilities()
	return selected
}

// F16C only converts.
func activeArith() ArithmeticBackend { return nil }
