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

//go:build arm64 && !noasm && (!darwin || ios)

package half

import "sync"

var (
	detectOnce    sync.Once
	detected      Capabilities
	selected      Backend
	selectedArith ArithmeticBackend
)

func detectCapabilities() Capabilities {
	detectOnce.Do(func() {
		detected = Capabilities{
			Policy: PolicyRuntime,
			FP16:   hasFP16(),
			NoSimd: NoSimdEnv(),
		}
		selected = softBackend{}
		if detected.FP16 && !detected.NoSimd {
			selected = fp16Backend{}
			selectedArith = fp16Backend{}
		}
	})
	return detected
}

func active() Backend {
	detectCapabilities()
	return selected
}

func activeArith() ArithmeticBackend {
	detectCapabilities()
	return selectedArith
}
