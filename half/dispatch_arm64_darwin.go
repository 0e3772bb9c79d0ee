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

//go:build arm64 && darwin && !ios && !noasm

package half

// Apple M1 and later always support FP16, and macOS only runs on those on
// arm64, so the FP16 backend is wired in without a CPU check.

func detectCapabilities() Capabilities {
	return Capabilities{Policy: PolicyStatic, FP16: true}
}

func active() Backend { return fp16Backend{} }

func activeArith() ArithmeticBackend { return fp16Backend{} }
