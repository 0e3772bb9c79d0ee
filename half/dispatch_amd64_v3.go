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

//go:build amd64 && amd64.v3 && !noasm

package half

// The x86-64-v3 microarchitecture level (GOAMD64=v3) includes F16C, so the
// F16C backend is wired in without a CPU check.

func detectCapabilities() Capabilities {
	return Capabilities{Policy: PolicyStatic, F16C: true}
}

func active() Backend { return f16cBackend{} }

func activeArith() ArithmeticBackend { return nil }
