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

// Package asm holds the hand-written assembly behind the half package's
// hardware backends.
//
// amd64 builds expose the F16C conversion instructions (VCVTPH2PS and
// VCVTPS2PH). arm64 builds expose the ARMv8.2-A FP16 extension: scalar and
// vector conversions plus native half-precision arithmetic. Other
// architectures, and builds with the noasm tag, compile this package empty.
//
// Nothing here checks for the extension it uses. Executing a function on a
// core without it faults with an illegal instruction. The half package
// detects the extension once and only calls into this package afterwards.
//
// Functions that take raw pointers read or write a fixed number of bytes
// through them, as documented per function, with no bounds checks and no
// synchronization. The caller owns that memory for the duration of the call.
package asm
