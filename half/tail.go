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

// processWithTail splits size elements into whole batches of lanes and a
// remainder. It calls fullFn(offset) for each batch and tailFn(offset, count)
// once for the remainder, if there is one.
//
// Example:
//
//	processWithTail(len(a), 8,
//	    func(offset int) {
//	        // a[offset:offset+8] as one vector
//	    },
//	    func(offset, count int) {
//	        // the last count elements, one at a time
//	    },
//	)
func processWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
