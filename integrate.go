// Copyright 2025 go-cbf Authors
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

package cbf

import "github.com/ajroetker/go-highway/hwy/contrib/algo"

// Integrate turns decoded deltas into absolute pixel intensities in place.
// Result[i] = base + deltas[0] + ... + deltas[i], with int32 wraparound.
//
// Byte-offset frames start from base 0; pass the last intensity of the
// previous chunk to continue a frame split across several decodes.
func Integrate(deltas []int32, base int32) {
	algo.DeltaDecode(deltas, base)
}
