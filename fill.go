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

import "github.com/ajroetker/go-highway/hwy"

// FillBytes sets dst[offset:] to pattern. An offset outside dst is a no-op.
func FillBytes(dst []byte, pattern byte, offset int) {
	if offset < 0 || offset >= len(dst) {
		return
	}
	fill(dst[offset:], pattern)
}

// FillInt32 sets every element of dst to pattern.
func FillInt32(dst []int32, pattern int32) {
	fill(dst, pattern)
}

func fill[T hwy.Integers](dst []T, pattern T) {
	n := len(dst)
	lanes := hwy.MaxLanes[T]()
	v := hwy.Set[T](pattern)
	i := 0
	for ; i+lanes <= n; i += lanes {
		hwy.Store(v, dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = pattern
	}
}
