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

import (
	"sync"
	"sync/atomic"
)

// scratch holds the working buffers of one decode. Buffers are sized for
// n positions; raw carries Padding extra zero bytes for escape look-ahead.
type scratch struct {
	n int

	raw    []byte  // RawStream plus padding
	cells  []cell  // OverlapMask
	cand   []int32 // RegionCandidates, -1 once invalidated
	ncand  atomic.Int32
	values []int32 // DecodedValues
	pred   []int32 // keep predicate, then its inclusive prefix sum
	index  []int32 // CompactionIndex
}

var scratchPool = sync.Pool{New: func() any { return new(scratch) }}

// getScratch returns pooled buffers holding at least n positions. Only the
// padding of raw is cleared here; the pipeline resets the rest.
func getScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.raw) < n+Padding {
		s.raw = make([]byte, n+Padding)
		s.cells = make([]cell, n)
		s.cand = make([]int32, n)
		s.values = make([]int32, n)
		s.pred = make([]int32, n)
		s.index = make([]int32, n)
	}
	s.n = n
	s.raw = s.raw[:n+Padding]
	s.cells = s.cells[:n]
	s.cand = s.cand[:n]
	s.values = s.values[:n]
	s.pred = s.pred[:n]
	s.index = s.index[:n]
	s.ncand.Store(0)
	return s
}

func putScratch(s *scratch) {
	scratchPool.Put(s)
}

// load copies src into the padded raw buffer and zero-fills the padding.
func (s *scratch) load(src []byte) {
	copy(s.raw, src)
	FillBytes(s.raw, 0, len(src))
}

// candidates returns the reserved RegionCandidates entries.
func (s *scratch) candidates() []int32 {
	return s.cand[:s.ncand.Load()]
}
