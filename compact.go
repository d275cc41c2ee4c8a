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

// compact builds CompactionIndex from the kept positions, preserving order,
// and returns its length. The slot of a kept position is the inclusive prefix
// sum of the keep predicate minus one.
func compact(l launcher, s *scratch) (int, error) {
	n := s.n
	if n == 0 {
		return 0, nil
	}
	cells := s.cells
	pred := s.pred

	err := l.launch("predicate", n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if cells[p].kept() {
				pred[p] = 1
			} else {
				pred[p] = 0
			}
		}
	})
	if err != nil {
		return 0, err
	}

	algo.PrefixSum(pred)
	m := int(pred[n-1])

	index := s.index
	err = l.launch("scatter", n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if c := &cells[p]; c.kept() {
				index[pred[p]-1] = c.index
			}
		}
	})
	if err != nil {
		return 0, err
	}
	s.index = index[:m]
	return m, nil
}
