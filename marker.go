package cbf

// markExceptions flags every byte that looks like an escape start. Each
// candidate is appended to RegionCandidates and claims its own position plus
// the 16-bit payload, and the 32-bit payload too when the nested signature
// follows. Claims past the end of the stream are skipped.
//
// A position may be claimed many times; later stages correct the false
// positives.
func markExceptions(l launcher, s *scratch) error {
	n := s.n
	raw := s.raw
	cells := s.cells
	return l.launch("mark", n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if int8(raw[p]) != escape8 {
				continue
			}
			slot := s.ncand.Add(1) - 1
			s.cand[slot] = int32(p)

			end := p + 3
			if raw[p+1] == 0 && int8(raw[p+2]) == escape8 {
				end = p + 7
			}
			for q := p; q < min(end, n); q++ {
				cells[q].claim()
			}
		}
	})
}
