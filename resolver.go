package cbf

// resolveExceptions runs one walker per candidate. A candidate whose
// predecessor is claimed lies inside an earlier region and is invalidated.
// Otherwise the walker owns its region: it decodes elements serially from
// the candidate and keeps going while the next element start is still
// claimed, absorbing the whole contiguous run.
//
// Runs are separated by unclaimed positions and every multi-byte element
// claims its own payload, so walkers never touch the same position.
func resolveExceptions(l launcher, s *scratch) error {
	n := s.n
	raw := s.raw
	cells := s.cells
	values := s.values
	cand := s.candidates()
	return l.launch("resolve", len(cand), func(lo, hi int) {
		for c := lo; c < hi; c++ {
			p := int(cand[c])
			if p > 0 && cells[p-1].claimed() {
				cand[c] = -1
				continue
			}
			for p < n && cells[p].claimed() {
				v, w := decodeElement(raw, p)
				values[p] = v
				cells[p].state = cellOwner
				p += w
			}
		}
	})
}
