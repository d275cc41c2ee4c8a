package cbf

// finalizeSimple settles every position. Owners are kept with the value the
// walker stored. Positions claimed but never owned are payload and dropped.
// Unclaimed positions are plain bytes and are decoded here.
func finalizeSimple(l launcher, s *scratch) error {
	raw := s.raw
	cells := s.cells
	values := s.values
	return l.launch("finalize", s.n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			c := &cells[p]
			switch {
			case c.state == cellOwner:
				c.keep(p)
			case c.claimed():
				c.state = cellDrop
			default:
				values[p] = int32(int8(raw[p]))
				c.keep(p)
			}
		}
	})
}
