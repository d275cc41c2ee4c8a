package cbf

import "sync/atomic"

// cellState tags one byte position of the overlap mask.
//
// Transitions and the only stage allowed to make them:
//
//	unclaimed -> claimed   markExceptions (atomic claim count)
//	claimed   -> owner     resolveExceptions (owning walker only)
//	claimed   -> drop      finalizeSimple
//	owner     -> keep      finalizeSimple
//	unclaimed -> keep      finalizeSimple
type cellState uint8

const (
	cellUnclaimed cellState = iota
	cellClaimed
	cellOwner
	cellDrop
	cellKeep
)

func (s cellState) String() string {
	switch s {
	case cellUnclaimed:
		return "unclaimed"
	case cellClaimed:
		return "claimed"
	case cellOwner:
		return "owner"
	case cellDrop:
		return "drop"
	case cellKeep:
		return "keep"
	}
	return "invalid"
}

// cell is the per-position entry of the overlap mask.
//
// claims is only written by the marking stage and is stable afterwards; the
// resolver reads it to decide ownership and run extent. state and index are
// written by exactly one goroutine per position in each later stage.
type cell struct {
	claims atomic.Int32
	state  cellState
	index  int32 // DecodedValues slot when state == cellKeep
}

func (c *cell) reset() {
	c.claims.Store(0)
	c.state = cellUnclaimed
	c.index = 0
}

// claim records one more tentative claim on the position.
func (c *cell) claim() {
	if c.claims.Add(1) == 1 {
		// Only the first claimant writes state.
		c.state = cellClaimed
	}
}

func (c *cell) claimed() bool { return c.claims.Load() > 0 }

func (c *cell) keep(p int) {
	c.state = cellKeep
	c.index = int32(p)
}

func (c *cell) kept() bool { return c.state == cellKeep }
