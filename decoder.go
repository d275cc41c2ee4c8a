package cbf

import (
	"fmt"
	"math"
)

// maxStreamLen bounds positions so they fit the int32 index buffers.
const maxStreamLen = math.MaxInt32 - Padding

// DecodeOptions controls how a decode is spread across goroutines.
type DecodeOptions struct {
	// Workers is the maximum number of goroutines per pipeline stage.
	// 0 means runtime.GOMAXPROCS(0). 1 runs every stage on the caller.
	Workers int

	// StripeSize is the minimum number of positions handled by one
	// goroutine. 0 means 4096. Smaller stripes only pay off on very slow
	// per-element work; they are mostly useful in tests.
	StripeSize int
}

// Stats describes one decoded stream.
type Stats struct {
	Bytes      int // input length N
	Elements   int // decoded element count M
	Candidates int // bytes equal to the escape marker
	Regions    int // candidates that owned a run after deduplication
	Dropped    int // payload positions removed by compaction, N - M
}

// Decoder decodes byte-offset streams. A Decoder holds no per-stream state
// and is safe for concurrent use.
type Decoder struct {
	opts DecodeOptions
	l    launcher
}

// NewDecoder returns a Decoder. A nil opts uses the defaults.
func NewDecoder(opts *DecodeOptions) *Decoder {
	d := &Decoder{}
	if opts != nil {
		d.opts = *opts
	}
	d.l = launcher{workers: d.opts.Workers, stripe: d.opts.StripeSize}
	return d
}

var defaultDecoder = NewDecoder(nil)

// Decode decodes src into int32 deltas with the default Decoder.
func Decode(src []byte) ([]int32, error) {
	return defaultDecoder.Decode(src)
}

// DecodeFloat32 decodes src into float32 deltas with the default Decoder.
func DecodeFloat32(src []byte) ([]float32, error) {
	return defaultDecoder.DecodeFloat32(src)
}

// Decode decodes one byte-offset stream into int32 deltas. src does not need
// to be padded.
func (d *Decoder) Decode(src []byte) ([]int32, error) {
	s, m, err := d.run(src)
	if err != nil {
		return nil, err
	}
	defer putScratch(s)

	out := make([]int32, m)
	if err := gather(d.l, out, s.values, s.index); err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}
	return out, nil
}

// DecodeFloat32 is like Decode but converts every delta to float32.
func (d *Decoder) DecodeFloat32(src []byte) ([]float32, error) {
	s, m, err := d.run(src)
	if err != nil {
		return nil, err
	}
	defer putScratch(s)

	out := make([]float32, m)
	if err := gather(d.l, out, s.values, s.index); err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}
	return out, nil
}

// DecodeInto decodes src into dst, whose length must equal the number of
// decoded elements.
func (d *Decoder) DecodeInto(dst []int32, src []byte) error {
	return decodeInto(d, dst, src)
}

// DecodeFloat32Into decodes src into dst, whose length must equal the
// number of decoded elements.
func (d *Decoder) DecodeFloat32Into(dst []float32, src []byte) error {
	return decodeInto(d, dst, src)
}

func decodeInto[T int32 | float32](d *Decoder, dst []T, src []byte) error {
	s, m, err := d.run(src)
	if err != nil {
		return err
	}
	defer putScratch(s)

	if m != len(dst) {
		return fmt.Errorf("%w: have %d, decoded %d", ErrLengthMismatch, len(dst), m)
	}
	if err := gather(d.l, dst, s.values, s.index); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	return nil
}

// Analyze runs the pipeline up to compaction and reports its bookkeeping.
// Elements is the output length Decode would produce.
func (d *Decoder) Analyze(src []byte) (Stats, error) {
	s, m, err := d.run(src)
	if err != nil {
		return Stats{}, err
	}
	defer putScratch(s)

	st := Stats{
		Bytes:    len(src),
		Elements: m,
		Dropped:  len(src) - m,
	}
	for _, p := range s.candidates() {
		st.Candidates++
		if p >= 0 {
			st.Regions++
		}
	}
	return st, nil
}

// run executes every stage before the gather. On success the caller owns s
// and must return it with putScratch.
func (d *Decoder) run(src []byte) (*scratch, int, error) {
	n := len(src)
	if n > maxStreamLen {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}

	s := getScratch(n)
	s.load(src)
	FillInt32(s.values, 0)

	m, err := d.pipeline(s)
	if err != nil {
		putScratch(s)
		return nil, 0, err
	}
	return s, m, nil
}

func (d *Decoder) pipeline(s *scratch) (int, error) {
	cells := s.cells
	err := d.l.launch("reset", s.n, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			cells[p].reset()
		}
	})
	if err != nil {
		return 0, fmt.Errorf("reset: %w", err)
	}
	if err := markExceptions(d.l, s); err != nil {
		return 0, fmt.Errorf("mark exceptions: %w", err)
	}
	if err := resolveExceptions(d.l, s); err != nil {
		return 0, fmt.Errorf("resolve exceptions: %w", err)
	}
	if err := finalizeSimple(d.l, s); err != nil {
		return 0, fmt.Errorf("finalize: %w", err)
	}
	m, err := compact(d.l, s)
	if err != nil {
		return 0, fmt.Errorf("compact: %w", err)
	}
	return m, nil
}
