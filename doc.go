// Package cbf decodes the CBF "byte-offset" compression scheme used for
// area-detector images in X-ray diffraction.
//
// A byte-offset stream stores each pixel delta in the narrowest signed width
// that holds it. A single byte carries deltas in [-127, 127]; the byte -128
// escapes to a little-endian 16-bit value, and the 16-bit value -32768
// escapes again to a little-endian 32-bit value.
//
// Element boundaries depend on every preceding element, so a naive decoder is
// strictly sequential. This package decodes data-parallel instead: every byte
// that looks like an escape start optimistically claims its payload, the
// earliest claimant of each contiguous claimed run repairs it with a short
// serial walk, and a prefix-sum compaction drops the payload bytes. Each stage
// runs as a striped launch across goroutines, separated by a full barrier.
//
// Decoding:
//
//	deltas, err := cbf.Decode(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cbf.Integrate(deltas, 0) // absolute intensities
//
// DecodeSequential is the single-threaded reference decoder; it produces
// bit-identical output and is useful for cross-checking.
//
// The encode direction and CBF header parsing are not provided; callers pass
// the binary section of one frame.
package cbf
