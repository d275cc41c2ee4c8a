package cbf

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// encodeDeltas produces the byte-offset encoding of deltas using the
// narrowest width for each value.
func encodeDeltas(deltas []int32) []byte {
	var out []byte
	for _, d := range deltas {
		switch {
		case d >= -127 && d <= 127:
			out = append(out, byte(int8(d)))
		case d >= -32767 && d <= 32767:
			out = append(out, 0x80)
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(d)))
		default:
			out = append(out, 0x80, 0x00, 0x80)
			out = binary.LittleEndian.AppendUint32(out, uint32(d))
		}
	}
	return out
}

// edgeDeltas are values sitting on either side of every width boundary.
var edgeDeltas = []int32{
	0, 1, -1, 127, -127, 128, -128, 255, -255,
	0x7f80, -0x7f80, 32767, -32767, 32768, -32768, 0x8000, 0x80ff, -0x80,
	65536, -65536, 0x00800080, -0x7fff80, math.MaxInt32, math.MinInt32,
}

// randomDeltas returns n deltas mixing every encoded width, with a bias
// towards values whose payload bytes look like escape markers.
func randomDeltas(rng *rand.Rand, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		switch r := rng.IntN(10); {
		case r < 5:
			out[i] = int32(rng.IntN(255)) - 127
		case r < 7:
			out[i] = int32(rng.IntN(65535)) - 32767
		case r < 8:
			out[i] = int32(rng.Uint32())
		default:
			out[i] = edgeDeltas[rng.IntN(len(edgeDeltas))]
		}
	}
	return out
}

// int8s converts signed test bytes to a stream.
func int8s(vals ...int8) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = byte(v)
	}
	return out
}
