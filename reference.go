package cbf

const (
	// Padding is the number of bytes read past the last position when a
	// stream ends in a truncated escape.
	Padding = 6

	escape8  int8  = -128
	escape16 int16 = -32768
)

// decodeElement decodes the element starting at raw[p] and returns its value
// and width in bytes. raw must hold at least Padding bytes after p.
func decodeElement(raw []byte, p int) (int32, int) {
	b := int8(raw[p])
	if b != escape8 {
		return int32(b), 1
	}
	v16 := int16(uint16(raw[p+1]) | uint16(raw[p+2])<<8)
	if v16 != escape16 {
		return int32(v16), 3
	}
	v32 := int32(uint32(raw[p+3]) | uint32(raw[p+4])<<8 | uint32(raw[p+5])<<16 | uint32(raw[p+6])<<24)
	return v32, 7
}

// DecodeSequential decodes a byte-offset stream on the calling goroutine. It
// is the reference the parallel pipeline must match bit for bit, including
// on streams ending in a truncated escape, whose missing bytes read as zero.
func DecodeSequential(src []byte) []int32 {
	raw := make([]byte, len(src)+Padding)
	copy(raw, src)

	out := make([]int32, 0, len(src))
	for p := 0; p < len(src); {
		v, w := decodeElement(raw, p)
		out = append(out, v)
		p += w
	}
	return out
}
