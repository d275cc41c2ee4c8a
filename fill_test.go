package cbf

import "testing"

func TestFillBytes(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		pattern byte
		offset  int
		want    int // first index holding pattern
	}{
		{"whole", 40, 0xab, 0, 0},
		{"from offset", 40, 0x11, 13, 13},
		{"last byte", 5, 0x7f, 4, 4},
		{"offset past end", 5, 0x7f, 5, 5},
		{"negative offset", 5, 0x7f, -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.n)
			for i := range buf {
				buf[i] = 0xee
			}
			FillBytes(buf, tt.pattern, tt.offset)
			for i, b := range buf {
				want := byte(0xee)
				if i >= tt.want {
					want = tt.pattern
				}
				if b != want {
					t.Fatalf("buf[%d] = %#x, want %#x", i, b, want)
				}
			}
		})
	}
}

func TestFillInt32(t *testing.T) {
	for _, n := range []int{0, 1, 3, 8, 17, 1000} {
		buf := make([]int32, n)
		FillInt32(buf, -7)
		for i, v := range buf {
			if v != -7 {
				t.Fatalf("n=%d: buf[%d] = %d, want -7", n, i, v)
			}
		}
	}
}
