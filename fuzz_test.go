package cbf

import (
	"slices"
	"testing"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add(mixedStream)
	f.Add([]byte{0x80, 0x80, 0x01, 0x05, 0x06})
	f.Add([]byte{0x80, 0x00, 0x80})
	f.Add(encodeDeltas(edgeDeltas))

	d := NewDecoder(&DecodeOptions{Workers: 4, StripeSize: 3})
	f.Fuzz(func(t *testing.T, src []byte) {
		want := DecodeSequential(src)
		got, err := d.Decode(src)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("parallel %v != sequential %v", got, want)
		}

		st, err := d.Analyze(src)
		if err != nil {
			t.Fatal(err)
		}
		if st.Elements != len(want) || st.Dropped != len(src)-len(want) {
			t.Fatalf("stats %+v inconsistent with %d elements", st, len(want))
		}
	})
}
