package cbf

import (
	"math"
	"slices"
	"testing"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int32
		base   int32
		want   []int32
	}{
		{"empty", nil, 0, nil},
		{"single", []int32{5}, 0, []int32{5}},
		{"running sum", []int32{10, -3, 0, 7, 100}, 0, []int32{10, 7, 7, 14, 114}},
		{"with base", []int32{1, 1, 1}, 41, []int32{42, 43, 44}},
		{"wraps", []int32{math.MaxInt32, 1}, 0, []int32{math.MaxInt32, math.MinInt32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.deltas)
			Integrate(got, tt.base)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Integrate = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIntegrate_Frame verifies decode plus integration recovers intensities
func TestIntegrate_Frame(t *testing.T) {
	intensities := []int32{0, 10, 10, 200, 195, 70000, 3, 3, -1, 1 << 30}
	deltas := make([]int32, len(intensities))
	prev := int32(0)
	for i, v := range intensities {
		deltas[i] = v - prev
		prev = v
	}

	got, err := Decode(encodeDeltas(deltas))
	if err != nil {
		t.Fatal(err)
	}
	Integrate(got, 0)
	if !slices.Equal(got, intensities) {
		t.Errorf("intensities = %v, want %v", got, intensities)
	}
}
