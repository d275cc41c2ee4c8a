package cbf

// gather writes DecodedValues[CompactionIndex[g]] to dst[g] for every output
// slot, converting to the destination element type.
func gather[T int32 | float32](l launcher, dst []T, values, index []int32) error {
	return l.launch("gather", len(dst), func(lo, hi int) {
		for g := lo; g < hi; g++ {
			dst[g] = T(values[index[g]])
		}
	})
}
