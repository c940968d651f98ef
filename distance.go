package dbscan

// areNeighbors reports whether a and b lie within the eps box of each
// other: |a[d]-b[d]| <= eps[d] for every dimension d. It short-circuits on
// the first failing dimension rather than reducing to a single scalar
// distance.
func areNeighbors(a, b []float32, eps [Dims]float32) bool {
	for d := 0; d < Dims; d++ {
		diff := a[d] - b[d]
		if diff < 0 {
			diff = -diff
		}
		if diff > eps[d] {
			return false
		}
	}
	return true
}
