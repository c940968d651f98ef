package dbscan

// neighborLists holds, for every point, the flat list of its eps-neighbors
// in CSR form: point i's neighbors are indices[offsets[i]:offsets[i+1]].
// Preferred over a jagged [][]int32: one allocation total instead of n, and
// better locality for the classifier's union phase.
type neighborLists struct {
	offsets []int32 // length n+1
	indices []int32 // length offsets[n]
}

// size returns |N(i)|.
func (nl *neighborLists) size(i int) int {
	return int(nl.offsets[i+1] - nl.offsets[i])
}

// iter returns N(i) as a slice; callers must not mutate it.
func (nl *neighborLists) iter(i int) []int32 {
	return nl.indices[nl.offsets[i]:nl.offsets[i+1]]
}

// buildNeighborLists computes N(i) for every point in parallel, using the
// grid to restrict candidates to the 3^Dims adjacent cells. Two passes over
// [0, n): the first sizes each N(i) and prefix-sums into offsets, the
// second scatters the actual indices. Each pass partitions work across
// workers via parallelFor, and each point owns disjoint output slots
// (offsets[i]:offsets[i+1]) in the second pass -- no output races.
//
// Symmetry and self-exclusion follow directly from areNeighbors being
// symmetric and irreflexive-by-construction (candidates equal to i are
// skipped).
func buildNeighborLists(points []float32, n int, g *grid, eps [Dims]float32, workers int) *neighborLists {
	offsets := make([]int32, n+1)

	countNeighbors := func(start, end int) {
		var spans []cellSpan
		for i := start; i < end; i++ {
			pi := point(points, i)
			coords := g.gridCoords(pi)
			g.neighborCells(coords, &spans)

			var count int32
			for _, span := range spans {
				for _, j := range g.cellPoints[span.start:span.end] {
					if int(j) == i {
						continue
					}
					if areNeighbors(pi, point(points, int(j)), eps) {
						count++
					}
				}
			}
			offsets[i+1] = count
		}
	}
	parallelFor(n, workers, countNeighbors)

	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}

	indices := make([]int32, offsets[n])

	fillNeighbors := func(start, end int) {
		var spans []cellSpan
		for i := start; i < end; i++ {
			pi := point(points, i)
			coords := g.gridCoords(pi)
			g.neighborCells(coords, &spans)

			slot := offsets[i]
			for _, span := range spans {
				for _, j := range g.cellPoints[span.start:span.end] {
					if int(j) == i {
						continue
					}
					if areNeighbors(pi, point(points, int(j)), eps) {
						indices[slot] = j
						slot++
					}
				}
			}
		}
	}
	parallelFor(n, workers, fillNeighbors)

	return &neighborLists{offsets: offsets, indices: indices}
}
