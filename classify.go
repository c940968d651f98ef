package dbscan

// dbNoise is the only externally visible sentinel label (-1). dbUnvisited
// marks a label slot before Phase C has run; it must never escape Cluster.
const (
	dbNoise     int32 = -1
	dbUnvisited int32 = -2
)

// classify runs the three-phase classifier (Init / Union / Finalize) over
// the neighbor lists nl, and returns the dense, relabeled cluster labels
// together with the cluster and noise counts.
//
// Phases A, B, and C are separated by a full barrier (parallelFor returns
// only once every worker in a phase has finished): Union must see every
// core point's membership from Phase A, and Finalize must see every union
// performed in Phase B.
func classify(nl *neighborLists, n, minPts, workers int) (labels []int32, isCore []bool, nClusters, nNoise int) {
	if n == 0 {
		return []int32{}, []bool{}, 0, 0
	}

	uf := newAtomicUnionFind(n)
	isCore = make([]bool, n)

	// Phase A: initialize. parent[i] == i already holds from
	// newAtomicUnionFind; only the core mask needs computing here.
	parallelFor(n, workers, func(start, end int) {
		for i := start; i < end; i++ {
			isCore[i] = nl.size(i) >= minPts
		}
	})

	// Phase B: union. Only core points act as union sources; non-core
	// points are still absorbed as targets, which is how a border point
	// inherits a core neighbor's cluster.
	parallelFor(n, workers, func(start, end int) {
		for i := start; i < end; i++ {
			if !isCore[i] {
				continue
			}
			for _, j := range nl.iter(i) {
				uf.unite(int32(i), j)
			}
		}
	})

	// Phase C: finalize. Every point's label becomes its root's identity
	// if that root is a core point, else noise.
	labels = make([]int32, n)
	for i := range labels {
		labels[i] = dbUnvisited
	}
	parallelFor(n, workers, func(start, end int) {
		for i := start; i < end; i++ {
			root := uf.find(int32(i))
			if isCore[root] {
				labels[i] = root
			} else {
				labels[i] = dbNoise
			}
		}
	})

	relabelDense(labels)

	for _, l := range labels {
		if l == dbUnvisited {
			invariantViolation("label %d left unvisited after finalize", l)
		}
		if l == dbNoise {
			nNoise++
		} else if int(l) >= nClusters {
			nClusters = int(l) + 1
		}
	}

	return labels, isCore, nClusters, nNoise
}

// relabelDense compacts the sparse intermediate root IDs in labels into a
// dense [0, K) range in place, scanning ascending by point index so the
// mapping -- and therefore the final label vector -- is independent of
// thread scheduling. This is what makes Cluster's output deterministic for
// a fixed nThreads=1 run and deterministic up to this canonical relabeling
// for any nThreads.
func relabelDense(labels []int32) {
	dense := make(map[int32]int32)
	var next int32
	for i, l := range labels {
		if l == dbNoise {
			continue
		}
		id, ok := dense[l]
		if !ok {
			id = next
			dense[l] = id
			next++
		}
		labels[i] = id
	}
}
