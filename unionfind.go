package dbscan

import "sync/atomic"

// atomicUnionFind is a lock-free disjoint-set over point indices [0, n),
// stored as an array of atomic cells. find uses path halving (re-pointing a
// node to its grandparent on each traversal, made safe under concurrent
// mutation via CAS); unite uses a min-root tie-break so the root index is
// monotonically non-increasing under unification, which is what bounds CAS
// retries and keeps the structure acyclic under concurrent unite calls.
//
// Go's sync/atomic operations are sequentially consistent as of the Go
// memory model (https://go.dev/ref/mem#atomic), which is at least as strong
// as acquire-load/release-store/acq-rel-CAS ordering -- there is no separate
// acquire/release API to select in Go.
type atomicUnionFind struct {
	parent []atomic.Int32
}

// newAtomicUnionFind returns a union-find over n singleton sets:
// parent[i] == i for every i.
func newAtomicUnionFind(n int) *atomicUnionFind {
	uf := &atomicUnionFind{parent: make([]atomic.Int32, n)}
	for i := range uf.parent {
		uf.parent[i].Store(int32(i))
	}
	return uf
}

// find returns the root of x's set, halving the path to it as it goes.
func (uf *atomicUnionFind) find(x int32) int32 {
	for {
		p := uf.parent[x].Load()
		if p == x {
			return x
		}
		gp := uf.parent[p].Load()
		if p == gp {
			return p
		}
		// Path halving: try to re-point x directly to its grandparent. A
		// failed CAS means another goroutine already advanced parent[x] at
		// least as far; either way the loop retries from the freshly
		// observed value, so progress is never lost.
		uf.parent[x].CompareAndSwap(p, gp)
		x = gp
	}
}

// unite merges the sets containing x and y. The smaller of the two roots
// always survives as the new root (min-root union): this tie-break is what
// keeps concurrent unite calls from racing each other into a cycle, since a
// root can only ever be re-pointed to something numerically smaller than
// itself.
func (uf *atomicUnionFind) unite(x, y int32) {
	for {
		rx := uf.find(x)
		ry := uf.find(y)
		if rx == ry {
			return
		}

		smaller, larger := rx, ry
		if larger < smaller {
			smaller, larger = larger, smaller
		}

		if uf.parent[larger].CompareAndSwap(larger, smaller) {
			return
		}
		// Lost the race: parent[larger] was already advanced (necessarily
		// to something <= larger) by another unite. Retry with fresh roots.
	}
}
