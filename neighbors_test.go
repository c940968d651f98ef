package dbscan

import (
	"reflect"
	"sort"
	"testing"
)

func sortedCopy(s []int32) []int32 {
	out := append([]int32{}, s...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestBuildNeighborLists_Symmetric(t *testing.T) {
	points := []float32{
		0, 0,
		0.1, 0.1,
		0.2, 0,
		10, 10,
	}
	n := 4
	eps := [Dims]float32{0.5, 0.5}
	g, err := buildGrid(points, n, eps)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}
	nl := buildNeighborLists(points, n, g, eps, 1)

	for i := 0; i < n; i++ {
		for _, j := range nl.iter(i) {
			found := false
			for _, back := range nl.iter(int(j)) {
				if int(back) == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("symmetry violated: %d in N(%d) but %d not in N(%d)", j, i, i, j)
			}
		}
	}
}

func TestBuildNeighborLists_SelfExcluded(t *testing.T) {
	points := []float32{0, 0, 0, 0, 0, 0}
	n := 3
	eps := [Dims]float32{1, 1}
	g, err := buildGrid(points, n, eps)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}
	nl := buildNeighborLists(points, n, g, eps, 1)

	for i := 0; i < n; i++ {
		for _, j := range nl.iter(i) {
			if int(j) == i {
				t.Errorf("self-exclusion violated: %d found in N(%d)", j, i)
			}
		}
		if nl.size(i) != n-1 {
			t.Errorf("size(%d) = %d, want %d (coincident points)", i, nl.size(i), n-1)
		}
	}
}

func TestBuildNeighborLists_NoDuplicates(t *testing.T) {
	// A symmetric cluster of closely packed points around a grid-cell boundary,
	// exercised with multiple workers to shake out any races in the output
	// slots.
	points := []float32{
		0.49, 0.49,
		0.51, 0.51,
		0.49, 0.51,
		0.51, 0.49,
		0, 0,
	}
	n := 5
	eps := [Dims]float32{0.1, 0.1}
	g, err := buildGrid(points, n, eps)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}
	for _, workers := range []int{1, 2, 4} {
		nl := buildNeighborLists(points, n, g, eps, workers)
		for i := 0; i < n; i++ {
			seen := map[int32]bool{}
			for _, j := range nl.iter(i) {
				if seen[j] {
					t.Errorf("workers=%d: duplicate neighbor %d in N(%d)", workers, j, i)
				}
				seen[j] = true
			}
		}
	}
}

func TestBuildNeighborLists_MatchesBruteForce(t *testing.T) {
	points := []float32{
		0, 0,
		0.3, 0.1,
		1.2, 1.1,
		1.3, 0.9,
		5, 5,
		0.05, -0.2,
	}
	n := len(points) / Dims
	eps := [Dims]float32{0.5, 0.5}
	g, err := buildGrid(points, n, eps)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}

	for _, workers := range []int{1, 3} {
		nl := buildNeighborLists(points, n, g, eps, workers)
		for i := 0; i < n; i++ {
			var want []int32
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if areNeighbors(point(points, i), point(points, j), eps) {
					want = append(want, int32(j))
				}
			}
			got := sortedCopy(nl.iter(i))
			want = sortedCopy(want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("workers=%d: N(%d) = %v, want %v", workers, i, got, want)
			}
		}
	}
}

func TestBuildNeighborLists_Empty(t *testing.T) {
	// n=1: no candidates besides the grid's own single cell.
	points := []float32{1, 2}
	eps := [Dims]float32{0.5, 0.5}
	g, err := buildGrid(points, 1, eps)
	if err != nil {
		t.Fatalf("buildGrid: %v", err)
	}
	nl := buildNeighborLists(points, 1, g, eps, 1)
	if nl.size(0) != 0 {
		t.Errorf("size(0) = %d, want 0", nl.size(0))
	}
}
