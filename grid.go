package dbscan

import "math"

// grid is a uniform spatial index over a point block, with cell side equal
// to eps per dimension. Any eps-neighbor of a point in cell C lies in one of
// the 3^Dims cells adjacent to C (inclusive).
//
// Cell contents are stored CSR-style in a single flat backing array
// (cellPoints, offset by cellOffsets) rather than a jagged [][]int32, so
// that cells are index-addressable handles into one arena instead of
// separately allocated, independently aliased slices -- safe to hand out to
// concurrent readers in C3 without per-cell synchronization.
type grid struct {
	minBounds, maxBounds [Dims]float32
	eps                  [Dims]float32
	dims                 [Dims]int32

	// cellOffsets has length numCells()+1; cell c owns
	// cellPoints[cellOffsets[c]:cellOffsets[c+1]].
	cellOffsets []int32
	cellPoints  []int32
}

// numCells returns the total cell count, ∏ dims_d.
func (g *grid) numCells() int64 {
	n := int64(1)
	for d := 0; d < Dims; d++ {
		n *= int64(g.dims[d])
	}
	return n
}

// buildGrid constructs a uniform grid over points[0:n*Dims] sized to eps.
// n must be > 0; callers short-circuit n == 0 before calling this.
func buildGrid(points []float32, n int, eps [Dims]float32) (*grid, error) {
	for d := 0; d < Dims; d++ {
		if eps[d] <= 0 {
			return nil, invalidParamf("eps[%d] must be > 0, got %v", d, eps[d])
		}
	}

	g := &grid{eps: eps}

	// Bounds: single scan over points for per-dimension min/max.
	for d := 0; d < Dims; d++ {
		g.minBounds[d] = points[d]
		g.maxBounds[d] = points[d]
	}
	for i := 1; i < n; i++ {
		p := point(points, i)
		for d := 0; d < Dims; d++ {
			if p[d] < g.minBounds[d] {
				g.minBounds[d] = p[d]
			}
			if p[d] > g.maxBounds[d] {
				g.maxBounds[d] = p[d]
			}
		}
	}

	// Dimensions: dims_d = max(1, ceil((max_d - min_d) / eps_d)).
	for d := 0; d < Dims; d++ {
		span := float64(g.maxBounds[d] - g.minBounds[d])
		cells := int64(math.Ceil(span / float64(eps[d])))
		if cells < 1 {
			cells = 1
		}
		if cells > math.MaxInt32 {
			return nil, allocationFailuref("dims[%d] = %d overflows grid cell count", d, cells)
		}
		g.dims[d] = int32(cells)
	}

	numCells := g.numCells()
	if numCells <= 0 || numCells > math.MaxInt32-1 {
		return nil, allocationFailuref("grid cell count %d is invalid or overflows", numCells)
	}

	// Assign: two-pass counting sort into a flat CSR array. First pass
	// computes each point's cell and a per-cell count; prefix-sum turns the
	// counts into offsets; second pass scatters point indices into their
	// cell's slot, preserving insertion (point-index ascending) order.
	cellOf := make([]int32, n)
	counts := make([]int32, numCells+1)
	for i := 0; i < n; i++ {
		coords := g.gridCoords(point(points, i))
		c := g.cellIndex(coords)
		cellOf[i] = c
		counts[c+1]++
	}
	for c := int64(1); c <= numCells; c++ {
		counts[c] += counts[c-1]
	}

	g.cellOffsets = counts
	g.cellPoints = make([]int32, n)
	cursor := make([]int32, numCells)
	copy(cursor, counts[:numCells])
	for i := 0; i < n; i++ {
		c := cellOf[i]
		g.cellPoints[cursor[c]] = int32(i)
		cursor[c]++
	}

	return g, nil
}

// gridCoords returns p's per-dimension cell coordinate, clamped into
// [0, dims_d).
func (g *grid) gridCoords(p []float32) [Dims]int32 {
	var coords [Dims]int32
	for d := 0; d < Dims; d++ {
		c := int32(math.Floor(float64((p[d] - g.minBounds[d]) / g.eps[d])))
		if c < 0 {
			c = 0
		}
		if c >= g.dims[d] {
			c = g.dims[d] - 1
		}
		coords[d] = c
	}
	return coords
}

// cellIndex maps grid coordinates to a flat cell index via row-major
// mixed-radix encoding: ∑ coords_d * ∏_{d'<d} dims_d'.
func (g *grid) cellIndex(coords [Dims]int32) int32 {
	var idx, stride int64 = 0, 1
	for d := 0; d < Dims; d++ {
		idx += int64(coords[d]) * stride
		stride *= int64(g.dims[d])
	}
	return int32(idx)
}

// cellRange returns the [start, end) slice of cellPoints belonging to the
// cell at coords, and false if any coordinate is out of [0, dims_d).
func (g *grid) cellRange(coords [Dims]int32) (start, end int32, ok bool) {
	for d := 0; d < Dims; d++ {
		if coords[d] < 0 || coords[d] >= g.dims[d] {
			return 0, 0, false
		}
	}
	c := g.cellIndex(coords)
	return g.cellOffsets[c], g.cellOffsets[c+1], true
}

// cellSpan identifies one existing cell's slice of cellPoints.
type cellSpan struct {
	start, end int32
}

// neighborCells appends every existing cell within {-1,0,+1}^Dims of coords
// to out (cleared first), omitting out-of-range offsets at grid boundaries.
// O(3^Dims).
func (g *grid) neighborCells(coords [Dims]int32, out *[]cellSpan) {
	*out = (*out)[:0]
	var offset [Dims]int32
	g.enumerateOffsets(0, coords, &offset, out)
}

// enumerateOffsets recurses over {-1,0,+1} per dimension, building offset in
// place, and appends the resulting cell's span to out when in range.
func (g *grid) enumerateOffsets(d int, coords [Dims]int32, offset *[Dims]int32, out *[]cellSpan) {
	if d == Dims {
		var target [Dims]int32
		for i := 0; i < Dims; i++ {
			target[i] = coords[i] + offset[i]
		}
		if start, end, ok := g.cellRange(target); ok {
			*out = append(*out, cellSpan{start: start, end: end})
		}
		return
	}
	for delta := int32(-1); delta <= 1; delta++ {
		offset[d] = delta
		g.enumerateOffsets(d+1, coords, offset, out)
	}
}
