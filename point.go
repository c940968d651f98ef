package dbscan

// Dims is the fixed dimensionality of the space Cluster operates over. The
// grid, distance predicate, and classifier are monomorphic in Dims: there is
// no virtual dispatch over dimensionality, and no generic D parameter.
const Dims = 2

// point returns a view of point i's coordinates within the flat, row-major
// points block. The returned slice aliases points and must not be retained
// past the caller's use of it -- points is borrowed read-only for the
// duration of a single Cluster call.
func point(points []float32, i int) []float32 {
	return points[i*Dims : i*Dims+Dims]
}
