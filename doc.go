// Package dbscan implements a parallel, grid-accelerated DBSCAN clustering
// core over a fixed 2-dimensional Euclidean-like space, using a
// per-dimension L∞ ("box") neighborhood test instead of a single radius.
//
// Given N points, a per-dimension half-width Eps, and a density threshold
// MinPts, Cluster partitions the points into zero or more clusters plus a
// noise set. Points p and q are neighbors iff |p_d - q_d| <= Eps[d] for
// every dimension d.
//
// Basic usage:
//
//	cfg := dbscan.Config{Eps: [dbscan.Dims]float32{0.5, 0.5}, MinPts: 3, NThreads: 4}
//	result, err := dbscan.Cluster(points, n, cfg)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
//	// result.NClusters is the number of dense cluster IDs in [0, NClusters)
//
// # Pipeline
//
// Cluster wires together three stages:
//
//   - a uniform spatial grid sized to Eps, so that the neighbors of any
//     point lie only in the 3x3 block of cells centered on its own cell;
//   - a parallel neighbor-list build over that grid;
//   - a parallel classifier that marks core points, merges core-reachable
//     points via a lock-free concurrent union-find, and emits a dense,
//     deterministic label vector.
//
// Dense cluster IDs are assigned in order of first appearance by point
// index, so for a given input the label vector is identical across runs and
// across NThreads values. IDs are tied to the input's point order: permuting
// the input can change which integer a cluster gets, but not which points
// share a cluster.
package dbscan
