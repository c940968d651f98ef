package dbscan

import "runtime"

// Config controls the clustering pipeline. There is no DefaultConfig: Eps
// and MinPts directly encode the clustering criteria and have no sane
// generic default. Only NThreads defaults (to runtime.NumCPU()) when left
// at 0.
type Config struct {
	// Eps is the per-dimension neighborhood half-width. Two points p, q are
	// neighbors iff |p[d]-q[d]| <= Eps[d] for every dimension d. Every
	// entry must be > 0.
	Eps [Dims]float32

	// MinPts is the density threshold: a point is core iff its
	// eps-neighborhood (excluding itself) contains at least MinPts points.
	// Must be >= 1.
	MinPts int

	// NThreads is a concurrency hint for the parallel stages. 0 defaults to
	// runtime.NumCPU(); the pipeline may run with fewer workers than
	// requested but never blocks waiting for more.
	NThreads int
}

// Result is the output of Cluster.
type Result struct {
	// Labels assigns each point to a dense cluster ID in [0, NClusters), or
	// -1 (noise) for points that are not members of any cluster.
	Labels []int32

	// NClusters is the number of distinct clusters found.
	NClusters int

	// NNoise is the number of points labeled noise.
	NNoise int

	// CoreMask marks which points are core points (their eps-neighborhood
	// meets MinPts). Supplemental diagnostic output restored from the
	// original implementation; not required by any invariant on Labels.
	CoreMask []bool
}

// applyDefaults fills in zero-valued Config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.NThreads == 0 {
		cfg.NThreads = runtime.NumCPU()
	}
}

// validateConfig checks cfg fields and returns ErrInvalidParam-wrapped
// errors describing the first violation found.
func validateConfig(cfg *Config) error {
	for d := 0; d < Dims; d++ {
		if cfg.Eps[d] <= 0 {
			return invalidParamf("Eps[%d] must be > 0, got %v", d, cfg.Eps[d])
		}
	}
	if cfg.MinPts <= 0 {
		return invalidParamf("MinPts must be >= 1, got %d", cfg.MinPts)
	}
	if cfg.NThreads <= 0 {
		return invalidParamf("NThreads must be >= 1, got %d", cfg.NThreads)
	}
	return nil
}

// emptyResult returns a Result with zero counts and non-nil Labels and
// CoreMask slices of length n (all zero values).
func emptyResult(n int) *Result {
	return &Result{
		Labels:   make([]int32, n),
		CoreMask: make([]bool, n),
	}
}

// Cluster partitions points (n points, Dims coordinates each, row-major,
// read-only for the duration of this call) into clusters plus a noise set,
// per cfg. It returns ErrInvalidParam if cfg is invalid, or ErrAllocation if
// the grid cannot be sized for points and cfg.Eps. No partial output is
// returned alongside an error.
//
// No mutable state survives between calls; the grid, neighbor lists, core
// mask, and union-find built here are all scoped to this call and released
// when it returns.
func Cluster(points []float32, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if n == 0 {
		return emptyResult(0), nil
	}
	if len(points) < n*Dims {
		return nil, invalidParamf("points has length %d, want at least %d for n=%d", len(points), n*Dims, n)
	}

	g, err := buildGrid(points, n, cfg.Eps)
	if err != nil {
		return nil, err
	}

	nl := buildNeighborLists(points, n, g, cfg.Eps, cfg.NThreads)

	labels, coreMask, nClusters, nNoise := classify(nl, n, cfg.MinPts, cfg.NThreads)

	return &Result{
		Labels:    labels,
		NClusters: nClusters,
		NNoise:    nNoise,
		CoreMask:  coreMask,
	}, nil
}
