package bridges

import "errors"

var (
	// ErrConfig indicates an invalid configuration: cluster/node counts out
	// of order, non-positive contrast, negative iteration counts, or more
	// nodes than data points at fit time.
	ErrConfig = errors.New("bridges: invalid configuration")
	// ErrNotFitted indicates Predict or NormalizedEigengap before Fit.
	ErrNotFitted = errors.New("bridges: model is not fitted")
	// ErrDimensionMismatch indicates query dimensionality differing from the
	// dimensionality seen at fit time.
	ErrDimensionMismatch = errors.New("bridges: dimension mismatch")
	// ErrNoEigengap indicates the eigengap is undefined: either
	// n_clusters == n_nodes (no eigenvalue past the cut) or the eigenvalue
	// at the cut is zero.
	ErrNoEigengap = errors.New("bridges: normalized eigengap undefined")
)

// DefaultIterations is the default number of refinement rounds per
// k-means invocation.
const DefaultIterations = 20
