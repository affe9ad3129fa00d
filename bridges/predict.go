// Package bridges - post-fit queries: Predict and NormalizedEigengap.
package bridges

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/knn"
)

// Predict assigns each row of Q (m×d) a final cluster index in
// [0, NumClusters()): nearest node centroid over all nodes, relabeled to
// the centroid's owning cluster via cumulative group offsets.
//
// Errors: ErrNotFitted before Fit; ErrDimensionMismatch when Q's column
// count differs from the fit-time dimensionality.
//
// Complexity: O(nNodes log nNodes) index build + O(m log nNodes) expected
// queries.
func (m *Model) Predict(Q *mat.Dense) ([]int, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if Q == nil {
		return nil, ErrDimensionMismatch
	}
	rows, d := Q.Dims()
	if d != m.dim {
		return nil, ErrDimensionMismatch
	}

	// Flat index over the concatenation of all group centroids, ordered by
	// final-cluster group; cutoffs[c] = number of centroids in groups ≤ c.
	idx, err := knn.NewIndex(m.dim)
	if err != nil {
		return nil, err
	}
	cutoffs := make([]int, len(m.groups))
	var (
		c, r, total int
		g           *mat.Dense
	)
	for c = 0; c < len(m.groups); c++ {
		if g = m.groups[c]; g != nil {
			size, _ := g.Dims()
			for r = 0; r < size; r++ {
				if err = idx.Add(g.RawRowView(r)); err != nil {
					return nil, err
				}
			}
			total += size
		}
		cutoffs[c] = total
	}

	labels := make([]int, rows)
	var (
		j, winner int
	)
	for j = 0; j < rows; j++ {
		if winner, _, err = idx.Nearest(Q.RawRowView(j)); err != nil {
			return nil, err
		}
		// First group whose cutoff exceeds the flat winner index.
		labels[j] = sort.SearchInts(cutoffs, winner+1)
	}

	return labels, nil
}

// NormalizedEigengap returns (λ[k] − λ[k−1]) / λ[k] for k = NumClusters():
// the spectral gap just past the chosen cut, normalized by the eigenvalue
// at the cut. Larger values indicate a cleaner split at this cluster count.
//
// Errors: ErrNotFitted before Fit; ErrNoEigengap when nClusters == nNodes
// (λ[k] does not exist) or when λ[k] is zero (ratio undefined).
//
// Complexity: O(1).
func (m *Model) NormalizedEigengap() (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	k := m.nClusters
	if k >= len(m.eigvals) {
		return 0, ErrNoEigengap
	}
	if m.eigvals[k] == 0 {
		return 0, ErrNoEigengap
	}

	return (m.eigvals[k] - m.eigvals[k-1]) / m.eigvals[k], nil
}
