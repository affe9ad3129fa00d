// Package bridges - the Model: construction, validation and Fit.
//
// Fit drives the three-stage pipeline and stores only the fitted artifacts:
// per-cluster groups of node centroids and the ascending Laplacian
// eigenvalues. All intermediate buffers are freshly allocated per call.
//
// Design principles:
//   - Strict sentinels at the API boundary; no partial results on error.
//   - Deterministic under a fixed seed and fixed iteration counts.
//   - No shared mutable state across calls; refitting replaces the model
//     state atomically (only on success).
package bridges

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/affinity"
	"github.com/katalvlaran/spectralbridges/kmeans"
	"github.com/katalvlaran/spectralbridges/spectral"
)

// Model is a configured Spectral Bridges clusterer. Create with New,
// populate with Fit, then query with Predict and NormalizedEigengap.
//
// A Model is not safe for concurrent mutation; concurrent reads after a
// completed Fit are safe.
type Model struct {
	nClusters int
	nNodes    int
	cfg       config

	// Fitted state.
	fitted  bool
	dim     int
	groups  []*mat.Dense // per final cluster: node centroids (nil ⇒ empty group)
	eigvals []float64    // ascending normalized-Laplacian eigenvalues
}

// New returns a Model that partitions data into nClusters final clusters
// through nNodes intermediate local clusters.
//
// Contracts: 1 ≤ nClusters ≤ nNodes; WithM values must be positive;
// WithIterations and WithLocalTrials values must be non-negative.
// Violations yield ErrConfig.
//
// Complexity: O(len(opts)).
func New(nClusters, nNodes int, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, set := range opts {
		set(&cfg)
	}

	if nClusters < 1 || nClusters > nNodes {
		return nil, ErrConfig
	}
	if cfg.m <= 0 || cfg.nIter < 0 || cfg.nLocalTrials < 0 {
		return nil, ErrConfig
	}

	return &Model{nClusters: nClusters, nNodes: nNodes, cfg: cfg}, nil
}

// Fit runs the pipeline on X (n×d, one point per row):
//
//  1. kmeans.Fit with k = nNodes over the raw data,
//  2. affinity.Build over node centroids and recentered member residuals,
//  3. spectral.Fit with k = nClusters over the affinity matrix.
//
// On success the model holds, per final cluster, the group of node
// centroids assigned to it, plus the full ascending eigenvalue sequence.
//
// Errors: ErrConfig when nNodes exceeds the row count; affinity.ErrEmptyNode
// when a node ends up with zero members (lower nNodes); any sentinel from
// the underlying stages.
//
// Complexity: O(nNodes · trials · n · d) seeding + O(nIter · n · d · log nNodes)
// refinement + O(nNodes² · n · d) affinity + O(nNodes³) spectral.
func (m *Model) Fit(X *mat.Dense) error {
	if X == nil {
		return ErrDimensionMismatch
	}
	n, d := X.Dims()
	if m.nNodes > n {
		return ErrConfig
	}

	kopts := kmeans.Options{
		NIter:        m.cfg.nIter,
		NLocalTrials: m.cfg.nLocalTrials,
		Seed:         m.cfg.seed,
	}

	// Stage 1: compress the data into nNodes local clusters.
	km, err := kmeans.Fit(X, m.nNodes, kopts)
	if err != nil {
		return err
	}

	// Per-node member residuals, recentered on their own centroid.
	residuals := nodeResiduals(X, km)

	// Stage 2: bridge affinities between nodes.
	aff, err := affinity.Build(km.Centers, residuals, affinity.Options{M: m.cfg.m})
	if err != nil {
		return err
	}

	// Stage 3: spectral re-clustering of the node graph.
	sp, err := spectral.Fit(aff, m.nClusters, kopts)
	if err != nil {
		return err
	}

	// Group node centroids by final cluster, node order preserved.
	groups := make([]*mat.Dense, m.nClusters)
	var c, i, r int
	for c = 0; c < m.nClusters; c++ {
		size := 0
		for i = 0; i < m.nNodes; i++ {
			if sp.Labels[i] == c {
				size++
			}
		}
		if size == 0 {
			continue
		}
		g := mat.NewDense(size, d, nil)
		r = 0
		for i = 0; i < m.nNodes; i++ {
			if sp.Labels[i] == c {
				g.SetRow(r, km.Centers.RawRowView(i))
				r++
			}
		}
		groups[c] = g
	}

	m.fitted = true
	m.dim = d
	m.groups = groups
	m.eigvals = sp.Eigvals

	return nil
}

// nodeResiduals splits the rows of X by node label and recenters each
// member on its node centroid. A node with no members yields a nil entry,
// which affinity.Build rejects with ErrEmptyNode.
//
// Complexity: O(n · d).
func nodeResiduals(X *mat.Dense, km kmeans.Result) []*mat.Dense {
	n, d := X.Dims()
	k, _ := km.Centers.Dims()

	counts := make([]int, k)
	var j int
	for j = 0; j < n; j++ {
		counts[km.Labels[j]]++
	}

	residuals := make([]*mat.Dense, k)
	next := make([]int, k)
	var c int
	for c = 0; c < k; c++ {
		if counts[c] > 0 {
			residuals[c] = mat.NewDense(counts[c], d, nil)
		}
	}
	for j = 0; j < n; j++ {
		c = km.Labels[j]
		row := residuals[c].RawRowView(next[c])
		floats.SubTo(row, X.RawRowView(j), km.Centers.RawRowView(c))
		next[c]++
	}

	return residuals
}

// Fitted reports whether Fit has completed successfully.
func (m *Model) Fitted() bool { return m.fitted }

// NumClusters returns the configured final cluster count.
func (m *Model) NumClusters() int { return m.nClusters }

// NumNodes returns the configured intermediate node count.
func (m *Model) NumNodes() int { return m.nNodes }

// ClusterCenters returns, per final cluster, the group of node centroids
// assigned to it (nil for an empty group). The groups partition all nNodes
// centroids. Matrices are defensive copies.
//
// Errors: ErrNotFitted before Fit.
func (m *Model) ClusterCenters() ([]*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([]*mat.Dense, len(m.groups))
	for i, g := range m.groups {
		if g != nil {
			out[i] = mat.DenseCopyOf(g)
		}
	}

	return out, nil
}

// Eigenvalues returns the full ascending sequence of normalized-Laplacian
// eigenvalues retained from the spectral stage, as a copy.
//
// Errors: ErrNotFitted before Fit.
func (m *Model) Eigenvalues() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(m.eigvals))
	copy(out, m.eigvals)

	return out, nil
}
