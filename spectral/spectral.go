// Package spectral - normalized Laplacian embedding and re-clustering.
//
// Design principles:
//   - Deterministic: the only randomness is the seed routed into kmeans.
//   - Strict sentinels; eigendecomposition failure is surfaced, not retried.
//   - Inputs are never mutated; every call allocates fresh buffers.
package spectral

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/kmeans"
)

var (
	// ErrTooManyClusters indicates k exceeds the affinity matrix order.
	ErrTooManyClusters = errors.New("spectral: cluster count exceeds node count")
	// ErrBadClusterCount indicates a non-positive cluster count.
	ErrBadClusterCount = errors.New("spectral: cluster count must be positive")
	// ErrZeroDegree indicates an affinity row whose off-diagonal entries sum
	// to zero; the normalized Laplacian is undefined for isolated vertices.
	ErrZeroDegree = errors.New("spectral: zero-degree node in affinity matrix")
	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")
)

// Result holds the spectral clustering outcome.
type Result struct {
	// Labels maps each node to a final cluster index in [0, k).
	Labels []int

	// Eigvals is the full ascending sequence of Laplacian eigenvalues.
	Eigvals []float64
}

// Laplacian builds the symmetric normalized graph Laplacian
// L = I − D^(−1/2) A D^(−1/2) of the affinity matrix a. Self-loops are
// discarded: D is the diagonal of off-diagonal row sums and diag(L) is
// exactly 1.
//
// Errors: ErrZeroDegree when the off-diagonal part of a row sums to zero.
//
// Complexity: O(n²) time and space.
func Laplacian(a *mat.SymDense) (*mat.SymDense, error) {
	if a == nil {
		return nil, ErrZeroDegree
	}
	n := a.SymmetricDim()

	invSqrt := make([]float64, n)
	var (
		i, j int
		deg  float64
	)
	for i = 0; i < n; i++ {
		deg = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			deg += a.At(i, j)
		}
		if deg <= 0 {
			return nil, ErrZeroDegree
		}
		invSqrt[i] = 1 / math.Sqrt(deg)
	}

	l := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		l.SetSym(i, i, 1)
		for j = i + 1; j < n; j++ {
			l.SetSym(i, j, -a.At(i, j)*invSqrt[i]*invSqrt[j])
		}
	}

	return l, nil
}

// Fit clusters the n nodes of the affinity matrix a into k groups.
//
// Stages:
//  1. L = Laplacian(a); full eigendecomposition (mat.EigenSym returns
//     eigenvalues already sorted ascending).
//  2. Embedding: the eigenvector columns of the k smallest eigenvalues,
//     each row L2-normalized.
//  3. kmeans.Fit on the embedding with the provided options.
//
// Contracts: 1 ≤ k ≤ n.
//
// Complexity: O(n³) time, O(n²) space.
func Fit(a *mat.SymDense, k int, opts kmeans.Options) (Result, error) {
	if a == nil {
		return Result{}, ErrZeroDegree
	}
	n := a.SymmetricDim()
	if k < 1 {
		return Result{}, ErrBadClusterCount
	}
	if k > n {
		return Result{}, ErrTooManyClusters
	}

	l, err := Laplacian(a)
	if err != nil {
		return Result{}, err
	}

	var es mat.EigenSym
	if !es.Factorize(l, true) {
		return Result{}, ErrEigenFailed
	}
	eigvals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Embedding: leading k eigenvector columns, rows L2-normalized.
	emb := mat.NewDense(n, k, nil)
	var (
		i, j int
		nrm  float64
	)
	for i = 0; i < n; i++ {
		row := emb.RawRowView(i)
		for j = 0; j < k; j++ {
			row[j] = vecs.At(i, j)
		}
		nrm = floats.Norm(row, 2)
		if nrm > 0 {
			floats.Scale(1/nrm, row)
		}
	}

	km, err := kmeans.Fit(emb, k, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{Labels: km.Labels, Eigvals: eigvals}, nil
}
