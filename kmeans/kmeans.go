// Package kmeans - Lloyd refinement and the composed Fit entry point.
//
// Refinement alternates exact nearest-center assignment (through a k-d tree
// index rebuilt per round) with mean recomputation. Assignment and update
// touch disjoint buffers; nothing is shared across calls.
package kmeans

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/knn"
)

// Refine runs nIter Lloyd rounds starting from the given centers and
// returns the refined centers together with the final assignment.
//
// Contracts:
//   - X and centers must share their column count.
//   - nIter ≥ 0; zero rounds returns a copy of centers with one
//     assignment pass.
//   - A center with no assigned points keeps its previous coordinates;
//     no occupancy constraint is enforced.
//
// The input centers matrix is not mutated.
//
// Complexity: O(nIter · n · d · log k) expected.
func Refine(X *mat.Dense, centers *mat.Dense, nIter int) (Result, error) {
	if X == nil || centers == nil {
		return Result{}, ErrDimensionMismatch
	}
	n, d := X.Dims()
	k, dc := centers.Dims()
	if dc != d {
		return Result{}, ErrDimensionMismatch
	}
	if nIter < 0 {
		return Result{}, ErrBadOptions
	}
	if k > n {
		return Result{}, ErrTooFewPoints
	}

	cur := mat.DenseCopyOf(centers)
	labels := make([]int, n)
	sums := mat.NewDense(k, d, nil)
	counts := make([]int, k)

	var (
		it, j, c int
		err      error
	)
	for it = 0; it < nIter; it++ {
		if err = assign(X, cur, labels); err != nil {
			return Result{}, err
		}

		sums.Zero()
		for c = 0; c < k; c++ {
			counts[c] = 0
		}
		for j = 0; j < n; j++ {
			c = labels[j]
			floats.Add(sums.RawRowView(c), X.RawRowView(j))
			counts[c]++
		}
		for c = 0; c < k; c++ {
			// Empty cluster: keep the previous center untouched.
			if counts[c] == 0 {
				continue
			}
			row := sums.RawRowView(c)
			floats.Scale(1/float64(counts[c]), row)
			cur.SetRow(c, row)
		}
	}

	// Final assignment against the final centers.
	if err = assign(X, cur, labels); err != nil {
		return Result{}, err
	}

	return Result{Centers: cur, Labels: labels}, nil
}

// Fit seeds k centers on X and refines them, returning centers and labels.
// See Seed and Refine for the individual stages.
//
// Complexity: seeding O(k · trials · n · d) + refinement O(NIter · n · d · log k).
func Fit(X *mat.Dense, k int, opts Options) (Result, error) {
	if opts.NIter < 0 {
		return Result{}, ErrBadOptions
	}
	centers, err := Seed(X, k, opts)
	if err != nil {
		return Result{}, err
	}

	return Refine(X, centers, opts.NIter)
}

// assign writes the index of the nearest center for every row of X into
// labels, querying a fresh exact index over the centers.
//
// Complexity: O(k log k) build + O(n log k) expected queries.
func assign(X *mat.Dense, centers *mat.Dense, labels []int) error {
	idx, err := knn.FromMatrix(centers)
	if err != nil {
		return err
	}
	n, _ := X.Dims()
	var (
		j  int
		id int
	)
	for j = 0; j < n; j++ {
		if id, _, err = idx.Nearest(X.RawRowView(j)); err != nil {
			return err
		}
		labels[j] = id
	}

	return nil
}
