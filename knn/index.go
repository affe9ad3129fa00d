// Package knn - exact Euclidean nearest-neighbour index.
//
// This file implements Index on top of gonum's spatial/kdtree. The tree
// stores id-carrying points so that query results map back to the caller's
// row numbering (insertion order for Add, row order for FromMatrix).
//
// Design principles:
//   - Deterministic: no randomness; equal inputs build equal trees.
//   - Strict sentinels: only errors declared in this package; no fmt.Errorf.
//   - Squared distances: comparisons never need the square root.
package knn

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

var (
	// ErrBadDimension indicates a non-positive point dimensionality.
	ErrBadDimension = errors.New("knn: dimension must be positive")
	// ErrDimensionMismatch indicates a point or query of the wrong length.
	ErrDimensionMismatch = errors.New("knn: point dimension mismatch")
	// ErrEmptyIndex indicates a query against an index with no points.
	ErrEmptyIndex = errors.New("knn: index holds no points")
	// ErrBadK indicates a non-positive neighbour count.
	ErrBadK = errors.New("knn: k must be positive")
)

// Neighbor is one k-NN query result: the point's identifier and its
// squared Euclidean distance to the query.
type Neighbor struct {
	ID     int
	SqDist float64
}

// Index is an exact nearest-neighbour index over points of a fixed
// dimension. Identifiers are assigned densely: FromMatrix uses row numbers,
// Add appends after the highest existing identifier.
type Index struct {
	dim  int
	n    int
	tree *kdtree.Tree
}

// NewIndex returns an empty index for dim-dimensional points.
//
// Complexity: O(1).
func NewIndex(dim int) (*Index, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}

	return &Index{dim: dim, tree: kdtree.New(pointSet(nil), false)}, nil
}

// FromMatrix builds a balanced index over the rows of m; row i gets
// identifier i. Rows are copied, so the caller may reuse m afterwards.
//
// Complexity: O(n log n) time, O(n·d) space.
func FromMatrix(m *mat.Dense) (*Index, error) {
	if m == nil {
		return nil, ErrDimensionMismatch
	}
	r, c := m.Dims()
	if c < 1 {
		return nil, ErrBadDimension
	}

	ps := make(pointSet, r)
	var i int
	for i = 0; i < r; i++ {
		vec := make([]float64, c)
		copy(vec, m.RawRowView(i))
		ps[i] = point{vec: vec, id: i}
	}

	return &Index{dim: c, n: r, tree: kdtree.New(ps, false)}, nil
}

// Add inserts one point and assigns it the next identifier, starting at
// Len(). The vector is copied.
//
// Note: repeated Add does not rebalance; prefer FromMatrix for bulk loads.
//
// Complexity: O(log n) expected per insertion.
func (ix *Index) Add(vec []float64) error {
	if len(vec) != ix.dim {
		return ErrDimensionMismatch
	}
	cp := make([]float64, ix.dim)
	copy(cp, vec)
	ix.tree.Insert(point{vec: cp, id: ix.n}, false)
	ix.n++

	return nil
}

// Len reports the number of indexed points.
func (ix *Index) Len() int { return ix.n }

// Nearest returns the identifier of the point closest to q in Euclidean
// distance, together with the squared distance.
//
// Complexity: O(log n) expected.
func (ix *Index) Nearest(q []float64) (int, float64, error) {
	if len(q) != ix.dim {
		return 0, 0, ErrDimensionMismatch
	}
	if ix.n == 0 {
		return 0, 0, ErrEmptyIndex
	}

	got, dist := ix.tree.Nearest(point{vec: q, id: -1})

	return got.(point).id, dist, nil
}

// KNearest returns up to k neighbours of q ordered by ascending squared
// distance (ties broken by ascending identifier). Fewer than k results are
// returned when the index holds fewer points.
//
// Complexity: O(k log k + log n) expected.
func (ix *Index) KNearest(q []float64, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	if len(q) != ix.dim {
		return nil, ErrDimensionMismatch
	}
	if ix.n == 0 {
		return nil, ErrEmptyIndex
	}
	if k > ix.n {
		k = ix.n
	}

	keeper := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keeper, point{vec: q, id: -1})

	out := make([]Neighbor, 0, k)
	var cd kdtree.ComparableDist
	for _, cd = range keeper.Heap {
		// The keeper pads with placeholder entries until it fills up.
		if cd.Comparable == nil {
			continue
		}
		out = append(out, Neighbor{ID: cd.Comparable.(point).id, SqDist: cd.Dist})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SqDist != out[j].SqDist {
			return out[i].SqDist < out[j].SqDist
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}
