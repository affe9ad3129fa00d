// Package knn - kdtree.Comparable implementation carrying point identifiers.
//
// This is the canonical custom-type pattern for gonum's spatial/kdtree:
// point satisfies kdtree.Comparable, pointSet satisfies kdtree.Interface,
// and plane provides the per-dimension sorting used by tree construction.
package knn

import "gonum.org/v1/gonum/spatial/kdtree"

// point is a vector with a stable identifier.
type point struct {
	vec []float64
	id  int
}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.vec[d] - c.(point).vec[d]
}

// Dims reports the point dimensionality.
func (p point) Dims() int { return len(p.vec) }

// Distance returns the squared Euclidean distance between p and c.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var (
		sum float64
		dv  float64
		i   int
	)
	for i = range p.vec {
		dv = p.vec[i] - q.vec[i]
		sum += dv * dv
	}

	return sum
}

// pointSet is a collection of points satisfying kdtree.Interface.
type pointSet []point

func (s pointSet) Index(i int) kdtree.Comparable { return s[i] }

func (s pointSet) Len() int { return len(s) }

func (s pointSet) Pivot(d kdtree.Dim) int { return plane{pointSet: s, Dim: d}.Pivot() }

func (s pointSet) Slice(start, end int) kdtree.Interface { return s[start:end] }

// plane sorts a pointSet along a single dimension.
type plane struct {
	kdtree.Dim
	pointSet
}

func (p plane) Less(i, j int) bool { return p.pointSet[i].vec[p.Dim] < p.pointSet[j].vec[p.Dim] }

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.pointSet = p.pointSet[start:end]

	return p
}

func (p plane) Swap(i, j int) {
	p.pointSet[i], p.pointSet[j] = p.pointSet[j], p.pointSet[i]
}
