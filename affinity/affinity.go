// Package affinity - bridge-affinity construction between cluster nodes.
//
// Pipeline per Build call:
//  1. raw[i][j]   — sum over node i's residuals of clipped, normalized
//     squared projections onto the segment centroid_i → centroid_j.
//  2. symmetrize  — sqrt((raw[i][j]+raw[j][i]) / (count_i+count_j)).
//  3. recenter    — subtract half the global maximum.
//  4. rescale     — exp(gamma · a) with gamma = ln(M)/(q90−q10), pinning the
//     90th/10th percentile ratio of the result to exactly M.
//
// Design principles:
//   - Deterministic, side-effect free; inputs are never mutated.
//   - Strict sentinels; the q90==q10 degeneracy fails fast (ErrFlatSpread).
//   - Silent numeric safeguards (zero-length segment distance fixed to 1,
//     negative projections clipped to zero) keep every entry finite.
package affinity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Build computes the symmetric bridge-affinity matrix between the n nodes
// described by centers (n×d, one centroid per row) and residuals
// (residuals[i]: members of node i minus centroid i, count_i×d).
//
// Contracts:
//   - len(residuals) == n; every residuals[i] is non-nil with ≥ 1 row and
//     d columns (an empty node is a degenerate model: ErrEmptyNode).
//   - opts.M > 0.
//
// The result is strictly positive and exactly symmetric.
//
// Complexity: O(n² · members · d) time, O(n²) space.
func Build(centers *mat.Dense, residuals []*mat.Dense, opts Options) (*mat.SymDense, error) {
	if opts.M <= 0 {
		return nil, ErrBadContrast
	}
	if centers == nil {
		return nil, ErrDimensionMismatch
	}
	n, d := centers.Dims()
	if len(residuals) != n {
		return nil, ErrDimensionMismatch
	}

	counts := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		if residuals[i] == nil {
			return nil, ErrEmptyNode
		}
		ri, rd := residuals[i].Dims()
		if ri == 0 {
			return nil, ErrEmptyNode
		}
		if rd != d {
			return nil, ErrDimensionMismatch
		}
		counts[i] = ri
	}

	raw := rawAffinities(centers, residuals)

	// Symmetrize with member-count averaging.
	sym := mat.NewSymDense(n, nil)
	var j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, math.Sqrt((raw[i][j]+raw[j][i])/float64(counts[i]+counts[j])))
		}
	}

	if err := rescale(sym, opts.M); err != nil {
		return nil, err
	}

	return sym, nil
}

// rawAffinities computes the directional raw matrix: raw[i][j] is the sum of
// squared clipped projections of node i's residuals onto the segment from
// centroid i to centroid j, each projection normalized by the squared
// segment length.
//
// Complexity: O(n² · members · d).
func rawAffinities(centers *mat.Dense, residuals []*mat.Dense) [][]float64 {
	n, d := centers.Dims()
	raw := make([][]float64, n)
	seg := make([]float64, d)

	var (
		i, j, r  int
		dist, p  float64
		members  int
		resid    *mat.Dense
		rowTotal float64
	)
	for i = 0; i < n; i++ {
		raw[i] = make([]float64, n)
		resid = residuals[i]
		members, _ = resid.Dims()
		for j = 0; j < n; j++ {
			floats.SubTo(seg, centers.RawRowView(j), centers.RawRowView(i))
			dist = floats.Dot(seg, seg)
			// Zero-length segments (the self-pair, or two nodes sharing a
			// centroid) get distance 1: the projections onto a zero segment
			// vanish anyway, this only avoids a division by zero.
			if dist == 0 {
				dist = 1
			}

			rowTotal = 0
			for r = 0; r < members; r++ {
				p = floats.Dot(resid.RawRowView(r), seg) / dist
				// A member contributes only on the side facing node j.
				if p < 0 {
					p = 0
				}
				rowTotal += p * p
			}
			raw[i][j] = rowTotal
		}
	}

	return raw
}

// rescale recenters a by half its global maximum and applies the
// exponential percentile contrast: gamma = ln(M)/(q90−q10), a ← exp(gamma·a).
//
// Errors: ErrFlatSpread when q90 == q10 (constant matrix).
//
// Complexity: O(n² log n).
func rescale(a *mat.SymDense, m float64) error {
	n := a.SymmetricDim()

	// Global max over the full matrix (diagonal included, halves counted
	// twice — matching the percentile population below).
	flat := make([]float64, 0, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			flat = append(flat, a.At(i, j))
		}
	}
	half := 0.5 * floats.Max(flat)

	for i = range flat {
		flat[i] -= half
	}
	sort.Float64s(flat)
	q10 := quantileLinear(0.10, flat)
	q90 := quantileLinear(0.90, flat)
	if q90 == q10 {
		return ErrFlatSpread
	}
	gamma := math.Log(m) / (q90 - q10)

	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = a.At(i, j) - half
			a.SetSym(i, j, math.Exp(gamma*v))
		}
	}

	return nil
}

// quantileLinear returns the p-th quantile of the ascending slice using
// linear interpolation over the rank position p·(n−1), the Hyndman-Fan
// type 7 estimator. Gamma is the pipeline's main numerics knob, so the
// estimator is pinned rather than left to a library default.
func quantileLinear(p float64, sorted []float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
