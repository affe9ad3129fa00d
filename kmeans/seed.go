// Package kmeans - greedy probability-weighted seeding (k-means++ style).
//
// The seeding stage is a pure function of (data, k, options): it draws the
// first center uniformly, then repeatedly samples a small candidate pool
// with probability proportional to each point's current potential (squared
// distance to the nearest chosen center) and adopts the candidate that
// minimizes the resulting total potential.
//
// Design principles:
//   - Deterministic: a single RNG stream drives the first draw and every
//     candidate draw; no other randomness exists.
//   - Faithful sampling: candidates are drawn with replacement; duplicate
//     draws are kept, never deduplicated.
//   - Numeric safety: squared distances come from the expanded identity
//     ‖x‖² − 2⟨x,c⟩ + ‖c‖² and are clipped at zero against round-off.
package kmeans

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Seed selects k initial centers from the rows of X.
//
// Contracts:
//   - X non-nil with n ≥ 1 rows; 1 ≤ k ≤ n.
//   - opts.NLocalTrials ≥ 0; zero derives 2+⌊ln k⌋ at call time.
//
// Every returned center is a copy of some row of X.
//
// Complexity: O(k · trials · n · d) time, O(trials · n) extra space.
func Seed(X *mat.Dense, k int, opts Options) (*mat.Dense, error) {
	if X == nil {
		return nil, ErrTooFewPoints
	}
	n, _ := X.Dims()
	if k < 1 || opts.NLocalTrials < 0 {
		return nil, ErrBadOptions
	}
	if k > n {
		return nil, ErrTooFewPoints
	}

	trials := opts.NLocalTrials
	if trials == 0 {
		trials = defaultLocalTrials(k)
	}

	return seedWithRNG(X, k, trials, rngFromSeed(opts.Seed))
}

// defaultLocalTrials derives the candidate pool size from k: 2 + ⌊ln k⌋.
// A pure function of the call-time k; nothing is cached across calls.
//
// Complexity: O(1).
func defaultLocalTrials(k int) int {
	return 2 + int(math.Log(float64(k)))
}

// seedWithRNG runs the greedy seeding loop with an explicit RNG.
//
// Complexity: O(k · trials · n · d).
func seedWithRNG(X *mat.Dense, k, trials int, rng *rand.Rand) (*mat.Dense, error) {
	n, d := X.Dims()
	centers := mat.NewDense(k, d, nil)

	// Precompute ‖x_j‖² once; reused by every distance evaluation.
	sqNorms := make([]float64, n)
	var j int
	for j = 0; j < n; j++ {
		row := X.RawRowView(j)
		sqNorms[j] = floats.Dot(row, row)
	}

	// First center: uniform draw.
	centers.SetRow(0, X.RawRowView(rng.Intn(n)))

	// potential[j] = squared distance of point j to its nearest chosen center.
	potential := make([]float64, n)
	sqDistsTo(X, sqNorms, centers.RawRowView(0), potential)

	var (
		cum       = make([]float64, n)   // running cumulative potential
		candPots  = make([][]float64, 0) // per-trial would-be potentials
		candPot   []float64
		i, t      int
		u, total  float64
		cand      int
		candTotal float64
		bestTotal float64
		bestTrial int
	)
	for t = 0; t < trials; t++ {
		candPots = append(candPots, make([]float64, n))
	}

	for i = 1; i < k; i++ {
		// Cumulative distribution over the current potential.
		total = 0
		for j = 0; j < n; j++ {
			total += potential[j]
			cum[j] = total
		}

		bestTotal = math.Inf(1)
		bestTrial = -1
		for t = 0; t < trials; t++ {
			// Draw one candidate ∝ potential; duplicates across trials are
			// intentional and kept.
			u = rng.Float64() * total
			cand = sort.SearchFloat64s(cum, u)
			if cand == n {
				cand = n - 1
			}

			// Potential that would result from adopting this candidate.
			candPot = candPots[t]
			sqDistsTo(X, sqNorms, X.RawRowView(cand), candPot)
			candTotal = 0
			for j = 0; j < n; j++ {
				if candPot[j] > potential[j] {
					candPot[j] = potential[j]
				}
				candTotal += candPot[j]
			}

			if candTotal < bestTotal {
				bestTotal = candTotal
				bestTrial = t
				centers.SetRow(i, X.RawRowView(cand))
			}
		}

		copy(potential, candPots[bestTrial])
	}

	return centers, nil
}

// sqDistsTo fills out[j] with the squared Euclidean distance from row j of X
// to the vector c, using the expanded identity with a zero clip.
//
// Complexity: O(n · d).
func sqDistsTo(X *mat.Dense, sqNorms []float64, c []float64, out []float64) {
	cc := floats.Dot(c, c)
	n, _ := X.Dims()
	var (
		j int
		v float64
	)
	for j = 0; j < n; j++ {
		v = sqNorms[j] - 2*floats.Dot(X.RawRowView(j), c) + cc
		// Round-off can push tiny true-zero distances negative.
		if v < 0 {
			v = 0
		}
		out[j] = v
	}
}
