package kmeans

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints indicates k exceeds the number of available points.
	ErrTooFewPoints = errors.New("kmeans: k exceeds number of points")
	// ErrBadOptions indicates k < 1 or negative iteration/trial counts.
	ErrBadOptions = errors.New("kmeans: invalid options")
	// ErrDimensionMismatch indicates centers and data of differing widths.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")
)

// DefaultNIter is the default number of Lloyd refinement rounds.
const DefaultNIter = 20

// Options configures one clustering run.
//
// Fields:
//   - NIter        — Lloyd rounds; 0 skips refinement entirely.
//   - NLocalTrials — seeding candidate pool size; 0 derives 2+⌊ln k⌋ from
//     the k of the call (never stored back, so independent calls with
//     different k each get their own derived default).
//   - Seed         — RNG seed; 0 selects the fixed default stream.
type Options struct {
	NIter        int
	NLocalTrials int
	Seed         int64
}

// DefaultOptions returns the documented defaults: DefaultNIter rounds,
// derived candidate pool, default seed stream.
func DefaultOptions() Options {
	return Options{NIter: DefaultNIter}
}

// Result holds the outcome of a clustering run.
type Result struct {
	// Centers is the k×d matrix of final cluster centers.
	Centers *mat.Dense

	// Labels assigns each input row the index of its nearest center.
	Labels []int
}
