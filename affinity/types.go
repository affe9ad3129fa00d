package affinity

import "errors"

var (
	// ErrBadContrast indicates a non-positive contrast parameter M.
	ErrBadContrast = errors.New("affinity: contrast M must be positive")
	// ErrDimensionMismatch indicates centers/residuals of inconsistent shape.
	ErrDimensionMismatch = errors.New("affinity: dimension mismatch")
	// ErrEmptyNode indicates a node with no member residuals.
	ErrEmptyNode = errors.New("affinity: node has no members")
	// ErrFlatSpread indicates a constant affinity matrix: the 10th and 90th
	// percentiles coincide and the contrast rescale is undefined.
	ErrFlatSpread = errors.New("affinity: percentile spread is zero")
)

// DefaultM is the default contrast scale: the rescaled matrix's
// 90th-percentile entry is DefaultM times its 10th-percentile entry.
const DefaultM = 1e4

// Options configures the affinity build.
//
// Fields:
//   - M — contrast scale, must be positive. Values in (0,1] invert the
//     contrast (gamma ≤ 0) and are legal but rarely useful; M > 1 is the
//     intended regime.
type Options struct {
	M float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{M: DefaultM}
}
