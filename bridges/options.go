// Package bridges - functional configuration for Model construction.
//
// Options are applied over documented defaults, last-writer-wins; New
// validates the resolved configuration and returns ErrConfig on nonsense
// values rather than panicking.
package bridges

import "github.com/katalvlaran/spectralbridges/affinity"

// Option mutates the model configuration during New.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	m            float64 // affinity contrast scale; affinity.DefaultM
	nIter        int     // refinement rounds per k-means call; DefaultIterations
	nLocalTrials int     // seeding candidate pool; 0 ⇒ derived 2+⌊ln k⌋ per call
	seed         int64   // RNG seed; 0 ⇒ fixed default stream
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		m:     affinity.DefaultM,
		nIter: DefaultIterations,
	}
}

// WithM sets the affinity contrast scale M. Must be positive; M > 1 is the
// intended regime (the 90th/10th percentile affinity ratio is pinned to M).
func WithM(m float64) Option {
	return func(c *config) { c.m = m }
}

// WithIterations sets the number of refinement rounds per k-means call.
func WithIterations(n int) Option {
	return func(c *config) { c.nIter = n }
}

// WithLocalTrials sets the seeding candidate pool size. Zero restores the
// default, derived as 2+⌊ln k⌋ from each call's own k.
func WithLocalTrials(n int) Option {
	return func(c *config) { c.nLocalTrials = n }
}

// WithSeed fixes the RNG seed for reproducible fits. The same seed drives
// both the raw-data and the embedding k-means, as in the reference design.
// Zero selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}
