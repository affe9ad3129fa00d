// Package kmeans implements seeded k-means clustering: greedy
// probability-weighted seeding followed by Lloyd refinement.
//
// 🚀 What is kmeans?
//
//	The workhorse of the Spectral Bridges pipeline, invoked twice:
//	  • over the raw data, to compress n points into n_nodes local clusters
//	  • over the spectral embedding, to cut the node graph into final groups
//
// ✨ Key features:
//   - greedy k-means++ seeding: candidates drawn with probability
//     proportional to their current potential, best candidate adopted
//   - candidate pool defaults to 2+⌊ln k⌋, derived at call time
//   - refinement assigns through an exact k-d tree nearest-neighbour index
//   - Seed and Refine are independently callable stages; Fit composes them
//   - one seed reproduces the whole run, bit for bit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectralbridges/kmeans"
//
//	opts := kmeans.DefaultOptions() // 20 rounds, derived trials, seed 0
//	opts.Seed = 42
//	res, err := kmeans.Fit(X, 30, opts)
//	// res.Centers: 30×d, res.Labels: one cluster index per row of X
//
// Performance:
//
//   - Seeding:    O(k · trials · n · d)
//   - Refinement: O(iter · n · d · log k) expected
//
// Empty clusters are legal: a center that attracts no points keeps its
// previous coordinates for the next round.
package kmeans
