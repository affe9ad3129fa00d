// Package affinity builds the bridge-affinity matrix between local cluster
// nodes: a symmetric, strictly positive similarity derived from how strongly
// each node's members project toward every other node.
//
// 🚀 What is a bridge affinity?
//
//	For nodes i and j, take the segment from centroid i to centroid j.
//	Members of node i whose recentered positions lean along that segment
//	"bridge" toward j; members leaning away contribute nothing. Summing
//	squared normalized projections in both directions and averaging by the
//	combined member count yields a similarity that captures density between
//	clusters rather than mere centroid distance.
//
// ✨ Key features:
//   - directional projections with a hard zero clip on the far side
//   - exact symmetry by construction (the result is a *mat.SymDense)
//   - percentile contrast rescale: the ratio between the 90th- and
//     10th-percentile affinities is pinned to the configured M, so a few
//     extreme raw values cannot dominate the spectral step
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectralbridges/affinity"
//
//	a, err := affinity.Build(centers, residuals, affinity.DefaultOptions())
//
// Performance:
//
//   - O(n_nodes² · members · d) time, O(n_nodes²) space.
package affinity
