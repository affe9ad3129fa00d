// Package spectral clusters an affinity graph through its normalized
// Laplacian: full symmetric eigendecomposition, a row-normalized embedding
// from the leading eigenvectors, and seeded k-means on the embedding.
//
// 🚀 What is the spectral step?
//
//	Given the n_nodes×n_nodes bridge-affinity matrix A, build
//	L = I − D^(−1/2) A D^(−1/2), take the eigenvectors of the k smallest
//	eigenvalues as an embedding of the nodes, and cluster the (L2-normalized)
//	embedding rows. Eigenvalues of L live in [0, 2]; k values near zero
//	signal k strongly affine groups.
//
// ✨ Key features:
//   - exact full eigendecomposition via gonum's mat.EigenSym
//   - eigenvalues returned ascending, retained for the eigengap diagnostic
//   - re-uses the same seeded k-means component as the raw-data pass
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectralbridges/spectral"
//
//	res, err := spectral.Fit(a, 3, kmeans.DefaultOptions())
//	// res.Labels: node → cluster, res.Eigvals: all n eigenvalues ascending
//
// Performance:
//
//   - O(n³) eigendecomposition; n here is n_nodes, not the dataset size.
package spectral
