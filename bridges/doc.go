// Package bridges orchestrates the Spectral Bridges pipeline: seeded
// k-means compression of the data into nodes, bridge-affinity construction
// between nodes, and spectral re-clustering of the node graph.
//
// 🚀 What is bridges?
//
//	The public face of the library. A Model is configured once, fitted on an
//	n×d matrix, and then answers:
//	  • Predict — nearest-node classification relabeled by final cluster
//	  • NormalizedEigengap — a scalar diagnostic of the chosen cluster count
//
// ✨ Key features:
//   - fail-fast sentinel errors at the API boundary; never partial results
//   - one seed reproduces the entire fitted model
//   - every Fit works on freshly allocated buffers; no state leaks between
//     independent fits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectralbridges/bridges"
//
//	model, err := bridges.New(3, 30, bridges.WithSeed(42))
//	if err != nil { ... }
//	if err = model.Fit(X); err != nil { ... }        // X: n×d, n ≥ 30
//	labels, err := model.Predict(Q)                  // Q: m×d
//	gap, err := model.NormalizedEigengap()           // larger ⇒ cleaner cut
//
// Pipeline sketch:
//
//	X ──kmeans(n_nodes)──▶ centroids+residuals ──affinity──▶ A ──spectral(k)──▶ groups
//
// Performance: dominated by the first k-means pass over the raw data;
// the spectral stage is O(n_nodes³), independent of the dataset size.
package bridges
