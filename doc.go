// Package spectralbridges implements the Spectral Bridges clustering
// algorithm — centroid compression, bridge-affinity graph construction,
// and spectral re-clustering, composed into one scalable pipeline.
//
// 🚀 What is spectralbridges?
//
//	A clustering library for data with non-convex, graph-like structure:
//		• Compress n points into a small set of local "nodes" (seeded k-means)
//		• Measure how strongly each node bridges toward every other node
//		• Re-cluster the node graph spectrally (normalized Laplacian)
//		• Predict by nearest node centroid, relabeled by final cluster
//
// ✨ Why choose spectralbridges?
//
//   - Deterministic – one seed reproduces the whole pipeline bit-for-bit
//   - Fail-fast – sentinel errors at the API boundary, never partial results
//   - Small surface – five focused packages, library-level API only
//   - Pure computation – no goroutine leaks, no global state, no logging
//
// Everything is organized under five subpackages:
//
//	kmeans/   — probability-weighted greedy seeding + Lloyd refinement
//	affinity/ — bridge-affinity matrix between node centroids
//	spectral/ — normalized Laplacian embedding + re-clustering
//	knn/      — exact Euclidean nearest-neighbour index (k-d tree)
//	bridges/  — the orchestrating Model: Fit / Predict / NormalizedEigengap
//
// Quick ASCII sketch of the pipeline:
//
//	X (n×d) ──kmeans──▶ nodes ──affinity──▶ A (n_nodes²) ──spectral──▶ labels
//
// Dive into bridges/doc.go for the end-to-end usage example.
//
//	go get github.com/katalvlaran/spectralbridges/bridges
package spectralbridges
