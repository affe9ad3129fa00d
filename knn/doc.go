// Package knn provides an exact Euclidean nearest-neighbour index over
// fixed-dimension points, backed by a k-d tree.
//
// 🚀 What is knn?
//
//	A thin, deterministic wrapper around gonum's spatial/kdtree that adds
//	the two things the clustering pipeline needs:
//	  • stable integer identifiers travelling with every point
//	  • a matrix-row ingestion path for bulk (balanced) construction
//
// ✨ Key features:
//   - exact search - no approximation, no recall parameter
//   - incremental Add plus balanced FromMatrix bulk construction
//   - Nearest (1-NN) and KNearest (k-NN) Euclidean queries
//   - squared distances throughout; no square roots on the hot path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectralbridges/knn"
//
//	idx, err := knn.FromMatrix(centers) // centers: *mat.Dense, one point per row
//	id, sq, err := idx.Nearest(query)   // index of the closest row + squared distance
//
// Performance:
//
//   - FromMatrix: O(n log n) balanced build
//   - Nearest:    O(log n) expected on low-dimensional data
//
// Queries are read-only and safe for concurrent use; Add is not.
package knn
