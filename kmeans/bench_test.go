package kmeans_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/kmeans"
)

func benchData(n, d int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	X := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}

	return X
}

// BenchmarkSeed measures greedy seeding on 2000×8 data, k=30.
func BenchmarkSeed(b *testing.B) {
	X := benchData(2000, 8, 1)
	opts := kmeans.DefaultOptions()
	opts.Seed = 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmeans.Seed(X, 30, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFit measures the full seed+refine run on 2000×8 data, k=30.
func BenchmarkFit(b *testing.B) {
	X := benchData(2000, 8, 1)
	opts := kmeans.DefaultOptions()
	opts.Seed = 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmeans.Fit(X, 30, opts); err != nil {
			b.Fatal(err)
		}
	}
}
