package bridges_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// gaussianBlobs draws perBlob points around every center with the given
// per-axis standard deviation, in blob order, using a fixed seed.
func gaussianBlobs(centers [][]float64, perBlob int, sigma float64, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	d := len(centers[0])
	out := mat.NewDense(len(centers)*perBlob, d, nil)
	row := 0
	for _, c := range centers {
		for p := 0; p < perBlob; p++ {
			for j := 0; j < d; j++ {
				out.Set(row, j, c[j]+sigma*rng.NormFloat64())
			}
			row++
		}
	}

	return out
}

// agreement returns the fraction of labels matching the true blob
// membership under the best per-blob majority relabeling, and whether that
// relabeling is a bijection (distinct predicted labels per blob).
func agreement(labels []int, nBlobs, perBlob, nClusters int) (float64, bool) {
	votes := make([][]int, nBlobs)
	for b := range votes {
		votes[b] = make([]int, nClusters)
		for p := 0; p < perBlob; p++ {
			votes[b][labels[b*perBlob+p]]++
		}
	}

	matched := 0
	assigned := make(map[int]bool, nBlobs)
	bijective := true
	for b := 0; b < nBlobs; b++ {
		best := 0
		for c := 1; c < nClusters; c++ {
			if votes[b][c] > votes[b][best] {
				best = c
			}
		}
		matched += votes[b][best]
		if assigned[best] {
			bijective = false
		}
		assigned[best] = true
	}

	return float64(matched) / float64(nBlobs*perBlob), bijective
}
