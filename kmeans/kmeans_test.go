package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/kmeans"
)

// blobs returns rows drawn from len(centers) spherical Gaussians with the
// given per-axis standard deviation, perBlob points each, in blob order.
func blobs(centers [][]float64, perBlob int, sigma float64, seed int64) *mat.Dense {
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

// TestSeed_Validation verifies the configuration error contract.
func TestSeed_Validation(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{0, 0, 1, 1, 2, 2})

	_, err := kmeans.Seed(X, 4, kmeans.DefaultOptions())
	assert.ErrorIs(t, err, kmeans.ErrTooFewPoints, "k > n must error")

	_, err = kmeans.Seed(X, 0, kmeans.DefaultOptions())
	assert.ErrorIs(t, err, kmeans.ErrBadOptions, "k < 1 must error")

	opts := kmeans.DefaultOptions()
	opts.NLocalTrials = -1
	_, err = kmeans.Seed(X, 2, opts)
	assert.ErrorIs(t, err, kmeans.ErrBadOptions, "negative trials must error")

	_, err = kmeans.Seed(nil, 1, kmeans.DefaultOptions())
	assert.ErrorIs(t, err, kmeans.ErrTooFewPoints, "nil data must error")
}

// TestSeed_CentersAreDataPoints verifies every seeded center is an input row.
func TestSeed_CentersAreDataPoints(t *testing.T) {
	X := blobs([][]float64{{0, 0}, {50, 0}, {0, 50}}, 20, 1.0, 11)
	opts := kmeans.DefaultOptions()
	opts.Seed = 5

	centers, err := kmeans.Seed(X, 6, opts)
	require.NoError(t, err)

	n, _ := X.Dims()
	k, _ := centers.Dims()
	require.Equal(t, 6, k)
	for c := 0; c < k; c++ {
		found := false
		for i := 0; i < n && !found; i++ {
			found = mat.EqualApprox(centers.RowView(c), X.RowView(i), 0)
		}
		assert.True(t, found, "center %d must be a data point", c)
	}
}

// TestSeed_Deterministic verifies identical (X, k, seed) reproduce identical
// centers and a different seed moves at least one of them.
func TestSeed_Deterministic(t *testing.T) {
	X := blobs([][]float64{{0, 0}, {30, 30}}, 40, 2.0, 3)
	opts := kmeans.DefaultOptions()
	opts.Seed = 99

	a, err := kmeans.Seed(X, 5, opts)
	require.NoError(t, err)
	b, err := kmeans.Seed(X, 5, opts)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b), "same seed must reproduce identical centers")

	opts.Seed = 100
	c, err := kmeans.Seed(X, 5, opts)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, c), "different seed should move the seeding")
}

// TestRefine_EmptyClusterKeepsCenter verifies that a center attracting no
// points keeps its previous coordinates.
func TestRefine_EmptyClusterKeepsCenter(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{0, 0, 1, 0})
	centers := mat.NewDense(2, 2, []float64{0.5, 0, 100, 100})

	res, err := kmeans.Refine(X, centers, 3)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, res.Centers.At(1, 0), 0, "empty center x untouched")
	assert.InDelta(t, 100.0, res.Centers.At(1, 1), 0, "empty center y untouched")
	assert.Equal(t, []int{0, 0}, res.Labels)
	// The occupied center converged to the member mean.
	assert.InDelta(t, 0.5, res.Centers.At(0, 0), 1e-12)
}

// TestRefine_InputCentersNotMutated verifies Refine copies its seed centers.
func TestRefine_InputCentersNotMutated(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
	centers := mat.NewDense(2, 1, []float64{0, 10})
	orig := mat.DenseCopyOf(centers)

	_, err := kmeans.Refine(X, centers, 5)
	require.NoError(t, err)
	assert.True(t, mat.Equal(orig, centers), "seed centers must stay intact")
}

// TestRefine_ZeroIterations verifies that zero rounds still assigns labels
// against the untouched centers.
func TestRefine_ZeroIterations(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
	centers := mat.NewDense(2, 1, []float64{0, 10})

	res, err := kmeans.Refine(X, centers, 0)
	require.NoError(t, err)
	assert.True(t, mat.Equal(centers, res.Centers))
	assert.Equal(t, []int{0, 0, 1, 1}, res.Labels)
}

// TestFit_SeparatedBlobs verifies that Fit recovers three well-separated
// groups: members of one blob share a label and centers sit near blob means.
func TestFit_SeparatedBlobs(t *testing.T) {
	const perBlob = 50
	means := [][]float64{{0, 0}, {40, 0}, {0, 40}}
	X := blobs(means, perBlob, 1.0, 21)
	opts := kmeans.DefaultOptions()
	opts.Seed = 7

	res, err := kmeans.Fit(X, 3, opts)
	require.NoError(t, err)
	require.Len(t, res.Labels, 3*perBlob)

	for b := 0; b < 3; b++ {
		want := res.Labels[b*perBlob]
		for p := 1; p < perBlob; p++ {
			require.Equal(t, want, res.Labels[b*perBlob+p],
				"blob %d member %d strayed", b, p)
		}
	}

	// Each blob mean must be close to its assigned center.
	for b := 0; b < 3; b++ {
		c := res.Labels[b*perBlob]
		dx := res.Centers.At(c, 0) - means[b][0]
		dy := res.Centers.At(c, 1) - means[b][1]
		assert.Less(t, dx*dx+dy*dy, 1.0, "center %d far from blob %d mean", c, b)
	}
}

// TestFit_Deterministic verifies bit-identical output for identical input
// and seed.
func TestFit_Deterministic(t *testing.T) {
	X := blobs([][]float64{{0, 0}, {20, 20}, {40, 0}}, 30, 1.5, 13)
	opts := kmeans.DefaultOptions()
	opts.Seed = 17

	a, err := kmeans.Fit(X, 5, opts)
	require.NoError(t, err)
	b, err := kmeans.Fit(X, 5, opts)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Centers, b.Centers))
	assert.Equal(t, a.Labels, b.Labels)
}

// TestFit_KEqualsN verifies the degenerate one-point-per-cluster case:
// every distinct point becomes its own center.
func TestFit_KEqualsN(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{0, 0, 10, 0, 0, 10, 10, 10})

	res, err := kmeans.Fit(X, 4, kmeans.DefaultOptions())
	require.NoError(t, err)

	seen := make(map[int]bool, 4)
	for _, l := range res.Labels {
		seen[l] = true
	}
	assert.Len(t, seen, 4, "each point must own its cluster")
}

// TestFit_NegativeIterations verifies option validation on Fit.
func TestFit_NegativeIterations(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 2})
	opts := kmeans.DefaultOptions()
	opts.NIter = -1

	_, err := kmeans.Fit(X, 2, opts)
	assert.ErrorIs(t, err, kmeans.ErrBadOptions)
}
