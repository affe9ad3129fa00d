package kmeans_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectralbridges/kmeans"
)

// ExampleFit clusters two obvious groups on a line.
func ExampleFit() {
	X := mat.NewDense(6, 1, []float64{
		0.0, 0.1, 0.2, // group around 0
		9.0, 9.1, 9.2, // group around 9
	})

	opts := kmeans.DefaultOptions()
	opts.Seed = 1
	res, err := kmeans.Fit(X, 2, opts)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Println("labels:", len(res.Labels))
	fmt.Println("first group together:", res.Labels[0] == res.Labels[1] && res.Labels[1] == res.Labels[2])
	fmt.Println("groups apart:", res.Labels[0] != res.Labels[3])
	// Output:
	// labels: 6
	// first group together: true
	// groups apart: true
}
