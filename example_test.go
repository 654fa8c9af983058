package kohonen_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/testutil"
)

// Example_geometricConvergence shows a single neuron approaching the only
// pattern by a factor (1-η) per step.
func Example_geometricConvergence() {
	store, err := kohonen.NewWeightStore([][]float32{{0}})
	if err != nil {
		log.Fatal(err)
	}

	rng := testutil.NewRNG(1)
	for range 3 {
		if _, err := kohonen.Train(store, [][]float32{{1}}, 1, 0.5, kohonen.Hard, rng); err != nil {
			log.Fatal(err)
		}
		fmt.Println(store.Weights(0)[0])
	}
	// Output:
	// 0.5
	// 0.75
	// 0.875
}

// Example_session trains a map with a session and classifies a query.
func Example_session() {
	ctx := context.Background()
	patterns := [][]float32{
		{0.05, 0.1}, {0.1, 0.05}, {0.1, 0.1},
		{0.9, 0.95}, {0.95, 0.9}, {0.9, 0.9},
	}

	s := kohonen.New(kohonen.WithSource(testutil.NewRNG(42)))
	stats, err := s.Train(ctx, patterns, kohonen.TrainingConfig{
		Neurons:      2,
		Iterations:   500,
		LearningRate: 0.2,
		Mode:         kohonen.Soft,
	})
	if err != nil {
		log.Fatal(err)
	}

	c, err := s.Classify(ctx, []float32{1, 1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s.Neurons(), s.Dim(), stats.Iterations, len(c.Weights))
	// Output: 2 2 500 2
}

// Example_distance computes the Euclidean distance between two patterns.
func Example_distance() {
	d, err := kohonen.Distance([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)
	// Output: 5
}
