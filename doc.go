// Package kohonen trains and queries a self-organizing competitive-learning
// network (a Kohonen-style map) over fixed-dimension input vectors.
//
// A map holds K neurons, each a weight vector of dimension D initialized
// uniformly in [-1, 1). Training repeatedly draws a pattern from the dataset
// with replacement, finds the neuron closest to it by Euclidean distance and
// pulls weights toward the pattern:
//
//   - Hard competition moves only the winner: w += η(x - w).
//   - Soft competition also moves every other neuron j by
//     η·exp(-‖x - w_j‖)·(x - w_j). The neighborhood is measured in input
//     space, not on a neuron lattice.
//
// # Quick Start
//
//	s := kohonen.New(kohonen.WithSeed(42))
//	stats, err := s.Train(ctx, patterns, kohonen.TrainingConfig{
//	    Neurons:      8,
//	    Iterations:   1000,
//	    LearningRate: 0.1,
//	    Mode:         kohonen.Soft,
//	})
//	if err != nil {
//	    return err
//	}
//	c, _ := s.Classify(ctx, query)
//	fmt.Println(c.Winner, c.Weights, stats.Dead())
//
// # Functional API
//
// The engine is also available without a session:
//
//	store, _ := kohonen.Initialize(8, 784, rng)
//	_, err := kohonen.Train(store, patterns, 1000, 0.1, kohonen.Hard, rng)
//	idx, weights, err := kohonen.Classify(store, query)
//
// # Concurrency
//
// Everything is synchronous and single-threaded. Neither WeightStore nor
// Session lock internally: a Train call needs exclusive access to its store.
// For responsiveness, use Session.TrainChunked and observe the weights between
// chunks.
//
// # Errors
//
// Invalid input is rejected before any mutation with *ErrInvalidParameter,
// *ErrDimensionMismatch, ErrEmptyDataset or ErrEmptyStore.
package kohonen
