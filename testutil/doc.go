// Package testutil provides testing utilities for kohonen.
//
// This package is intended for use in tests, examples and the demo CLI.
// It provides a seeded, thread-safe random source and generators for
// normalized input patterns.
//
// # Random Source
//
//	rng := testutil.NewRNG(seed)
//	store, _ := kohonen.Initialize(4, 16, rng)
//
// # Pattern Generation
//
//	patterns := rng.UniformVectors(100, 16)          // uniform [0, 1)
//	clusters := rng.ClusteredVectors(100, 16, 3, 0.05) // 3 tight blobs in [0, 1]
//
// # Reference Winner
//
//	idx := testutil.Nearest(query, weights)
package testutil
