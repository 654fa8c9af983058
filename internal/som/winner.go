package som

import (
	"math"

	"github.com/hupe1980/kohonen/distance"
)

// SelectWinner returns the index of the neuron closest to pattern together
// with its Euclidean distance.
//
// Neurons are scanned in index order and the current best is replaced only on a
// strictly smaller distance, so the lowest index wins ties.
func SelectWinner(pattern []float32, s *WeightStore) (int, float32, error) {
	if s.Len() == 0 {
		return -1, 0, ErrEmptyStore
	}
	if len(pattern) != s.dim {
		return -1, 0, &ErrDimensionMismatch{Expected: s.dim, Actual: len(pattern)}
	}
	winner, dist := selectWinner(pattern, s)
	return winner, dist, nil
}

// selectWinner assumes a non-empty store and a pattern of matching dimension.
func selectWinner(pattern []float32, s *WeightStore) (int, float32) {
	best := -1
	minDist := float32(math.Inf(1))

	for i := 0; i < s.k; i++ {
		d := distance.L2(pattern, s.row(i))
		if d < minDist {
			minDist = d
			best = i
		}
	}

	// Every distance was NaN.
	if best < 0 {
		return 0, distance.L2(pattern, s.row(0))
	}
	return best, minDist
}
