package kohonen

import (
	"github.com/hupe1980/kohonen/distance"
	"github.com/hupe1980/kohonen/internal/som"
)

// WeightStore owns the K neuron weight vectors of a map, each of dimension D.
type WeightStore = som.WeightStore

// Source is the injected pseudo-random generator.
// *math/rand.Rand and testutil.RNG satisfy it.
type Source = som.Source

// Mode selects hard (winner-take-all) or soft competition.
type Mode = som.Mode

// TrainStats summarizes a training call: iterations, per-neuron win counts and
// the bitmap of neurons that won at least once.
type TrainStats = som.Stats

const (
	// Hard moves only the winning neuron toward the pattern.
	Hard = som.Hard
	// Soft also moves every other neuron, scaled by exp(-distance) to the pattern.
	Soft = som.Soft
)

// ParseMode parses "hard" or "soft".
func ParseMode(s string) (Mode, error) {
	m, err := som.ParseMode(s)
	return m, translateError(err)
}

// NewWeightStore builds a store from explicit weight vectors (copied).
func NewWeightStore(weights [][]float32) (*WeightStore, error) {
	s, err := som.NewWeightStore(weights)
	return s, translateError(err)
}

// Initialize creates a fresh store of k neurons with dim-dimensional weights
// drawn uniformly from [-1, 1).
func Initialize(k, dim int, src Source) (*WeightStore, error) {
	s, err := som.Initialize(k, dim, src)
	return s, translateError(err)
}

// Train mutates store in place for exactly iterations steps of stochastic
// competitive learning over dataset. Arguments are validated before the first
// update; on error the store is unchanged.
func Train(store *WeightStore, dataset [][]float32, iterations int, lr float32, mode Mode, src Source) (TrainStats, error) {
	stats, err := som.Train(store, dataset, iterations, lr, mode, src)
	return stats, translateError(err)
}

// SelectWinner returns the index of the neuron closest to pattern and its
// distance. The lowest index wins ties.
func SelectWinner(pattern []float32, store *WeightStore) (int, float32, error) {
	idx, d, err := som.SelectWinner(pattern, store)
	return idx, d, translateError(err)
}

// Update applies one update step for a known winner.
func Update(store *WeightStore, pattern []float32, winner int, mode Mode, lr float32) error {
	return translateError(som.Update(store, pattern, winner, mode, lr))
}

// Classify returns the winner for pattern and a copy of its weights without
// mutating store.
func Classify(store *WeightStore, pattern []float32) (int, []float32, error) {
	idx, w, err := som.Classify(store, pattern)
	return idx, w, translateError(err)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float32) (float32, error) {
	d, err := distance.Euclidean(a, b)
	return d, translateError(err)
}
