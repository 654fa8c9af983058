package som

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Stats summarizes a training call.
type Stats struct {
	// Iterations is the number of update steps performed.
	Iterations int
	// WinCounts[i] is how often neuron i won a competition.
	WinCounts []int
	// Winners holds the index of every neuron that won at least once.
	Winners *roaring.Bitmap
}

func newStats(k int) Stats {
	return Stats{
		WinCounts: make([]int, k),
		Winners:   roaring.New(),
	}
}

// Dead returns the number of neurons that never won.
func (s Stats) Dead() int {
	if s.Winners == nil {
		return len(s.WinCounts)
	}
	return len(s.WinCounts) - int(s.Winners.GetCardinality())
}

// Merge folds o into s. Both must describe the same store.
func (s *Stats) Merge(o Stats) {
	if s.Winners == nil {
		s.Winners = roaring.New()
	}
	if len(s.WinCounts) < len(o.WinCounts) {
		s.WinCounts = append(s.WinCounts, make([]int, len(o.WinCounts)-len(s.WinCounts))...)
	}
	s.Iterations += o.Iterations
	for i, c := range o.WinCounts {
		s.WinCounts[i] += c
	}
	if o.Winners != nil {
		s.Winners.Or(o.Winners)
	}
}

// Train runs exactly iterations steps of: draw a pattern uniformly with
// replacement from dataset, select its winner, apply Update.
//
// All arguments are validated before the first mutation; on error the store is
// untouched. There is no convergence check and no learning-rate decay.
func Train(s *WeightStore, dataset [][]float32, iterations int, lr float32, mode Mode, src Source) (Stats, error) {
	if err := validateTrain(s, dataset, iterations, lr, mode, src); err != nil {
		return Stats{}, err
	}

	stats := newStats(s.k)
	for it := 0; it < iterations; it++ {
		pattern := dataset[src.Intn(len(dataset))]
		winner, _ := selectWinner(pattern, s)
		update(s, pattern, winner, mode, lr)

		stats.WinCounts[winner]++
		stats.Winners.Add(uint32(winner))
	}
	stats.Iterations = iterations

	return stats, nil
}

func validateTrain(s *WeightStore, dataset [][]float32, iterations int, lr float32, mode Mode, src Source) error {
	if iterations < 0 {
		return &ErrInvalidParameter{Name: "iterations", Value: iterations}
	}
	if lr <= 0 || math.IsNaN(float64(lr)) || math.IsInf(float64(lr), 0) {
		return &ErrInvalidParameter{Name: "learning_rate", Value: lr}
	}
	if !mode.Valid() {
		return &ErrInvalidParameter{Name: "mode", Value: mode}
	}
	if src == nil {
		return &ErrInvalidParameter{Name: "source", Value: nil}
	}
	if s.Len() == 0 {
		return ErrEmptyStore
	}
	if len(dataset) == 0 {
		return ErrEmptyDataset
	}
	for _, v := range dataset {
		if len(v) != s.dim {
			return &ErrDimensionMismatch{Expected: s.dim, Actual: len(v)}
		}
	}
	return nil
}
