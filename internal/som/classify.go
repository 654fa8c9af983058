package som

// Classify returns the winning neuron for pattern and a copy of its weights.
// The store is never mutated.
func Classify(s *WeightStore, pattern []float32) (int, []float32, error) {
	winner, _, err := SelectWinner(pattern, s)
	if err != nil {
		return -1, nil, err
	}
	return winner, s.Weights(winner), nil
}
