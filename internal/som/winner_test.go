package som

import (
	"testing"

	"github.com/hupe1980/kohonen/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWinner(t *testing.T) {
	s, err := NewWeightStore([][]float32{{0, 0}, {1, 1}, {0.5, 0.5}})
	require.NoError(t, err)

	idx, dist, err := SelectWinner([]float32{0.9, 0.9}, s)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 0.1414, dist, 1e-3)

	idx, _, err = SelectWinner([]float32{0.4, 0.6}, s)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSelectWinner_TieBreakLowestIndex(t *testing.T) {
	s, err := NewWeightStore([][]float32{{1, 0}, {0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)

	// Equidistant from all four neurons.
	for range 3 {
		idx, _, err := SelectWinner([]float32{0, 0}, s)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	}

	// Neurons 1 and 2 are identical.
	idx, _, err := SelectWinner([]float32{0, 0.9}, s)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestSelectWinner_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(5)
	s, err := Initialize(12, 6, rng)
	require.NoError(t, err)

	for _, q := range rng.UniformVectors(50, 6) {
		idx, _, err := SelectWinner(q, s)
		require.NoError(t, err)
		assert.Equal(t, testutil.Nearest(q, s.All()), idx)
	}
}

func TestSelectWinner_Errors(t *testing.T) {
	s, err := NewWeightStore([][]float32{{0, 0}})
	require.NoError(t, err)

	_, _, err = SelectWinner([]float32{0}, s)
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 1, dm.Actual)

	_, _, err = SelectWinner([]float32{0, 0}, nil)
	assert.ErrorIs(t, err, ErrEmptyStore)

	_, _, err = SelectWinner([]float32{0, 0}, &WeightStore{})
	assert.ErrorIs(t, err, ErrEmptyStore)
}
