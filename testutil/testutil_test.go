package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(42)
	vecs := rng.UniformVectors(10, 8)
	require.Len(t, vecs, 10)
	for _, v := range vecs {
		require.Len(t, v, 8)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, float32(0))
			assert.Less(t, x, float32(1))
		}
	}
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(7)
	vecs := rng.ClusteredVectors(30, 4, 3, 0.5)
	require.Len(t, vecs, 30)
	for _, v := range vecs {
		require.Len(t, v, 4)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, float32(0))
			assert.LessOrEqual(t, x, float32(1))
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(123)
	first := []int{rng.Intn(100), rng.Intn(100), rng.Intn(100)}
	f := rng.Float32()

	rng.Reset()
	second := []int{rng.Intn(100), rng.Intn(100), rng.Intn(100)}
	assert.Equal(t, first, second)
	assert.Equal(t, f, rng.Float32())
}

func TestNearest(t *testing.T) {
	candidates := [][]float32{{0, 0}, {1, 1}, {0, 0}}

	assert.Equal(t, 0, Nearest([]float32{0.1, 0.1}, candidates))
	assert.Equal(t, 1, Nearest([]float32{0.9, 0.8}, candidates))
	assert.Equal(t, -1, Nearest([]float32{0, 0}, nil))
}
