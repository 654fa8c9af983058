package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([][]float32{{0, 0.5, 1}, {1, 1, 0}}))

	assert.ErrorIs(t, Validate(nil), ErrEmpty)
	assert.ErrorIs(t, Validate([][]float32{{}}), ErrZeroDimension)

	var de *DimensionError
	require.ErrorAs(t, Validate([][]float32{{0, 1}, {0, 1}, {0}}), &de)
	assert.Equal(t, DimensionError{Pattern: 2, Expected: 2, Actual: 1}, *de)

	tests := []struct {
		name  string
		value float32
	}{
		{"Negative", -0.01},
		{"AboveOne", 1.5},
		{"NaN", float32(math.NaN())},
		{"Inf", float32(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var re *RangeError
			require.ErrorAs(t, Validate([][]float32{{0, 0}, {0.5, tt.value}}), &re)
			assert.Equal(t, 1, re.Pattern)
			assert.Equal(t, 1, re.Component)
		})
	}
}

func TestDim(t *testing.T) {
	assert.Zero(t, Dim(nil))
	assert.Equal(t, 3, Dim([][]float32{{1, 2, 3}}))
}
