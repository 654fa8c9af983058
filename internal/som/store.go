package som

import "slices"

// WeightStore owns the neuron weight vectors of a map.
//
// Weights are kept in a single backing array of k*dim values; neuron i
// occupies data[i*dim:(i+1)*dim]. K and D never change after construction.
type WeightStore struct {
	k    int
	dim  int
	data []float32
}

func newWeightStore(k, dim int) *WeightStore {
	return &WeightStore{
		k:    k,
		dim:  dim,
		data: make([]float32, k*dim),
	}
}

// NewWeightStore builds a store from explicit weight vectors.
// The vectors are copied; all of them must share the same non-zero length.
func NewWeightStore(weights [][]float32) (*WeightStore, error) {
	if len(weights) == 0 {
		return nil, &ErrInvalidParameter{Name: "neurons", Value: 0}
	}
	dim := len(weights[0])
	if dim == 0 {
		return nil, &ErrInvalidParameter{Name: "dimension", Value: 0}
	}

	s := newWeightStore(len(weights), dim)
	for i, w := range weights {
		if len(w) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(w)}
		}
		copy(s.row(i), w)
	}
	return s, nil
}

// Len returns the number of neurons K. A nil store has no neurons.
func (s *WeightStore) Len() int {
	if s == nil {
		return 0
	}
	return s.k
}

// Dim returns the weight dimension D.
func (s *WeightStore) Dim() int {
	if s == nil {
		return 0
	}
	return s.dim
}

// Weights returns a copy of neuron i's weight vector.
// It panics if i is out of range.
func (s *WeightStore) Weights(i int) []float32 {
	return slices.Clone(s.row(i))
}

// All returns copies of every weight vector in neuron order.
func (s *WeightStore) All() [][]float32 {
	out := make([][]float32, s.Len())
	for i := range out {
		out[i] = s.Weights(i)
	}
	return out
}

// Flat returns a copy of all weights concatenated in neuron order.
func (s *WeightStore) Flat() []float32 {
	if s == nil {
		return nil
	}
	return slices.Clone(s.data)
}

// Clone returns an independent deep copy of the store.
func (s *WeightStore) Clone() *WeightStore {
	if s == nil {
		return nil
	}
	return &WeightStore{k: s.k, dim: s.dim, data: slices.Clone(s.data)}
}

// Equal reports whether both stores hold the same shape and values.
func (s *WeightStore) Equal(o *WeightStore) bool {
	if s.Len() != o.Len() || s.Dim() != o.Dim() {
		return false
	}
	if s == nil || o == nil {
		return s == o
	}
	return slices.Equal(s.data, o.data)
}

// row returns the mutable view of neuron i.
func (s *WeightStore) row(i int) []float32 {
	return s.data[i*s.dim : (i+1)*s.dim : (i+1)*s.dim]
}
