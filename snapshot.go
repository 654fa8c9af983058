package kohonen

import (
	"fmt"

	"github.com/hupe1980/kohonen/codec"
)

// Snapshot is a read-only copy of a map's weights shaped for an external
// renderer: one label and one vector per neuron, plus all weights flattened in
// neuron order.
type Snapshot struct {
	Labels  []string    `json:"labels"`
	Neurons [][]float32 `json:"neurons"`
	Data    []float32   `json:"data"`
}

// NewSnapshot copies the weights of store.
func NewSnapshot(store *WeightStore) (Snapshot, error) {
	if store.Len() == 0 {
		return Snapshot{}, ErrEmptyStore
	}
	labels := make([]string, store.Len())
	for i := range labels {
		labels[i] = fmt.Sprintf("Neuron %d", i+1)
	}
	return Snapshot{
		Labels:  labels,
		Neurons: store.All(),
		Data:    store.Flat(),
	}, nil
}

// EncodeSnapshot serializes snap with c (codec.Default if nil).
func EncodeSnapshot(c codec.Codec, snap Snapshot) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot with %s: %w", c.Name(), err)
	}
	return data, nil
}

// Snapshot returns a renderer view of the current weights.
func (s *Session) Snapshot() (Snapshot, error) {
	return NewSnapshot(s.store)
}

// EncodeSnapshot encodes the current weights with the session codec.
func (s *Session) EncodeSnapshot() ([]byte, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return EncodeSnapshot(s.opts.codec, snap)
}
