package som

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/kohonen/distance"
)

// Mode selects the competition regime of the update rule.
type Mode int

const (
	// Hard is winner-take-all: only the winning neuron moves.
	Hard Mode = iota
	// Soft also moves every other neuron, scaled by exp(-distance) to the pattern.
	Soft
)

func (m Mode) String() string {
	switch m {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known competition mode.
func (m Mode) Valid() bool {
	return m == Hard || m == Soft
}

// ParseMode parses "hard" or "soft" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	default:
		return Hard, &ErrInvalidParameter{Name: "mode", Value: s}
	}
}

// Update moves the store's weights toward pattern in place.
//
// The winner always moves by w += lr*(pattern-w). In Soft mode every other
// neuron j moves by w_j += lr*exp(-‖pattern-w_j‖)*(pattern-w_j), where the
// distance is taken in input space against the neuron's current weights.
// A learning rate of zero leaves the store unchanged.
func Update(s *WeightStore, pattern []float32, winner int, mode Mode, lr float32) error {
	if s.Len() == 0 {
		return ErrEmptyStore
	}
	if len(pattern) != s.dim {
		return &ErrDimensionMismatch{Expected: s.dim, Actual: len(pattern)}
	}
	if winner < 0 || winner >= s.k {
		return &ErrInvalidParameter{Name: "winner", Value: winner}
	}
	if !mode.Valid() {
		return &ErrInvalidParameter{Name: "mode", Value: mode}
	}

	update(s, pattern, winner, mode, lr)
	return nil
}

// update assumes validated arguments.
func update(s *WeightStore, pattern []float32, winner int, mode Mode, lr float32) {
	for i := 0; i < s.k; i++ {
		w := s.row(i)
		if i == winner {
			pull(w, pattern, lr)
			continue
		}
		if mode != Soft {
			continue
		}
		neighborhood := float32(math.Exp(-float64(distance.L2(pattern, w))))
		pull(w, pattern, lr*neighborhood)
	}
}

// pull applies w += rate*(pattern-w) componentwise, evaluated as the convex
// combination (1-rate)*w + rate*pattern so that rate 1 lands exactly on pattern.
func pull(w, pattern []float32, rate float32) {
	keep := 1 - rate
	for j := range w {
		w[j] = keep*w[j] + rate*pattern[j]
	}
}
