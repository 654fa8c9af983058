package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a dataset holds no patterns.
	ErrEmpty = errors.New("dataset: no patterns")
	// ErrZeroDimension is returned when the patterns have no components.
	ErrZeroDimension = errors.New("dataset: patterns have no components")
)

// DimensionError reports a pattern whose length differs from the first one.
type DimensionError struct {
	Pattern  int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dataset: pattern %d has dimension %d, expected %d", e.Pattern, e.Actual, e.Expected)
}

// RangeError reports a component outside [0, 1].
type RangeError struct {
	Pattern   int
	Component int
	Value     float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dataset: pattern %d component %d is %v, outside [0, 1]", e.Pattern, e.Component, e.Value)
}

// Validate checks that patterns is non-empty, that every pattern has the same
// non-zero length, and that every component lies in [0, 1].
func Validate(patterns [][]float32) error {
	if len(patterns) == 0 {
		return ErrEmpty
	}
	dim := len(patterns[0])
	if dim == 0 {
		return ErrZeroDimension
	}
	for i, p := range patterns {
		if len(p) != dim {
			return &DimensionError{Pattern: i, Expected: dim, Actual: len(p)}
		}
		for j, v := range p {
			// Written so NaN fails too.
			if !(v >= 0 && v <= 1) {
				return &RangeError{Pattern: i, Component: j, Value: v}
			}
		}
	}
	return nil
}

// Dim returns the pattern length of a validated dataset, or 0 if it is empty.
func Dim(patterns [][]float32) int {
	if len(patterns) == 0 {
		return 0
	}
	return len(patterns[0])
}
