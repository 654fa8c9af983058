package som

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when training is invoked without patterns.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrEmptyStore is returned when selecting against a store with no neurons.
	ErrEmptyStore = errors.New("empty weight store")
)

// ErrInvalidParameter indicates a scalar argument outside its legal range.
type ErrInvalidParameter struct {
	Name  string
	Value any
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Name, e.Value)
}

// ErrDimensionMismatch indicates a vector whose length disagrees with the store.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
