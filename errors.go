package kohonen

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kohonen/distance"
	"github.com/hupe1980/kohonen/internal/som"
)

var (
	// ErrEmptyDataset is returned when training is invoked with zero patterns.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrEmptyStore is returned when selecting or classifying against a map
	// with no neurons (including a session that was never initialized).
	ErrEmptyStore = errors.New("empty weight store")
)

// ErrInvalidParameter indicates a scalar parameter outside its legal range,
// such as a non-positive neuron count or learning rate.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Name  string
	Value any
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a vector/store dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, som.ErrEmptyDataset) {
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}
	if errors.Is(err, som.ErrEmptyStore) {
		return fmt.Errorf("%w: %w", ErrEmptyStore, err)
	}

	var ip *som.ErrInvalidParameter
	if errors.As(err, &ip) {
		return &ErrInvalidParameter{Name: ip.Name, Value: ip.Value, cause: err}
	}
	var dm *som.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var ddm *distance.ErrDimensionMismatch
	if errors.As(err, &ddm) {
		return &ErrDimensionMismatch{Expected: ddm.Expected, Actual: ddm.Actual, cause: err}
	}

	return err
}
