package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks precondition violations (empty sample, bad N,
	// non-positive output size). It wraps the specific cause.
	ErrInvalidInput = errors.New("solver: invalid input")
	// ErrContradiction indicates some cell ran out of candidates.
	ErrContradiction = errors.New("solver: contradiction")
	// ErrPropagationLimit indicates propagation exceeded its step cap, which
	// only a malformed adjacency relation can cause.
	ErrPropagationLimit = errors.New("solver: propagation step limit exceeded")
	// ErrNotSolved indicates Compose was called before every cell collapsed.
	ErrNotSolved = errors.New("solver: grid is not solved")
)

// ContradictionError reports the cell whose candidate set became empty.
// It matches ErrContradiction under errors.Is.
type ContradictionError struct {
	X, Y int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("solver: contradiction at (%d,%d)", e.X, e.Y)
}

// Is reports whether target is ErrContradiction.
func (e *ContradictionError) Is(target error) bool {
	return target == ErrContradiction
}

// invalid wraps cause as an ErrInvalidInput.
func invalid(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, cause)
}
