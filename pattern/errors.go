package pattern

import "errors"

var (
	// ErrEmptySample indicates the sample has no rows or no columns.
	ErrEmptySample = errors.New("pattern: sample must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pattern: all rows must have the same length")
	// ErrWindowSize indicates N is outside [1, min(height, width)].
	ErrWindowSize = errors.New("pattern: window size out of range")
	// ErrNotSquare indicates New received a matrix whose rows are not all of length len(rows).
	ErrNotSquare = errors.New("pattern: matrix is not square")
)
