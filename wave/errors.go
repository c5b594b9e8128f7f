package wave

import "errors"

var (
	// ErrBadDimensions indicates width or height is below 1.
	ErrBadDimensions = errors.New("wave: width and height must be at least 1")
	// ErrNoPatterns indicates the grid was asked to hold fewer than one pattern.
	ErrNoPatterns = errors.New("wave: at least one pattern is required")
	// ErrOutOfRange indicates a coordinate or pattern id outside the grid.
	ErrOutOfRange = errors.New("wave: index out of range")
	// ErrNotCandidate indicates a collapse to an id no longer in the cell's set.
	ErrNotCandidate = errors.New("wave: pattern is not a candidate of the cell")
)
