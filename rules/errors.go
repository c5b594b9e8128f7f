package rules

import "errors"

var (
	// ErrNoPatterns indicates Build received no raw patterns.
	ErrNoPatterns = errors.New("rules: at least one pattern is required")
	// ErrMixedSizes indicates the raw patterns do not share one window size.
	ErrMixedSizes = errors.New("rules: patterns must share one window size")
)
