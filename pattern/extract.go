package pattern

// Validate checks that sample is non-empty and rectangular and that n fits
// inside it. It returns the sample's height and width on success.
// Complexity: O(H).
func Validate[T comparable](sample [][]T, n int) (h, w int, err error) {
	if len(sample) == 0 || len(sample[0]) == 0 {
		return 0, 0, ErrEmptySample
	}
	h, w = len(sample), len(sample[0])
	for _, row := range sample {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	if n < 1 || n > min(h, w) {
		return 0, 0, ErrWindowSize
	}

	return h, w, nil
}

// Extract slides an n×n window over sample and returns every overlapping
// window, one per valid top-left offset, in row-major offset order.
// Duplicates are kept: their multiplicity becomes frequency downstream.
//
// Returns exactly (H−n+1)·(W−n+1) patterns, or ErrEmptySample,
// ErrNonRectangular or ErrWindowSize.
// Complexity: O((H−n+1)·(W−n+1)·n²) time and memory.
func Extract[T comparable](sample [][]T, n int) ([]Pattern[T], error) {
	h, w, err := Validate(sample, n)
	if err != nil {
		return nil, err
	}
	out := make([]Pattern[T], 0, (h-n+1)*(w-n+1))
	for y := 0; y <= h-n; y++ {
		for x := 0; x <= w-n; x++ {
			out = append(out, window(sample, x, y, n))
		}
	}

	return out, nil
}
