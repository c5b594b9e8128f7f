package solver

import (
	"context"

	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/rules"
)

// Generate synthesizes an (outHeight+n−1)×(outWidth+n−1) raster whose n×n
// neighborhoods all occur, up to rotation, in sample.
//
// Errors match ErrInvalidInput for precondition violations and
// ErrContradiction when the run dead-ends; in both cases no raster is
// returned. Retrying with another seed is the caller's decision.
func Generate[T comparable](sample [][]T, n, outWidth, outHeight int, seed int64) ([][]T, error) {
	opts := DefaultOptions()
	opts.N = n
	opts.Width, opts.Height = outWidth, outHeight
	opts.Seed = seed

	return GenerateWithOptions(context.Background(), sample, opts)
}

// GenerateWithOptions is Generate with full configuration and cancellation.
// ctx is checked while building rules and between solver steps.
func GenerateWithOptions[T comparable](ctx context.Context, sample [][]T, opts Options) ([][]T, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := pattern.Validate(sample, opts.N); err != nil {
		return nil, invalid(err)
	}
	var ropts []rules.Option
	if opts.Workers > 0 {
		ropts = append(ropts, rules.WithWorkers(opts.Workers))
	}
	rs, err := rules.FromSample(ctx, sample, opts.N, ropts...)
	if err != nil {
		return nil, err
	}
	s, err := New(rs, opts)
	if err != nil {
		return nil, err
	}
	if err = s.Run(ctx); err != nil {
		return nil, err
	}

	return s.Compose()
}
