package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wfc/solver"
)

// BenchmarkSolve measures full runs on a 32×32 grid for both strategies.
func BenchmarkSolve(b *testing.B) {
	rs := mustRules(b, checker, 2)
	ctx := context.Background()
	for _, strat := range []solver.Strategy{solver.Worklist, solver.FullSweep} {
		b.Run(strat.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				opts := solver.DefaultOptions()
				opts.Width, opts.Height = 32, 32
				opts.Seed = int64(i)
				opts.Strategy = strat
				sv, err := solver.New(rs, opts)
				if err != nil {
					b.Fatalf("New: %v", err)
				}
				_ = sv.Run(ctx)
			}
		})
	}
}
