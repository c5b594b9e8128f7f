package solver

import (
	"errors"
	"fmt"
)

// Strategy selects how the Propagator reaches its fixpoint.
//
//   - Worklist  — revisit only cells whose candidate sets changed. Default.
//   - FullSweep — sweep every cell row-major until a sweep changes nothing.
//
// Both produce the same fixpoint; FullSweep exists as a reference and for
// cross-checking.
type Strategy int

const (
	// Worklist propagates from a queue of changed cells.
	Worklist Strategy = iota
	// FullSweep repeats whole-grid sweeps until stable.
	FullSweep
)

func (s Strategy) String() string {
	switch s {
	case Worklist:
		return "worklist"
	case FullSweep:
		return "sweep"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "worklist" and "sweep" to their Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "worklist", "":
		return Worklist, nil
	case "sweep":
		return FullSweep, nil
	default:
		return 0, fmt.Errorf("solver: unknown strategy %q", s)
	}
}

// Options configures a generation run.
//
// Fields:
//   - N                   — pattern window size (≥ 1, ≤ min(sample H, W)).
//   - Width, Height       — output grid size in cells (≥ 1). The raster is
//     (Height+N−1) × (Width+N−1) symbols.
//   - Seed                — seed of the run's random source.
//   - Strategy            — propagation strategy.
//   - Workers             — rule-builder parallelism; 0 means GOMAXPROCS.
//   - MaxPropagationSteps — cap on cell visits per propagation; 0 derives a
//     bound that a well-formed rule set can never reach.
//   - OnCollapse          — optional hook after each collapse decision.
//   - OnContradiction     — optional hook when a run fails.
type Options struct {
	N                   int
	Width, Height       int
	Seed                int64
	Strategy            Strategy
	Workers             int
	MaxPropagationSteps int
	OnCollapse          func(x, y, id int)
	OnContradiction     func(x, y int)
}

// Defaults.
const (
	DefaultN      = 2
	DefaultWidth  = 10
	DefaultHeight = 10
)

// DefaultOptions returns N=2 on a 10×10 grid, seed 0, worklist propagation.
func DefaultOptions() Options {
	return Options{
		N:        DefaultN,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Strategy: Worklist,
	}
}

var (
	errWindow   = errors.New("N must be at least 1")
	errSize     = errors.New("width and height must be at least 1")
	errWorkers  = errors.New("workers must not be negative")
	errSteps    = errors.New("max propagation steps must not be negative")
	errStrategy = errors.New("unknown propagation strategy")
)

// Validate checks option ranges. Every failure matches ErrInvalidInput.
func (o Options) Validate() error {
	switch {
	case o.N < 1:
		return invalid(errWindow)
	case o.Width < 1 || o.Height < 1:
		return invalid(errSize)
	case o.Workers < 0:
		return invalid(errWorkers)
	case o.MaxPropagationSteps < 0:
		return invalid(errSteps)
	case o.Strategy != Worklist && o.Strategy != FullSweep:
		return invalid(errStrategy)
	}

	return nil
}
