package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/wave"
)

// Solver owns one wave grid and drives it through the collapse/propagate
// loop. It is not safe for concurrent use.
type Solver[T comparable] struct {
	rs   *rules.Ruleset[T]
	grid *wave.Grid
	prop *Propagator
	col  *Collapser
	opts Options

	state     State
	err       error
	last      int
	collapses int
}

// New builds a Solver over rs with an opts.Width×opts.Height grid where every
// cell holds every pattern. opts.N is ignored; the window size comes from rs.
// Returns an ErrInvalidInput error for a nil rule set or bad options.
func New[T comparable](rs *rules.Ruleset[T], opts Options) (*Solver[T], error) {
	if rs == nil {
		return nil, invalid(rules.ErrNoPatterns)
	}
	opts.N = rs.N()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g, err := wave.New(opts.Width, opts.Height, rs.Len())
	if err != nil {
		return nil, invalid(err)
	}
	weights := make([]int, rs.Len())
	for id := range weights {
		weights[id] = rs.Frequency(id)
	}

	return &Solver[T]{
		rs:    rs,
		grid:  g,
		prop:  NewPropagator(rs.Adjacency, opts.Strategy, opts.MaxPropagationSteps),
		col:   NewCollapser(weights, NewRand(opts.Seed)),
		opts:  opts,
		state: Initializing,
		last:  -1,
	}, nil
}

// State returns the current phase.
func (s *Solver[T]) State() State { return s.state }

// Err returns the error that moved the solver to Failed, or nil.
func (s *Solver[T]) Err() error { return s.err }

// Grid returns the live grid. Callers MUST NOT mutate it.
func (s *Solver[T]) Grid() *wave.Grid { return s.grid }

// Collapses returns how many collapse decisions were made so far.
func (s *Solver[T]) Collapses() int { return s.collapses }

// Step performs exactly one transition:
//
//   - Initializing → Selecting after propagating from every cell;
//   - Selecting    → Propagating after collapsing one cell, or → Solved when
//     nothing is left to collapse;
//   - Propagating  → Selecting once the grid is back at a fixpoint.
//
// Any contradiction moves the solver to Failed. Terminal states are sticky
// and return the stored error. A cancelled ctx returns ctx.Err() without
// changing state.
func (s *Solver[T]) Step(ctx context.Context) (State, error) {
	if s.state.Terminal() {
		return s.state, s.err
	}
	if err := ctx.Err(); err != nil {
		return s.state, err
	}

	switch s.state {
	case Initializing:
		s.propagate()
	case Selecting:
		idx, id, ok, err := s.col.Collapse(s.grid)
		switch {
		case err != nil:
			s.fail(err)
		case !ok:
			s.state = Solved
		default:
			s.collapses++
			s.last = idx
			s.state = Propagating
			if s.opts.OnCollapse != nil {
				x, y := s.grid.Coordinate(idx)
				s.opts.OnCollapse(x, y, id)
			}
		}
	case Propagating:
		s.propagate(s.last)
	}

	return s.state, s.err
}

// propagate runs the propagator to fixpoint and moves to Selecting or Failed.
func (s *Solver[T]) propagate(seeds ...int) {
	if _, err := s.prop.Propagate(s.grid, seeds...); err != nil {
		s.fail(err)
		return
	}
	s.state = Selecting
}

// fail records err and enters Failed.
func (s *Solver[T]) fail(err error) {
	s.state, s.err = Failed, err
	var ce *ContradictionError
	if s.opts.OnContradiction != nil && errors.As(err, &ce) {
		s.opts.OnContradiction(ce.X, ce.Y)
	}
}

// Run steps until Solved or Failed. It returns nil on Solved, the failure
// error on Failed, or ctx.Err() if cancelled between steps.
func (s *Solver[T]) Run(ctx context.Context) error {
	for !s.state.Terminal() {
		if _, err := s.Step(ctx); err != nil {
			return err
		}
	}

	return s.err
}

// Compose returns the output raster. Only valid in the Solved state.
func (s *Solver[T]) Compose() ([][]T, error) {
	if s.state != Solved {
		return nil, ErrNotSolved
	}

	return Compose(s.rs, s.grid)
}
