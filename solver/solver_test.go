package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/solver"
)

// SolverSuite exercises the Solver state machine on the checker exemplar.
type SolverSuite struct {
	suite.Suite
	ctx context.Context
	rs  *rules.Ruleset[int]
}

func (s *SolverSuite) SetupSuite() {
	s.ctx = context.Background()
	s.rs = mustRules(s.T(), checker, 2)
}

func (s *SolverSuite) newSolver(seed int64, w, h int) *solver.Solver[int] {
	opts := solver.DefaultOptions()
	opts.Width, opts.Height, opts.Seed = w, h, seed
	sv, err := solver.New(s.rs, opts)
	require.NoError(s.T(), err)
	return sv
}

// TestNew_Invalid rejects nil rules and bad sizes.
func (s *SolverSuite) TestNew_Invalid() {
	_, err := solver.New[int](nil, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, solver.ErrInvalidInput)

	opts := solver.DefaultOptions()
	opts.Width = 0
	_, err = solver.New(s.rs, opts)
	require.ErrorIs(s.T(), err, solver.ErrInvalidInput)
}

// TestTransitions checks the legal state sequence and one collapse per cycle.
func (s *SolverSuite) TestTransitions() {
	sv := s.newSolver(5, 6, 6)
	require.Equal(s.T(), solver.Initializing, sv.State())

	prev := sv.State()
	for !sv.State().Terminal() {
		before := sv.Collapses()
		st, _ := sv.Step(s.ctx)
		switch prev {
		case solver.Initializing:
			require.Contains(s.T(), []solver.State{solver.Selecting, solver.Failed}, st)
			require.Equal(s.T(), before, sv.Collapses())
		case solver.Selecting:
			require.Contains(s.T(), []solver.State{solver.Propagating, solver.Solved, solver.Failed}, st)
			if st == solver.Propagating {
				require.Equal(s.T(), before+1, sv.Collapses())
			}
		case solver.Propagating:
			require.Contains(s.T(), []solver.State{solver.Selecting, solver.Failed}, st)
			require.Equal(s.T(), before, sv.Collapses())
		}
		prev = st
	}

	// terminal states are sticky
	st, err := sv.Step(s.ctx)
	require.Equal(s.T(), prev, st)
	require.Equal(s.T(), sv.Err(), err)
}

// TestMonotonicAcrossSteps: no cell regains a candidate at any step.
func (s *SolverSuite) TestMonotonicAcrossSteps() {
	for seed := int64(1); seed <= 10; seed++ {
		sv := s.newSolver(seed, 8, 8)
		prev := sv.Grid().Entropies()
		for !sv.State().Terminal() {
			_, _ = sv.Step(s.ctx)
			cur := sv.Grid().Entropies()
			for i := range cur {
				require.LessOrEqual(s.T(), cur[i], prev[i], "seed %d cell %d", seed, i)
			}
			prev = cur
		}
	}
}

// TestSolvedSatisfiesAdjacency: every 4-neighbor pair of a solved grid is allowed,
// and every output window is the cell's pattern.
func (s *SolverSuite) TestSolvedSatisfiesAdjacency() {
	solved := 0
	for seed := int64(1); seed <= 100; seed++ {
		sv := s.newSolver(seed, 10, 10)
		if err := sv.Run(s.ctx); err != nil {
			require.ErrorIs(s.T(), err, solver.ErrContradiction)
			require.Equal(s.T(), solver.Failed, sv.State())
			_, cerr := sv.Compose()
			require.ErrorIs(s.T(), cerr, solver.ErrNotSolved)
			continue
		}
		solved++
		g := sv.Grid()
		require.True(s.T(), g.Solved())
		for idx := 0; idx < g.Len(); idx++ {
			id, ok := g.Resolved(idx)
			require.True(s.T(), ok)
			for _, d := range []rules.Direction{rules.Right, rules.Down} {
				nb, ok := g.Neighbor(idx, d)
				if !ok {
					continue
				}
				nid, _ := g.Resolved(nb)
				require.True(s.T(), s.rs.Allows(id, d, nid), "seed %d cell %d %s", seed, idx, d)
				require.True(s.T(), s.rs.Allows(nid, d.Opposite(), id))
			}
		}

		out, err := sv.Compose()
		require.NoError(s.T(), err)
		require.Len(s.T(), out, 10+1)
		for idx := 0; idx < g.Len(); idx++ {
			id, _ := g.Resolved(idx)
			x, y := g.Coordinate(idx)
			p := s.rs.Pattern(id)
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					require.Equal(s.T(), p.At(r, c), out[y+r][x+c], "seed %d overlap disagreement at cell %d", seed, idx)
				}
			}
		}
	}
	require.Positive(s.T(), solved, "no seed in 1..100 solved a 10×10 grid")
}

// TestHooks: OnCollapse fires once per collapse decision.
func (s *SolverSuite) TestHooks() {
	calls, fails := 0, 0
	opts := solver.DefaultOptions()
	opts.Width, opts.Height, opts.Seed = 6, 6, 9
	opts.OnCollapse = func(x, y, id int) {
		calls++
		require.True(s.T(), x >= 0 && x < 6 && y >= 0 && y < 6)
		require.True(s.T(), id >= 0 && id < s.rs.Len())
	}
	opts.OnContradiction = func(x, y int) { fails++ }
	sv, err := solver.New(s.rs, opts)
	require.NoError(s.T(), err)

	err = sv.Run(s.ctx)
	require.Equal(s.T(), sv.Collapses(), calls)
	if err != nil {
		require.Equal(s.T(), 1, fails)
	} else {
		require.Zero(s.T(), fails)
		require.Positive(s.T(), calls)
		require.LessOrEqual(s.T(), calls, 36)
	}
}

// TestCancelled: a cancelled context stops the loop without changing state.
func (s *SolverSuite) TestCancelled() {
	sv := s.newSolver(1, 4, 4)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	err := sv.Run(ctx)
	require.True(s.T(), errors.Is(err, context.Canceled))
	require.Equal(s.T(), solver.Initializing, sv.State())

	// the same solver resumes with a live context
	err = sv.Run(s.ctx)
	require.True(s.T(), err == nil || errors.Is(err, solver.ErrContradiction), "got %v", err)
}

// TestComposeBeforeSolved is rejected.
func (s *SolverSuite) TestComposeBeforeSolved() {
	sv := s.newSolver(1, 3, 3)
	_, err := sv.Compose()
	require.ErrorIs(s.T(), err, solver.ErrNotSolved)
	_, err = solver.Compose(s.rs, sv.Grid())
	require.ErrorIs(s.T(), err, solver.ErrNotSolved)
}

// TestStrategiesAgreeEndToEnd: the same seed yields the same outcome for both strategies.
func (s *SolverSuite) TestStrategiesAgreeEndToEnd() {
	for seed := int64(1); seed <= 15; seed++ {
		var outs [2][][]int
		var errs [2]error
		for i, strat := range []solver.Strategy{solver.Worklist, solver.FullSweep} {
			opts := solver.DefaultOptions()
			opts.Width, opts.Height, opts.Seed, opts.Strategy = 7, 7, seed, strat
			sv, err := solver.New(s.rs, opts)
			require.NoError(s.T(), err)
			errs[i] = sv.Run(s.ctx)
			if errs[i] == nil {
				outs[i], err = sv.Compose()
				require.NoError(s.T(), err)
			}
		}
		require.Equal(s.T(), errs[0] == nil, errs[1] == nil, "seed %d", seed)
		require.Equal(s.T(), outs[0], outs[1], "seed %d", seed)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestState_String covers names and the terminal predicate.
func TestState_String(t *testing.T) {
	require.Equal(t, "propagating", solver.Propagating.String())
	require.Equal(t, "unknown", solver.State(42).String())
	require.True(t, solver.Solved.Terminal())
	require.True(t, solver.Failed.Terminal())
	require.False(t, solver.Selecting.Terminal())
}
