package solver

// State is a phase of the solver loop.
type State int

const (
	// Initializing: grid freshly built, not yet at a fixpoint.
	Initializing State = iota
	// Selecting: grid at a fixpoint; the next step collapses one cell.
	Selecting
	// Propagating: one cell was just collapsed; the next step propagates.
	Propagating
	// Solved: every cell is collapsed. Terminal.
	Solved
	// Failed: a contradiction or propagation limit aborted the run. Terminal.
	Failed
)

var stateNames = [...]string{"initializing", "selecting", "propagating", "solved", "failed"}

func (s State) String() string {
	if s < Initializing || s > Failed {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == Solved || s == Failed }
