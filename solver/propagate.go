package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/wave"
)

// Propagator enforces local consistency on a grid: every neighbor of a cell
// may only keep patterns that some candidate of the cell allows in that
// direction. It reuses its scratch buffers across calls, so one Propagator
// serves one grid at a time.
type Propagator struct {
	adj      *rules.Adjacency
	strategy Strategy
	maxSteps int

	union  *bitset.BitSet
	queue  []int
	queued []bool
}

// NewPropagator builds a Propagator over adj. maxSteps caps source-cell
// visits per Propagate call; 0 derives the bound from the grid size.
func NewPropagator(adj *rules.Adjacency, strategy Strategy, maxSteps int) *Propagator {
	return &Propagator{
		adj:      adj,
		strategy: strategy,
		maxSteps: maxSteps,
		union:    bitset.New(uint(adj.Len())),
	}
}

// Propagate narrows g until no candidate set can shrink further.
//
// seeds lists the cells whose sets changed since the last fixpoint; with no
// seeds every cell is a source. FullSweep ignores seeds and always sweeps the
// whole grid.
//
// Returns the number of narrowing events, and a *ContradictionError (matching
// ErrContradiction) as soon as any set becomes empty, or ErrPropagationLimit
// when the step cap is hit. On a grid already at its fixpoint it returns 0
// and changes nothing.
func (p *Propagator) Propagate(g *wave.Grid, seeds ...int) (int, error) {
	if p.strategy == FullSweep {
		return p.sweep(g)
	}

	return p.worklist(g, seeds)
}

// narrow intersects every neighbor of src with the union of what src allows
// in that direction. changed receives each neighbor that lost candidates.
func (p *Propagator) narrow(g *wave.Grid, src int, changed func(nb int)) (int, error) {
	set := g.Set(src)
	if set.None() {
		x, y := g.Coordinate(src)
		return 0, &ContradictionError{X: x, Y: y}
	}
	narrowed := 0
	for _, d := range rules.Directions {
		nb, ok := g.Neighbor(src, d)
		if !ok {
			continue
		}
		p.union.ClearAll()
		p.adj.UnionInto(p.union, set, d)
		if !g.Intersect(nb, p.union) {
			continue
		}
		narrowed++
		if g.IsContradiction(nb) {
			x, y := g.Coordinate(nb)
			return narrowed, &ContradictionError{X: x, Y: y}
		}
		changed(nb)
	}

	return narrowed, nil
}

// worklist visits only cells whose sets changed. Each cell can be enqueued at
// most once per lost candidate plus once as a seed, which bounds the default
// step cap at cells·(P+1).
func (p *Propagator) worklist(g *wave.Grid, seeds []int) (int, error) {
	limit := p.maxSteps
	if limit == 0 {
		limit = g.Len() * (g.Patterns + 1)
	}
	if len(p.queued) != g.Len() {
		p.queued = make([]bool, g.Len())
	}
	p.queue = p.queue[:0]
	defer p.reset()

	push := func(idx int) {
		if !p.queued[idx] {
			p.queued[idx] = true
			p.queue = append(p.queue, idx)
		}
	}
	if len(seeds) == 0 {
		for idx := 0; idx < g.Len(); idx++ {
			push(idx)
		}
	}
	for _, idx := range seeds {
		push(idx)
	}

	total, steps := 0, 0
	for head := 0; head < len(p.queue); head++ {
		steps++
		if steps > limit {
			return total, ErrPropagationLimit
		}
		src := p.queue[head]
		p.queued[src] = false
		n, err := p.narrow(g, src, push)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// reset clears queue flags left behind by an aborted run.
func (p *Propagator) reset() {
	for _, idx := range p.queue {
		p.queued[idx] = false
	}
	p.queue = p.queue[:0]
}

// sweep repeats row-major passes over every cell until one pass narrows
// nothing. Every productive pass removes at least one candidate, so the
// default cap is cells·(cells·P+1) visits.
func (p *Propagator) sweep(g *wave.Grid) (int, error) {
	limit := p.maxSteps
	if limit == 0 {
		limit = g.Len() * (g.Len()*g.Patterns + 1)
	}
	noop := func(int) {}

	total, steps := 0, 0
	for {
		pass := 0
		for idx := 0; idx < g.Len(); idx++ {
			steps++
			if steps > limit {
				return total, ErrPropagationLimit
			}
			n, err := p.narrow(g, idx, noop)
			pass += n
			if err != nil {
				return total + pass, err
			}
		}
		total += pass
		if pass == 0 {
			return total, nil
		}
	}
}
