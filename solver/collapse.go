package solver

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/wfc/wave"
)

// Collapser chooses the next cell to resolve and the pattern it resolves to.
// It holds the run's only random source.
type Collapser struct {
	weights []int
	rng     *rand.Rand
	ties    []int
}

// NewCollapser builds a Collapser drawing patterns with probability
// proportional to weights[id]. rng must not be shared with other goroutines.
func NewCollapser(weights []int, rng *rand.Rand) *Collapser {
	return &Collapser{weights: weights, rng: rng}
}

// Select returns the unresolved cell with the fewest candidates. Ties are
// broken by a single uniform draw over all tied cells, in row-major order.
// ok is false when no unresolved cell remains.
// Complexity: O(W·H·P/64).
func (c *Collapser) Select(g *wave.Grid) (idx int, ok bool) {
	best := int(^uint(0) >> 1)
	c.ties = c.ties[:0]
	for i := 0; i < g.Len(); i++ {
		e := g.Entropy(i)
		if e <= 1 {
			continue
		}
		if e < best {
			best = e
			c.ties = c.ties[:0]
		}
		if e == best {
			c.ties = append(c.ties, i)
		}
	}
	if len(c.ties) == 0 {
		return -1, false
	}

	return c.ties[c.rng.Intn(len(c.ties))], true
}

// Pick draws one id from set, weighted by frequency. ok is false for an
// empty set.
func (c *Collapser) Pick(set *bitset.BitSet) (id int, ok bool) {
	total := 0
	for i, more := set.NextSet(0); more; i, more = set.NextSet(i + 1) {
		total += c.weights[i]
	}

	return c.pickAt(set, c.rng.Float64()*float64(total))
}

// pickAt returns the first id, in ascending order, whose cumulative weight is
// ≥ r. A draw equal to a cumulative weight selects that id. Rounding past the
// total falls back to the last id.
func (c *Collapser) pickAt(set *bitset.BitSet, r float64) (int, bool) {
	last, acc := -1, 0
	for i, more := set.NextSet(0); more; i, more = set.NextSet(i + 1) {
		acc += c.weights[i]
		last = int(i)
		if r <= float64(acc) {
			return last, true
		}
	}

	return last, last >= 0
}

// Collapse selects a cell and fixes it to a drawn pattern. It returns the
// cell's index and the chosen id, or ok=false when the grid has no
// unresolved cell left.
func (c *Collapser) Collapse(g *wave.Grid) (idx, id int, ok bool, err error) {
	idx, ok = c.Select(g)
	if !ok {
		return -1, -1, false, nil
	}
	id, _ = c.Pick(g.Set(idx))
	x, y := g.Coordinate(idx)
	if err = g.Collapse(x, y, id); err != nil {
		return idx, id, false, err
	}

	return idx, id, true, nil
}
