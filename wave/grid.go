package wave

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/wfc/rules"
)

// Grid is a Width×Height arena of candidate sets over pattern ids 0..Patterns−1.
type Grid struct {
	Width, Height int
	Patterns      int
	cells         []*bitset.BitSet
}

// New builds a grid where every cell holds all pattern ids.
// Returns ErrBadDimensions if width or height < 1, ErrNoPatterns if patterns < 1.
// Complexity: O(W·H·P/64) time and memory.
func New(width, height, patterns int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	if patterns < 1 {
		return nil, ErrNoPatterns
	}
	full := bitset.New(uint(patterns))
	for i := 0; i < patterns; i++ {
		full.Set(uint(i))
	}
	cells := make([]*bitset.BitSet, width*height)
	for i := range cells {
		cells[i] = full.Clone()
	}

	return &Grid{Width: width, Height: height, Patterns: patterns, cells: cells}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index y·Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Neighbor returns the index of the cell in direction dir of idx, or
// ok=false at the grid edge.
func (g *Grid) Neighbor(idx int, dir rules.Direction) (int, bool) {
	x, y := g.Coordinate(idx)
	dx, dy := dir.Offset()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return -1, false
	}

	return g.Index(nx, ny), true
}

// Candidates returns a copy of the candidate set at (x,y).
// Returns nil when (x,y) is out of bounds.
func (g *Grid) Candidates(x, y int) *bitset.BitSet {
	if !g.InBounds(x, y) {
		return nil
	}

	return g.cells[g.Index(x, y)].Clone()
}

// Set exposes the live candidate set at idx. Callers MUST NOT modify it;
// mutation goes through Intersect and Collapse so sets only ever shrink.
func (g *Grid) Set(idx int) *bitset.BitSet {
	return g.cells[idx]
}

// Entropy returns the number of candidates at idx.
func (g *Grid) Entropy(idx int) int {
	return int(g.cells[idx].Count())
}

// Intersect narrows the set at idx to its intersection with mask and reports
// whether any candidate was removed. Ids never reappear.
// Complexity: O(P/64).
func (g *Grid) Intersect(idx int, mask *bitset.BitSet) bool {
	cell := g.cells[idx]
	before := cell.Count()
	cell.InPlaceIntersection(mask)

	return cell.Count() != before
}

// Collapse fixes the cell at (x,y) to the single pattern id.
// Returns ErrOutOfRange for a bad coordinate or id and ErrNotCandidate when
// id was already eliminated from the cell.
func (g *Grid) Collapse(x, y, id int) error {
	if !g.InBounds(x, y) || id < 0 || id >= g.Patterns {
		return ErrOutOfRange
	}
	cell := g.cells[g.Index(x, y)]
	if !cell.Test(uint(id)) {
		return ErrNotCandidate
	}
	cell.ClearAll()
	cell.Set(uint(id))

	return nil
}

// IsCollapsed reports whether idx holds exactly one candidate.
func (g *Grid) IsCollapsed(idx int) bool { return g.cells[idx].Count() == 1 }

// IsContradiction reports whether idx holds no candidates.
func (g *Grid) IsContradiction(idx int) bool { return g.cells[idx].None() }

// Resolved returns the single pattern id at idx, or ok=false if the cell is
// not collapsed.
func (g *Grid) Resolved(idx int) (int, bool) {
	if !g.IsCollapsed(idx) {
		return -1, false
	}
	id, _ := g.cells[idx].NextSet(0)

	return int(id), true
}

// Unresolved lists, in row-major order, the indices of cells with more than
// one candidate.
// Complexity: O(W·H·P/64).
func (g *Grid) Unresolved() []int {
	var out []int
	for i, c := range g.cells {
		if c.Count() > 1 {
			out = append(out, i)
		}
	}

	return out
}

// Solved reports whether every cell is collapsed.
func (g *Grid) Solved() bool {
	for _, c := range g.cells {
		if c.Count() != 1 {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]*bitset.BitSet, len(g.cells))
	for i, c := range g.cells {
		cells[i] = c.Clone()
	}

	return &Grid{Width: g.Width, Height: g.Height, Patterns: g.Patterns, cells: cells}
}

// Entropies returns the candidate count of every cell in row-major order.
func (g *Grid) Entropies() []int {
	out := make([]int, len(g.cells))
	for i := range g.cells {
		out[i] = g.Entropy(i)
	}

	return out
}
