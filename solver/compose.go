package solver

import (
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/wave"
)

// Compose stitches a fully collapsed grid into a (Height+N−1)×(Width+N−1)
// raster. Cells are written in row-major order, each as its full N×N
// pattern at the cell's offset; later writes overwrite earlier ones in the
// overlap. Agreement across overlaps is left to the adjacency constraints.
//
// Returns ErrNotSolved if any cell is not collapsed, or an ErrInvalidInput
// error if g was not built for rs.
// Complexity: O(W·H·N²).
func Compose[T comparable](rs *rules.Ruleset[T], g *wave.Grid) ([][]T, error) {
	if g.Patterns != rs.Len() {
		return nil, invalid(wave.ErrOutOfRange)
	}
	if !g.Solved() {
		return nil, ErrNotSolved
	}
	n := rs.N()
	out := make([][]T, g.Height+n-1)
	for y := range out {
		out[y] = make([]T, g.Width+n-1)
	}
	for idx := 0; idx < g.Len(); idx++ {
		id, _ := g.Resolved(idx)
		p := rs.Pattern(id)
		x, y := g.Coordinate(idx)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				out[y+r][x+c] = p.At(r, c)
			}
		}
	}

	return out, nil
}
