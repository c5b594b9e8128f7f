package pattern

import (
	"fmt"
	"hash/fnv"
)

// Pattern is an immutable N×N block of symbols stored row-major.
// The zero value is an empty 0×0 pattern.
type Pattern[T comparable] struct {
	n     int
	cells []T
}

// New builds a Pattern from a square matrix. The input is deep-copied.
// Returns ErrEmptySample for an empty matrix and ErrNotSquare when any row
// length differs from the number of rows.
// Complexity: O(N²).
func New[T comparable](rows [][]T) (Pattern[T], error) {
	n := len(rows)
	if n == 0 {
		return Pattern[T]{}, ErrEmptySample
	}
	cells := make([]T, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return Pattern[T]{}, ErrNotSquare
		}
		cells = append(cells, row...)
	}

	return Pattern[T]{n: n, cells: cells}, nil
}

// window copies the n×n block of sample whose top-left corner is (x, y).
// The caller guarantees the block lies inside sample.
func window[T comparable](sample [][]T, x, y, n int) Pattern[T] {
	cells := make([]T, 0, n*n)
	for r := 0; r < n; r++ {
		cells = append(cells, sample[y+r][x:x+n]...)
	}

	return Pattern[T]{n: n, cells: cells}
}

// Size returns N.
func (p Pattern[T]) Size() int { return p.n }

// At returns the symbol at (row, col). It panics when out of range, like a
// slice index.
func (p Pattern[T]) At(row, col int) T {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		panic(fmt.Sprintf("pattern: At(%d,%d) out of range for %d×%d", row, col, p.n, p.n))
	}

	return p.cells[row*p.n+col]
}

// Rows returns a deep copy of the pattern as a [][]T.
func (p Pattern[T]) Rows() [][]T {
	out := make([][]T, p.n)
	for r := 0; r < p.n; r++ {
		out[r] = make([]T, p.n)
		copy(out[r], p.cells[r*p.n:(r+1)*p.n])
	}

	return out
}

// Rotate90 returns the pattern turned 90° clockwise:
// new[r][c] = old[n-1-c][r].
// Complexity: O(N²).
func (p Pattern[T]) Rotate90() Pattern[T] {
	n := p.n
	cells := make([]T, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells[r*n+c] = p.cells[(n-1-c)*n+r]
		}
	}

	return Pattern[T]{n: n, cells: cells}
}

// Rotate applies k clockwise quarter turns. Negative k turns counter-clockwise.
func (p Pattern[T]) Rotate(k int) Pattern[T] {
	k %= 4
	if k < 0 {
		k += 4
	}
	out := p
	for i := 0; i < k; i++ {
		out = out.Rotate90()
	}

	return out
}

// Rotations returns the pattern at 0°, 90°, 180° and 270° clockwise.
// Symmetric patterns yield repeated entries; deduplication is the caller's job.
func (p Pattern[T]) Rotations() [4]Pattern[T] {
	var out [4]Pattern[T]
	out[0] = p
	for k := 1; k < 4; k++ {
		out[k] = out[k-1].Rotate90()
	}

	return out
}

// Equal reports whether p and q have the same size and the same cells.
func (p Pattern[T]) Equal(q Pattern[T]) bool {
	if p.n != q.n {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != q.cells[i] {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a digest of the pattern's size and the %v
// rendering of each cell. Equal patterns always hash equally; unequal
// patterns may collide, so a hash match must be confirmed with Equal.
func (p Pattern[T]) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|", p.n)
	for _, v := range p.cells {
		fmt.Fprintf(h, "%v\x1f", v)
	}

	return h.Sum64()
}

// OverlapsRight reports whether q may sit immediately right of p: p with its
// first column removed equals q with its last column removed.
// Patterns of different sizes never overlap.
func (p Pattern[T]) OverlapsRight(q Pattern[T]) bool {
	if p.n != q.n {
		return false
	}
	n := p.n
	for r := 0; r < n; r++ {
		for c := 1; c < n; c++ {
			if p.cells[r*n+c] != q.cells[r*n+c-1] {
				return false
			}
		}
	}

	return true
}

// OverlapsDown reports whether q may sit immediately below p: p with its
// first row removed equals q with its last row removed.
func (p Pattern[T]) OverlapsDown(q Pattern[T]) bool {
	if p.n != q.n {
		return false
	}
	n := p.n
	for r := 1; r < n; r++ {
		for c := 0; c < n; c++ {
			if p.cells[r*n+c] != q.cells[(r-1)*n+c] {
				return false
			}
		}
	}

	return true
}

// String renders the pattern one row per line, for debugging and examples.
func (p Pattern[T]) String() string {
	var b []byte
	for r := 0; r < p.n; r++ {
		if r > 0 {
			b = append(b, '\n')
		}
		b = fmt.Append(b, p.cells[r*p.n:(r+1)*p.n])
	}

	return string(b)
}
