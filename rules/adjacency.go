package rules

import "github.com/bits-and-blooms/bitset"

// Adjacency is the directional compatibility relation between pattern ids.
// sets[id][dir] holds every id allowed immediately in direction dir of id.
// It is read-only after Build.
type Adjacency struct {
	size int
	sets [][4]*bitset.BitSet
}

// newAdjacency allocates empty sets for p patterns.
func newAdjacency(p int) *Adjacency {
	a := &Adjacency{size: p, sets: make([][4]*bitset.BitSet, p)}
	for id := range a.sets {
		for _, d := range Directions {
			a.sets[id][d] = bitset.New(uint(p))
		}
	}

	return a
}

// Len returns the number of pattern ids covered.
func (a *Adjacency) Len() int { return a.size }

// Allows reports whether to may sit immediately in direction dir of from.
// Out-of-range ids are never allowed.
func (a *Adjacency) Allows(from int, dir Direction, to int) bool {
	if from < 0 || from >= a.size || to < 0 || to >= a.size {
		return false
	}

	return a.sets[from][dir].Test(uint(to))
}

// Allowed lists, in ascending order, the ids allowed in direction dir of id.
func (a *Adjacency) Allowed(id int, dir Direction) []int {
	set := a.sets[id][dir]
	out := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// UnionInto adds to dst every id allowed in direction dir of any id in src:
// dst ∪= ⋃_{id ∈ src} adj[id][dir]. src is not modified.
// Complexity: O(|src|·P/64).
func (a *Adjacency) UnionInto(dst, src *bitset.BitSet, dir Direction) {
	for i, ok := src.NextSet(0); ok; i, ok = src.NextSet(i + 1) {
		if int(i) >= a.size {
			break
		}
		dst.InPlaceUnion(a.sets[i][dir])
	}
}
