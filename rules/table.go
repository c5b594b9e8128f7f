package rules

import "github.com/katalvlaran/wfc/pattern"

// Table maps dense pattern ids to distinct patterns and their frequencies.
// Lookup goes through a hash bucket and is confirmed by structural equality,
// so hash collisions never merge two distinct patterns.
type Table[T comparable] struct {
	patterns []pattern.Pattern[T]
	freq     []int
	buckets  map[uint64][]int
}

// newTable returns an empty table.
func newTable[T comparable]() *Table[T] {
	return &Table[T]{buckets: make(map[uint64][]int)}
}

// add registers one occurrence of p and returns its id.
// Complexity: O(N²·b) where b is the bucket length (almost always 1).
func (t *Table[T]) add(p pattern.Pattern[T]) int {
	h := p.Hash()
	for _, id := range t.buckets[h] {
		if t.patterns[id].Equal(p) {
			t.freq[id]++
			return id
		}
	}
	id := len(t.patterns)
	t.patterns = append(t.patterns, p)
	t.freq = append(t.freq, 1)
	t.buckets[h] = append(t.buckets[h], id)

	return id
}

// Len returns the number of distinct patterns P.
func (t *Table[T]) Len() int { return len(t.patterns) }

// Pattern returns the pattern with the given id. Panics if id is out of range.
func (t *Table[T]) Pattern(id int) pattern.Pattern[T] { return t.patterns[id] }

// Frequency returns how many times pattern id occurred across all extracted,
// rotated patterns. Panics if id is out of range.
func (t *Table[T]) Frequency(id int) int { return t.freq[id] }

// Lookup returns the id of a pattern equal to p.
func (t *Table[T]) Lookup(p pattern.Pattern[T]) (int, bool) {
	for _, id := range t.buckets[p.Hash()] {
		if t.patterns[id].Equal(p) {
			return id, true
		}
	}

	return -1, false
}
