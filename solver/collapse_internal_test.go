package solver

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

// TestPickAt_InclusiveBoundary: a draw equal to a cumulative weight selects
// that id, not the next one.
func TestPickAt_InclusiveBoundary(t *testing.T) {
	c := &Collapser{weights: []int{2, 3, 5}}
	set := bitset.New(3).Set(0).Set(1).Set(2)

	cases := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{1.5, 0},
		{2, 0}, // == cumulative weight of id 0
		{2.0001, 1},
		{5, 1}, // == cumulative weight of ids 0,1
		{9.99, 2},
		{10, 2}, // == total
		{10.5, 2},
	}
	for _, tc := range cases {
		got, ok := c.pickAt(set, tc.r)
		assert.True(t, ok)
		assert.Equal(t, tc.want, got, "r=%v", tc.r)
	}
}

// TestPickAt_SkipsMissing: ids outside the set contribute no weight.
func TestPickAt_SkipsMissing(t *testing.T) {
	c := &Collapser{weights: []int{2, 3, 5}}
	set := bitset.New(3).Set(0).Set(2)

	got, _ := c.pickAt(set, 2.5)
	assert.Equal(t, 2, got)
	_, ok := c.pickAt(bitset.New(3), 0)
	assert.False(t, ok)
}
