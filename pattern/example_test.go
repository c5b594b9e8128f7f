package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/pattern"
)

// ExampleExtract shows the overlapping 2×2 windows of a 2×3 sample.
func ExampleExtract() {
	sample := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	ps, _ := pattern.Extract(sample, 2)
	for i, p := range ps {
		fmt.Printf("window %d:\n%s\n", i, p)
	}

	// Output:
	// window 0:
	// [1 2]
	// [4 5]
	// window 1:
	// [2 3]
	// [5 6]
}

// ExamplePattern_Rotate90 turns a pattern clockwise.
func ExamplePattern_Rotate90() {
	p, _ := pattern.New([][]int{
		{1, 1},
		{0, 0},
	})
	fmt.Println(p.Rotate90())

	// Output:
	// [0 1]
	// [0 1]
}
