package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wfc/solver"
)

// ExampleGenerate grows a 12×12 raster from a 5×5 diagonal-stripe exemplar.
// Every 2×2 window of the exemplar holds an odd number of 1s, and so does
// every window of the output.
func ExampleGenerate() {
	sample := [][]int{
		{1, 1, 0, 0, 1},
		{1, 0, 0, 1, 1},
		{0, 0, 1, 1, 0},
		{0, 1, 1, 0, 0},
		{1, 1, 0, 0, 1},
	}
	var out [][]int
	var err error
	for attempt := uint64(0); attempt < 10; attempt++ {
		out, err = solver.Generate(sample, 2, 10, 10, solver.DeriveSeed(42, attempt))
		if !errors.Is(err, solver.ErrContradiction) {
			break
		}
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	odd := true
	for y := 0; y+1 < len(out); y++ {
		for x := 0; x+1 < len(out[y]); x++ {
			ones := out[y][x] + out[y][x+1] + out[y+1][x] + out[y+1][x+1]
			odd = odd && ones%2 == 1
		}
	}
	fmt.Printf("size: %d×%d\n", len(out), len(out[0]))
	fmt.Println("every window odd:", odd)

	// Output:
	// size: 11×11
	// every window odd: true
}

// ExampleGenerate_contradiction shows the failure mode: no pattern of this
// exemplar can border another, so two cells can never be filled.
func ExampleGenerate_contradiction() {
	sample := [][]int{
		{1, 2},
		{3, 4},
	}
	out, err := solver.Generate(sample, 2, 2, 1, 7)
	fmt.Println(out == nil, errors.Is(err, solver.ErrContradiction))

	// Output:
	// true true
}
