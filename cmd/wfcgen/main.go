// Command wfcgen grows a larger text raster from a small exemplar using
// overlapping-model Wave Function Collapse.
//
//	wfcgen -n 2 --width 20 --height 10 --seed 7 --input sample.txt
package main

import (
	"os"

	"github.com/katalvlaran/wfc/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
