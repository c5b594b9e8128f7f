// Package wfc grows large rasters (tile maps, textures) from a small
// exemplar with the overlapping-model Wave Function Collapse algorithm: the
// output reproduces, everywhere, the exemplar's local N×N neighborhoods.
//
// What is inside:
//
//	pattern/ — N×N windows: extraction, clockwise rotation, border overlap
//	rules/   — pattern table (ids, frequencies) and directional adjacency
//	wave/    — the grid of candidate sets the solver narrows
//	solver/  — propagation, entropy-guided collapse, the solve loop,
//	           composition of the output, and the Generate entry point
//	cmd/wfcgen — a small CLI that reads a text exemplar and prints a raster
//
// Pipeline:
//
//	sample ─Extract→ windows ─Build→ Ruleset ─New→ Solver
//	       ─Run (collapse ⇄ propagate)→ Solved ─Compose→ raster
//
// Quick start:
//
//	out, err := solver.Generate(sample, 2, 32, 32, seed)
//	if errors.Is(err, solver.ErrContradiction) {
//		// dead end: retry with another seed
//	}
//
// Runs are deterministic for a fixed sample, N, size and seed. Contradictions
// are a normal outcome; there is no backtracking.
package wfc
