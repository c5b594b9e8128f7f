// Package solver runs Wave Function Collapse (overlapping model) over a
// wave.Grid using the rules derived from an exemplar.
//
// What:
//
//   - Propagator narrows candidate sets to the unique propagation fixpoint,
//     either with a worklist (default) or with repeated full sweeps.
//   - Collapser picks the unresolved cell of lowest entropy (ties uniformly
//     at random) and fixes it to one pattern drawn proportionally to pattern
//     frequency.
//   - Solver drives the state machine
//     Initializing → Selecting ⇄ Propagating → Solved | Failed,
//     one collapse followed by one full propagation per cycle.
//   - Compose stitches a solved grid into the output raster.
//   - Generate is the one-call entry point: sample in, raster out.
//
// Determinism:
//
//   - All randomness comes from one *rand.Rand seeded from Options.Seed and
//     threaded through the Collapser. Same sample, N, size and seed ⇒ same
//     raster or same contradiction.
//
// Failure:
//
//   - A contradiction (empty candidate set) aborts the run immediately with an
//     error matching ErrContradiction; no partial output is produced. There
//     is no backtracking: retrying with a different seed is up to the caller.
//   - Precondition violations match ErrInvalidInput and are reported before
//     any solving begins.
//
// Concurrency:
//
//   - A Solver and its grid are single-goroutine. Separate Solvers may share
//     one rules.Ruleset.
//
// Complexity (C cells, P patterns):
//
//   - Worklist propagation: O(C·P·P/64) worst case per run.
//   - Selection:            O(C) per collapse.
package solver
