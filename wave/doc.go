// Package wave holds the mutable state of a Wave Function Collapse run: a
// fixed Width×Height arena of cells, each holding its set of still-possible
// pattern ids ("the wave" at that cell).
//
// What:
//
//   - Cells are stored row-major (index = y·Width + x) and 4-connected; edge
//     cells have fewer neighbors (no wrap-around).
//   - Every cell starts with all pattern ids 0..P−1.
//   - Candidate sets only shrink: Intersect narrows, Collapse fixes one id
//     that must still be a candidate. No operation adds an id back.
//
// Cell states:
//
//   - Unresolved:    more than one candidate.
//   - Collapsed:     exactly one candidate.
//   - Contradiction: no candidates (terminal failure of the run).
//
// Concurrency:
//
//   - A Grid is owned by one solver; it is NOT safe for concurrent mutation.
//
// Errors:
//
//   - ErrBadDimensions: width or height < 1.
//   - ErrNoPatterns: pattern count < 1.
//   - ErrOutOfRange: coordinate or pattern id outside the grid/table.
//   - ErrNotCandidate: Collapse target was already eliminated.
package wave
