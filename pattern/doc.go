// Package pattern provides square N×N symbol windows ("patterns") cut from an
// exemplar raster, together with the geometric operations the rule builder
// needs.
//
// What:
//
//   - Pattern[T] is an immutable N×N matrix over any comparable symbol type.
//   - Extract slides an N×N window over a sample, returning every overlapping
//     window in row-major offset order (duplicates included).
//   - Rotate90 turns a pattern 90° clockwise; four turns are the identity.
//   - OverlapsRight / OverlapsDown compare the shared (N−1)-wide border of two
//     patterns.
//
// Identity:
//
//   - Two patterns are the same when their cells are equal. Hash buckets
//     patterns; callers MUST confirm a hash match with Equal.
//
// Complexity:
//
//   - Extract:  O((H−N+1)·(W−N+1)·N²) time and memory.
//   - Rotate90: O(N²).
//   - Overlaps: O(N²) worst case, early exit on first mismatch.
//
// Errors:
//
//   - ErrEmptySample: sample has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWindowSize: N < 1 or N > min(H, W).
package pattern
