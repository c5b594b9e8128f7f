// Package rules turns extracted patterns into the immutable rule set that
// drives Wave Function Collapse: a pattern table (id → pattern, frequency)
// and a directional adjacency relation.
//
// What:
//
//   - Every raw pattern is registered with its four rotations; each occurrence
//     increments that distinct pattern's frequency.
//   - Ids are dense (0..P−1) and assigned in first-registration order, so a
//     given input always yields the same ids.
//   - Adjacency[id][dir] holds the ids allowed immediately in direction dir of
//     id, decided by exact equality of the shared (N−1) border. The relation is
//     symmetric: b ∈ adj[a][Right] ⇔ a ∈ adj[b][Left], and likewise Down/Up.
//
// Concurrency:
//
//   - Build computes the forward (Right, Down) relations in parallel, one
//     pattern row per task, then mirrors them serially. Output is identical
//     for every worker count.
//   - A built Ruleset is read-only and safe for concurrent readers.
//
// Complexity:
//
//   - Registration: O(R·N²) for R raw patterns (hash + verify).
//   - Adjacency:    O(P²·N²) time, O(P²/64) memory (bitsets).
//
// Errors:
//
//   - ErrNoPatterns: no raw patterns were supplied.
//   - ErrMixedSizes: raw patterns do not share one window size.
package rules
