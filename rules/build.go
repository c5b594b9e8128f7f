package rules

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfc/pattern"
)

// Ruleset bundles the pattern table with its adjacency relation.
// Both are immutable once Build returns.
type Ruleset[T comparable] struct {
	*Table[T]
	*Adjacency
	n int
}

// N returns the window size shared by every pattern.
func (rs *Ruleset[T]) N() int { return rs.n }

// Len returns the number of distinct patterns P.
func (rs *Ruleset[T]) Len() int { return rs.Table.Len() }

// FromSample extracts every n×n window of sample and builds its Ruleset.
// Sample errors are those of pattern.Extract.
func FromSample[T comparable](ctx context.Context, sample [][]T, n int, opts ...Option) (*Ruleset[T], error) {
	raw, err := pattern.Extract(sample, n)
	if err != nil {
		return nil, err
	}

	return Build(ctx, raw, opts...)
}

// Build registers each raw pattern's four rotations and derives the adjacency
// relation over all ordered pairs of distinct patterns (self-pairs included).
//
// Steps:
//  1. Validate: non-empty input, one shared window size.
//  2. Register rotations 0°, 90°, 180°, 270° of every raw pattern, in input order.
//  3. In parallel over rows id1: set Right/Down bits of id1 from OverlapsRight/OverlapsDown.
//  4. Serially mirror: id2 ∈ adj[id1][Right] ⇒ id1 ∈ adj[id2][Left]; Down ⇒ Up.
//
// Returns ErrNoPatterns, ErrMixedSizes, or ctx.Err() when cancelled.
// Complexity: O(R·N² + P²·N²) time, O(P²) bits of memory.
func Build[T comparable](ctx context.Context, raw []pattern.Pattern[T], opts ...Option) (*Ruleset[T], error) {
	if len(raw) == 0 {
		return nil, ErrNoPatterns
	}
	n := raw[0].Size()
	for _, p := range raw {
		if p.Size() != n {
			return nil, ErrMixedSizes
		}
	}
	cfg := newBuildConfig(opts...)

	tbl := newTable[T]()
	for _, p := range raw {
		for _, rot := range p.Rotations() {
			tbl.add(rot)
		}
	}

	adj := newAdjacency(tbl.Len())
	if err := forwardRelations(ctx, tbl, adj, cfg.workers); err != nil {
		return nil, err
	}
	mirrorRelations(adj)

	return &Ruleset[T]{Table: tbl, Adjacency: adj, n: n}, nil
}

// forwardRelations fills adj[id][Right] and adj[id][Down] for every id.
// Each task writes only its own row's sets, so no locking is needed.
func forwardRelations[T comparable](ctx context.Context, tbl *Table[T], adj *Adjacency, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for id1 := 0; id1 < tbl.Len(); id1++ {
		id1 := id1 // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p1 := tbl.patterns[id1]
			right, down := adj.sets[id1][Right], adj.sets[id1][Down]
			for id2, p2 := range tbl.patterns {
				if p1.OverlapsRight(p2) {
					right.Set(uint(id2))
				}
				if p1.OverlapsDown(p2) {
					down.Set(uint(id2))
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// mirrorRelations derives Left and Up from Right and Down.
func mirrorRelations(adj *Adjacency) {
	for id1 := range adj.sets {
		for _, d := range [2]Direction{Right, Down} {
			back := d.Opposite()
			set := adj.sets[id1][d]
			for id2, ok := set.NextSet(0); ok; id2, ok = set.NextSet(id2 + 1) {
				adj.sets[id2][back].Set(uint(id1))
			}
		}
	}
}
