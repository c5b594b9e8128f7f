package rules_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wfc/rules"
)

// BenchmarkFromSample measures rule building for a random 32×32 sample with
// three symbols and N=3 (hundreds of distinct patterns).
func BenchmarkFromSample(b *testing.B) {
	const size = 32
	rng := rand.New(rand.NewSource(42))
	sample := make([][]int, size)
	for y := range sample {
		sample[y] = make([]int, size)
		for x := range sample[y] {
			sample[y][x] = rng.Intn(3)
		}
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rules.FromSample(ctx, sample, 3); err != nil {
			b.Fatalf("FromSample: %v", err)
		}
	}
}
