package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/rules"
)

// checker is a 5×5 diagonal-stripe exemplar shared by the package tests.
var checker = [][]int{
	{1, 1, 0, 0, 1},
	{1, 0, 0, 1, 1},
	{0, 0, 1, 1, 0},
	{0, 1, 1, 0, 0},
	{1, 1, 0, 0, 1},
}

// mustRules builds the rule set of sample with window n or fails the test.
func mustRules[T comparable](t testing.TB, sample [][]T, n int) *rules.Ruleset[T] {
	t.Helper()
	rs, err := rules.FromSample(context.Background(), sample, n, rules.WithWorkers(2))
	require.NoError(t, err)
	return rs
}
