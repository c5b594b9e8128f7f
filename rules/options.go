// SPDX-License-Identifier: MIT
// Package: wfc/rules
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics on user data.
//   • Later options override earlier ones.

package rules

import "runtime"

// Option customizes Build by mutating a buildConfig before work begins.
type Option func(*buildConfig)

// buildConfig aggregates the Build knobs. Passed by value once resolved.
type buildConfig struct {
	// workers bounds concurrent adjacency tasks; always ≥ 1.
	workers int
}

// newBuildConfig resolves defaults and applies opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of goroutines computing adjacency rows.
// workers == 1 runs the computation on a single goroutine.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic("rules: WithWorkers(workers < 1)")
	}
	return func(c *buildConfig) {
		c.workers = workers
	}
}
