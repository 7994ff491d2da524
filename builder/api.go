// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Allocates the matrix, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadapsp/matrix"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(g *matrix.WeightedAdjacency, cfg builderConfig) error

// Build allocates an n-vertex matrix.WeightedAdjacency, resolves opts and
// applies all constructors in order. Any error is wrapped with "Build: %w";
// no partial graph is returned.
//
// Errors: matrix.ErrInvalidSize for n <= 0, ErrConstructFailed for a nil
// constructor, and whatever a constructor reports.
// Complexity: O(n²) allocation plus Σ constructor cost.
func Build(n int, opts []Option, cons ...Constructor) (*matrix.WeightedAdjacency, error) {
	g, err := matrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u→v with a fresh weight and wraps failures with the method tag.
func addEdge(method string, g *matrix.WeightedAdjacency, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
