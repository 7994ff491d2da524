// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j:
//     include i→j independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. One Bernoulli draw per pair,
//     followed by one weight draw for included pairs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadapsp/matrix"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling directed edges with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *matrix.WeightedAdjacency, cfg builderConfig) error {
		if p < probMin || p > probMax || p != p {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		n := g.Size()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				// p == 1 is deterministic and never consumes the RNG for trials.
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
