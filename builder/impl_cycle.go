// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - Cycle() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits directed edges i → (i+1)%n for i=0..n-1, in that order.
//   • The result is strongly connected, which makes it a handy backbone
//     under RandomSparse when every pair must be reachable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadapsp/matrix"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that closes a directed ring over all vertices.
func Cycle() Constructor {
	return func(g *matrix.WeightedAdjacency, cfg builderConfig) error {
		n := g.Size()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
