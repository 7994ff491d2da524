// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete() constructor: every ordered pair i≠j gets an edge.
// Emission order: i asc, j asc. Complexity: O(n²).

package builder

import "github.com/katalvlaran/roadapsp/matrix"

const methodComplete = "Complete"

// Complete returns a Constructor adding all n(n-1) directed edges.
func Complete() Constructor {
	return func(g *matrix.WeightedAdjacency, cfg builderConfig) error {
		n := g.Size()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
