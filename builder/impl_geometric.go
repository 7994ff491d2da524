// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_geometric.go - Geometric(coords, maxMeters) constructor.
//
// Contract:
//   • len(coords) == n (else ErrCoordCount).
//   • maxMeters ≥ 0 (else ErrConstructFailed).
//   • Every unordered pair {i,j} whose haversine distance is ≤ maxMeters is
//     joined in both directions with that distance as weight. cfg.weightFn
//     is ignored: the geometry decides the weight, as in TMG road graphs.
//
// Complexity: O(n²) haversine evaluations.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/roadapsp/geo"
	"github.com/katalvlaran/roadapsp/matrix"
)

const methodGeometric = "Geometric"

// Geometric returns a Constructor linking points closer than maxMeters.
func Geometric(coords []geo.Coord, maxMeters float64) Constructor {
	return func(g *matrix.WeightedAdjacency, _ builderConfig) error {
		n := g.Size()
		if len(coords) != n {
			return fmt.Errorf("%s: %d coords for %d vertices: %w", methodGeometric, len(coords), n, ErrCoordCount)
		}
		if maxMeters < 0 || math.IsNaN(maxMeters) {
			return fmt.Errorf("%s: maxMeters=%g: %w", methodGeometric, maxMeters, ErrConstructFailed)
		}

		var (
			i, j int
			d    float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d = geo.Distance(coords[i], coords[j])
				if d > maxMeters {
					continue
				}
				if err := g.AddEdge(i, j, d); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodGeometric, i, j, err)
				}
				if err := g.AddEdge(j, i, d); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodGeometric, j, i, err)
				}
			}
		}

		return nil
	}
}

// RandomCoords draws n points uniformly inside the box [minLat,maxLat]×[minLng,maxLng].
// Deterministic for a seeded rng. Returns nil if n <= 0 or rng is nil.
func RandomCoords(rng *rand.Rand, n int, minLat, maxLat, minLng, maxLng float64) []geo.Coord {
	if n <= 0 || rng == nil {
		return nil
	}
	out := make([]geo.Coord, n)
	for i := range out {
		out[i] = geo.Coord{
			Lat: minLat + rng.Float64()*(maxLat-minLat),
			Lng: minLng + rng.Float64()*(maxLng-minLng),
		}
	}

	return out
}
