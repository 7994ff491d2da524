// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Works on an independent snapshot; the caller's graph is never mutated.
//
// Contract:
//   - +Inf means "no path"; the diagonal of the input is 0 by construction.
//   - Relaxation is strict (<): for ties the first k reaching the minimum wins.

package apsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadapsp/matrix"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest distances and predecessor split
// points for g.
//
// Implementation:
//   - Stage 1: D = snapshot of g's weights; P = diag 0, off-diagonal +Inf.
//   - Stage 2: for k, then i, then j: if D[i][k]+D[k][j] < D[i][j], relax and
//     record P[i][j] = k. Candidates through an unreachable leg (+Inf) are
//     skipped, so no Inf arithmetic and no NaN can occur.
//
// Errors: ErrNilGraph.
// Complexity: Time O(V³), extra space O(V²).
func FloydWarshall(g *matrix.WeightedAdjacency, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, ErrNilGraph)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	dist := g.Snapshot()

	var pred *matrix.Dense
	if o.Predecessors {
		var err error
		if pred, err = matrix.NewSquare(n, 0, noSplit); err != nil {
			return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
		}
	}

	relax(dist, pred, n)

	return &Result{Dist: dist, Pred: pred}, nil
}

// relax runs the k → i → j triple loop in place on the flat buffers.
// pred may be nil when predecessor tracking is disabled.
func relax(dist, pred *matrix.Dense, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	d := dist.Raw()
	var p []float64
	if pred != nil {
		p = pred.Raw()
	}

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < d[baseI+j] {
					d[baseI+j] = cand
					if p != nil {
						p[baseI+j] = float64(k)
					}
					if j == k {
						ik = cand // only when D[k][k] < 0
					}
				}
			}
		}
	}
}
