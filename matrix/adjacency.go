// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - WeightedAdjacency: dense directed graph storage with O(1) edge lookup/update.
//
// Contract:
//   - Vertices are dense ints in [0, Size()).
//   - W[i][i] = 0; W[i][j] = +Inf means "no edge".
//   - AddEdge overwrites (last write wins); there are no multi-edges.
//   - Finite weights of any sign are legal; +Inf restores "no edge";
//     NaN and -Inf are rejected with ErrInvalidWeight.

package matrix

import (
	"fmt"
	"math"
)

const (
	opNew       = "WeightedAdjacency.New"
	opAddEdge   = "WeightedAdjacency.AddEdge"
	opWeight    = "WeightedAdjacency.Weight"
	opFromDense = "matrix.FromDense"
)

// WeightedAdjacency is a V×V matrix of directed edge weights.
// It exclusively owns its backing storage.
type WeightedAdjacency struct {
	w *Dense
}

// New allocates a size×size adjacency matrix with no edges:
// 0 on the diagonal, +Inf elsewhere.
// Returns ErrInvalidSize if size <= 0.
// Complexity: O(size²) time and memory.
func New(size int) (*WeightedAdjacency, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opNew, size, ErrInvalidSize)
	}
	w, err := NewSquare(size, 0, math.Inf(1))
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &WeightedAdjacency{w: w}, nil
}

// Size returns the vertex count V.
func (g *WeightedAdjacency) Size() int { return g.w.r }

// checkVertex validates 0 <= v < V.
func (g *WeightedAdjacency) checkVertex(v int) error {
	if v < 0 || v >= g.w.r {
		return ErrOutOfRange
	}

	return nil
}

// AddEdge sets W[u][v] = weight, overwriting any previous value.
//
// Errors:
//   - ErrOutOfRange if u or v is outside [0, Size()).
//   - ErrInvalidWeight if weight is NaN or -Inf.
//
// Complexity: O(1).
func (g *WeightedAdjacency) AddEdge(u, v int, weight float64) error {
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("%s(%d→%d): source: %w", opAddEdge, u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("%s(%d→%d): target: %w", opAddEdge, u, v, err)
	}
	if math.IsNaN(weight) || math.IsInf(weight, -1) {
		return fmt.Errorf("%s(%d→%d, w=%g): %w", opAddEdge, u, v, weight, ErrInvalidWeight)
	}
	g.w.data[u*g.w.c+v] = weight

	return nil
}

// Weight returns the current W[u][v]; +Inf when there is no edge.
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (g *WeightedAdjacency) Weight(u, v int) (float64, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", opWeight, u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", opWeight, u, v, err)
	}

	return g.w.data[u*g.w.c+v], nil
}

// HasEdge reports whether u→v carries a finite weight.
// Out-of-range indices and diagonal cells report false.
func (g *WeightedAdjacency) HasEdge(u, v int) bool {
	if u == v {
		return false
	}
	w, err := g.Weight(u, v)

	return err == nil && !math.IsInf(w, 1)
}

// EdgeCount returns the number of off-diagonal cells holding a finite weight.
// Complexity: O(V²).
func (g *WeightedAdjacency) EdgeCount() int {
	n := g.w.r
	var i, j, cnt int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !math.IsInf(g.w.data[i*n+j], 1) {
				cnt++
			}
		}
	}

	return cnt
}

// Snapshot returns an independent copy of the weight matrix.
// Algorithms that need to mutate weights MUST work on a snapshot.
// Complexity: O(V²).
func (g *WeightedAdjacency) Snapshot() *Dense {
	return g.w.Clone()
}

// FromDense builds a WeightedAdjacency by copying a square matrix.
// Every cell is validated with the AddEdge weight policy; the diagonal is
// copied as is.
func FromDense(d *Dense) (*WeightedAdjacency, error) {
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	for i, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return nil, fmt.Errorf("%s: cell (%d,%d)=%g: %w", opFromDense, i/d.c, i%d.c, v, ErrInvalidWeight)
		}
	}

	return &WeightedAdjacency{w: d.Clone()}, nil
}

// String prints one row per line, the debugging dump of the weight matrix.
func (g *WeightedAdjacency) String() string { return g.w.String() }
