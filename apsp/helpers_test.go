package apsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadapsp/matrix"
)

// edge is a directed weighted edge used to build fixtures.
type edge struct {
	u, v int
	w    float64
}

// fixtureEdges is the 4-vertex regression graph (no negative cycle).
var fixtureEdges = []edge{
	{0, 2, 3},
	{2, 3, 5},
	{0, 3, 0},
	{1, 0, -2},
	{1, 3, 1},
	{3, 1, 4},
}

// mustGraph builds an n-vertex graph from edges or fails the test.
func mustGraph(t *testing.T, n int, edges []edge) *matrix.WeightedAdjacency {
	t.Helper()
	g, err := matrix.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// rows dumps a square matrix into [][]float64 for whole-matrix assertions.
func rows(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// pathWeight sums consecutive edge weights along path in g.
func pathWeight(t *testing.T, g *matrix.WeightedAdjacency, path []int) float64 {
	t.Helper()
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		w, err := g.Weight(path[i], path[i+1])
		require.NoError(t, err)
		require.False(t, math.IsInf(w, 1), "path uses missing edge %d→%d", path[i], path[i+1])
		sum += w
	}

	return sum
}
