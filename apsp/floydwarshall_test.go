package apsp_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roadapsp/apsp"
	"github.com/katalvlaran/roadapsp/builder"
	"github.com/katalvlaran/roadapsp/matrix"
)

var inf = math.Inf(1)

func TestFloydWarshall_NilGraph(t *testing.T) {
	res, err := apsp.FloydWarshall(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apsp.ErrNilGraph)
}

func TestFloydWarshall_RegressionFixture(t *testing.T) {
	g := mustGraph(t, 4, fixtureEdges)

	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 4, 3, 0},
		{-2, 0, 1, -2},
		{7, 9, 0, 5},
		{2, 4, 5, 0},
	}, rows(t, res.Dist))

	assert.Equal(t, [][]float64{
		{0, 3, inf, inf},
		{inf, 0, 0, 0},
		{3, 3, 0, inf},
		{1, inf, 1, 0},
	}, rows(t, res.Pred))

	assert.False(t, res.HasNegativeCycle())
	assert.Empty(t, res.NegativeCycleVertices())
}

func TestFloydWarshall_DoesNotMutateInput(t *testing.T) {
	g := mustGraph(t, 4, fixtureEdges)
	before := g.Snapshot()

	_, err := apsp.FloydWarshall(g)
	require.NoError(t, err)

	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			want, _ := before.At(u, v)
			got, err := g.Weight(u, v)
			require.NoError(t, err)
			assert.Equal(t, want, got, "weight(%d,%d) changed", u, v)
		}
	}

	// running twice on the same graph gives the same answer
	a, _ := apsp.FloydWarshall(g)
	b, _ := apsp.FloydWarshall(g)
	assert.Equal(t, rows(t, a.Dist), rows(t, b.Dist))
}

func TestFloydWarshall_WithoutPredecessors(t *testing.T) {
	g := mustGraph(t, 4, fixtureEdges)

	res, err := apsp.FloydWarshall(g, apsp.WithoutPredecessors())
	require.NoError(t, err)
	assert.Nil(t, res.Pred)

	d, err := res.Distance(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)

	_, err = res.Path(2, 1)
	assert.ErrorIs(t, err, apsp.ErrNoPredecessors)

	_, ok := res.Split(0, 1)
	assert.False(t, ok)
}

func TestFloydWarshall_UnreachableStaysInf(t *testing.T) {
	// {0,1,2} undirected component, chain 3→4, vertex 5 isolated
	g := mustGraph(t, 6, []edge{
		{0, 1, 2}, {1, 0, 2},
		{1, 2, 3}, {2, 1, 3},
		{0, 2, 10}, {2, 0, 10},
		{3, 4, 7},
	})

	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)

	d, _ := res.Distance(0, 2)
	assert.Equal(t, 5.0, d)
	d, _ = res.Distance(4, 3)
	assert.True(t, math.IsInf(d, 1))
	for i := 0; i < 5; i++ {
		d, _ = res.Distance(i, 5)
		assert.True(t, math.IsInf(d, 1), "to isolated from %d", i)
		d, _ = res.Distance(5, i)
		assert.True(t, math.IsInf(d, 1), "from isolated to %d", i)
	}

	_, err = res.Path(0, 5)
	assert.ErrorIs(t, err, apsp.ErrNoPath)

	// direct edge: no split recorded
	_, ok := res.Split(3, 4)
	assert.False(t, ok)
	p, err := res.Path(3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, p)
}

func TestFloydWarshall_SingleVertex(t *testing.T) {
	g := mustGraph(t, 1, nil)
	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Size())

	p, err := res.Path(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p)
}

func TestFloydWarshall_TieKeepsFirstSplit(t *testing.T) {
	// 0→3 reachable via 1 or 2 at equal cost; k=1 is found first and kept.
	g := mustGraph(t, 4, []edge{
		{0, 1, 1}, {1, 3, 1},
		{0, 2, 1}, {2, 3, 1},
	})
	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)

	k, ok := res.Split(0, 3)
	require.True(t, ok)
	assert.Equal(t, 1, k)
	p, _ := res.Path(0, 3)
	assert.Equal(t, []int{0, 1, 3}, p)
}

func TestFloydWarshall_Properties(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		g, err := builder.Build(25,
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0.5, 50))},
			builder.RandomSparse(0.15))
		require.NoError(t, err)

		res, err := apsp.FloydWarshall(g)
		require.NoError(t, err)

		n := g.Size()
		var dij, dik, dkj float64
		for i := 0; i < n; i++ {
			dii, _ := res.Distance(i, i)
			require.Equal(t, 0.0, dii, "seed %d diag %d", seed, i)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dij, _ = res.Distance(i, j)
				for k := 0; k < n; k++ {
					dik, _ = res.Distance(i, k)
					dkj, _ = res.Distance(k, j)
					require.LessOrEqual(t, dij, dik+dkj+1e-9, "triangle seed %d (%d,%d,%d)", seed, i, j, k)
				}
				if math.IsInf(dij, 1) {
					continue
				}
				p, err := res.Path(i, j)
				require.NoError(t, err)
				require.Equal(t, i, p[0])
				require.Equal(t, j, p[len(p)-1])
				require.InDelta(t, dij, pathWeight(t, g, p), 1e-9, "seed %d path %v", seed, p)
			}
		}
	}
}

func TestFloydWarshall_MatchesGonum(t *testing.T) {
	const n = 30
	g, err := builder.Build(n,
		[]builder.Option{builder.WithSeed(11), builder.WithWeightFn(builder.IntWeightFn(1, 20))},
		builder.RandomSparse(0.1))
	require.NoError(t, err)

	ref := simple.NewWeightedDirectedGraph(0, inf)
	for i := 0; i < n; i++ {
		ref.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !g.HasEdge(i, j) {
				continue
			}
			w, _ := g.Weight(i, j)
			ref.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
		}
	}
	oracle, ok := path.FloydWarshall(ref)
	require.True(t, ok, "oracle reported a negative cycle")

	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got, _ := res.Distance(i, j)
			assert.Equal(t, oracle.Weight(int64(i), int64(j)), got, "D[%d][%d]", i, j)
		}
	}
}

func TestFloydWarshall_NegativeCycleIsDegenerateNotFatal(t *testing.T) {
	g := mustGraph(t, 3, []edge{
		{0, 1, 1},
		{1, 0, -3},
		{1, 2, 1},
	})

	res, err := apsp.FloydWarshall(g)
	require.NoError(t, err)

	assert.True(t, res.HasNegativeCycle())
	assert.Equal(t, []int{0, 1}, res.NegativeCycleVertices())

	d22, _ := res.Distance(2, 2)
	assert.Equal(t, 0.0, d22, "vertex 2 is not on the cycle")

	_, err = res.Path(0, 1)
	assert.ErrorIs(t, err, apsp.ErrPathCycle)
	_, err = res.Path(1, 0)
	assert.ErrorIs(t, err, apsp.ErrPathCycle)
}

func TestFloydWarshall_ConcurrentRunsOnSharedGraph(t *testing.T) {
	g, err := builder.Build(40,
		[]builder.Option{builder.WithSeed(8), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
		builder.Cycle(), builder.RandomSparse(0.05))
	require.NoError(t, err)

	want, err := apsp.FloydWarshall(g)
	require.NoError(t, err)
	wantRows := rows(t, want.Dist)

	const workers = 8
	results := make([]*apsp.Result, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], _ = apsp.FloydWarshall(g)
		}(w)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, wantRows, rows(t, r.Dist))
	}
}

func TestResult_IndexErrors(t *testing.T) {
	res, err := apsp.FloydWarshall(mustGraph(t, 2, []edge{{0, 1, 1}}))
	require.NoError(t, err)

	_, err = res.Distance(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = res.Path(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, ok := res.Split(5, 5)
	assert.False(t, ok)
}

// naiveFloydWarshall is the textbook in-place triple loop over a V×V copy,
// reading D[i][k] fresh on every inner step.
func naiveFloydWarshall(w [][]float64) (d, p [][]float64) {
	n := len(w)
	d = make([][]float64, n)
	p = make([][]float64, n)
	for i := range w {
		d[i] = append([]float64(nil), w[i]...)
		p[i] = make([]float64, n)
		for j := range p[i] {
			if i != j {
				p[i][j] = inf
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
					p[i][j] = float64(k)
				}
			}
		}
	}

	return d, p
}

func TestFloydWarshall_MatchesInPlaceLoopWithNegativeCycles(t *testing.T) {
	const n = 8
	cycles := 0
	for seed := int64(1); seed <= 60; seed++ {
		g, err := builder.Build(n,
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(-6, 9))},
			builder.RandomSparse(0.35))
		require.NoError(t, err)

		res, err := apsp.FloydWarshall(g)
		require.NoError(t, err)
		if res.HasNegativeCycle() {
			cycles++
		}

		wantD, wantP := naiveFloydWarshall(rows(t, g.Snapshot()))
		require.Equal(t, wantD, rows(t, res.Dist), "seed %d: distances", seed)
		require.Equal(t, wantP, rows(t, res.Pred), "seed %d: splits", seed)
	}
	require.Positive(t, cycles, "fixture set should contain negative cycles")
}
