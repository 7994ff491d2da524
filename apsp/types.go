// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths over a dense
// matrix.WeightedAdjacency with the Floyd–Warshall dynamic program.
//
// The engine produces two V×V matrices:
//
//	- Dist: D[i][j] is the minimum total weight over any directed walk i→j,
//	        or +Inf when j is unreachable from i.
//	- Pred: P[i][j] is the split vertex k recorded by the last strict
//	        relaxation of (i,j); P[i][i] = 0; P[i][j] = +Inf when (i,j) was
//	        never relaxed (the shortest path is the direct edge, or none).
//
// P is not an immediate-predecessor table. Paths are recovered by splitting
// i→j at k into i→k and k→j recursively (see ReconstructPath).
//
// Complexity:
//
//	- Time:  O(V³), no early termination.
//	- Space: O(V²) for the distance copy and the predecessor matrix.
//
// Negative cycles are not detected during the run. A vertex on a negative
// cycle ends with D[i][i] < 0; Result.NegativeCycleVertices reports those
// after the fact and ReconstructPath refuses to unwind looping splits.
//
// Example usage:
//
//	g, _ := matrix.New(3)
//	_ = g.AddEdge(0, 1, 2)
//	_ = g.AddEdge(1, 2, 3)
//	res, err := apsp.FloydWarshall(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.Path(0, 2) // [0 1 2]
package apsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/roadapsp/matrix"
)

// Sentinel errors returned by the apsp package.
var (
	// ErrNilGraph indicates that a nil *matrix.WeightedAdjacency was passed.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("apsp: no path between vertices")

	// ErrNoPredecessors indicates that path reconstruction was requested
	// but the predecessor matrix was not computed.
	ErrNoPredecessors = errors.New("apsp: predecessor matrix not available")

	// ErrPathCycle indicates that the split chain does not terminate,
	// which happens only when a negative cycle corrupts the predecessors.
	ErrPathCycle = errors.New("apsp: predecessor splits form a cycle")
)

// noSplit is the P[i][j] marker for "never relaxed through an intermediate".
var noSplit = math.Inf(1)

// Options configures FloydWarshall.
//
// Predecessors - if true (default) the predecessor matrix is computed and
// Result.Pred is non-nil; otherwise only distances are produced.
type Options struct {
	Predecessors bool
}

// Option represents a functional option for FloydWarshall.
type Option func(*Options)

// WithoutPredecessors disables predecessor tracking. Result.Pred is nil and
// Result.Path returns ErrNoPredecessors.
func WithoutPredecessors() Option {
	return func(o *Options) {
		o.Predecessors = false
	}
}

// DefaultOptions returns the defaults: predecessors tracked.
func DefaultOptions() Options {
	return Options{Predecessors: true}
}

// Result holds the engine output. Both matrices are owned by the Result and
// are never aliased to the input graph. A Result is read-only after
// FloydWarshall returns and may be shared across goroutines.
type Result struct {
	Dist *matrix.Dense // V×V shortest distances
	Pred *matrix.Dense // V×V split vertices, nil when disabled
}
