// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Recover vertex sequences from the split-vertex predecessor matrix.
//   - Query helpers on Result (distance, split, negative-cycle report).

package apsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadapsp/matrix"
)

const (
	opReconstruct = "ReconstructPath"
	opPath        = "Result.Path"
	opDistance    = "Result.Distance"
)

// segment is a pending sub-path a→b on the unwinding stack.
type segment struct{ a, b int }

// ReconstructPath returns the vertices of a shortest i→j path encoded in pred.
//
//   - i == j          → [i]
//   - P[i][j] == +Inf → [i, j]   (direct edge; the caller checks D for reachability)
//   - otherwise k = P[i][j]: path(i,k) without its last vertex, then path(k,j).
//
// The recursion is unwound with an explicit stack: segments are pushed
// right-first so the left half is emitted first, and each resolved segment
// appends its end vertex. A walk that emits more than V vertices or performs
// more than V² splits can only come from a negative cycle and yields
// ErrPathCycle.
//
// Errors: ErrNoPredecessors (nil pred), matrix.ErrNonSquare, matrix.ErrOutOfRange, ErrPathCycle.
// Complexity: O(len(path)) for well-formed input.
func ReconstructPath(pred *matrix.Dense, i, j int) ([]int, error) {
	if pred == nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, ErrNoPredecessors)
	}
	if err := matrix.ValidateSquare(pred); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	n := pred.Rows()
	if err := matrix.ValidateIndex(n, i, j); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opReconstruct, i, j, err)
	}
	if i == j {
		return []int{i}, nil
	}

	p := pred.Raw()
	path := []int{i}
	stack := []segment{{i, j}}
	maxSplits := n * n
	splits := 0

	var (
		s segment
		v float64
		k int
	)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.a == s.b {
			continue
		}

		v = p[s.a*n+s.b]
		if math.IsInf(v, 1) {
			path = append(path, s.b)
			if len(path) > n {
				return nil, fmt.Errorf("%s(%d,%d): %w", opReconstruct, i, j, ErrPathCycle)
			}
			continue
		}

		k = int(v)
		if k < 0 || k >= n || float64(k) != v {
			return nil, fmt.Errorf("%s(%d,%d): split %g: %w", opReconstruct, s.a, s.b, v, matrix.ErrOutOfRange)
		}
		splits++
		if splits > maxSplits {
			return nil, fmt.Errorf("%s(%d,%d): %w", opReconstruct, i, j, ErrPathCycle)
		}
		stack = append(stack, segment{k, s.b}, segment{s.a, k})
	}

	return path, nil
}

// Size returns the vertex count V.
func (r *Result) Size() int { return r.Dist.Rows() }

// Distance returns D[i][j]; +Inf when j is unreachable from i.
func (r *Result) Distance(i, j int) (float64, error) {
	d, err := r.Dist.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDistance, err)
	}

	return d, nil
}

// Split returns the recorded split vertex for (i,j). ok is false when the
// pair was never relaxed through an intermediate or predecessors are off.
func (r *Result) Split(i, j int) (k int, ok bool) {
	if r.Pred == nil {
		return 0, false
	}
	v, err := r.Pred.At(i, j)
	if err != nil || math.IsInf(v, 1) || i == j {
		return 0, false
	}

	return int(v), true
}

// Path returns the vertex sequence of a shortest i→j path.
// Errors: matrix.ErrOutOfRange, ErrNoPath (D[i][j] is +Inf), ErrNoPredecessors, ErrPathCycle.
func (r *Result) Path(i, j int) ([]int, error) {
	d, err := r.Dist.At(i, j)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPath, err)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%s(%d,%d): %w", opPath, i, j, ErrNoPath)
	}
	if r.Pred == nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opPath, i, j, ErrNoPredecessors)
	}

	return ReconstructPath(r.Pred, i, j)
}

// NegativeCycleVertices lists vertices i with D[i][i] < 0, in ascending order.
// Distances from or to these vertices do not describe shortest paths.
// Complexity: O(V).
func (r *Result) NegativeCycleVertices() []int {
	n := r.Size()
	d := r.Dist.Raw()
	var out []int
	for i := 0; i < n; i++ {
		if d[i*n+i] < 0 {
			out = append(out, i)
		}
	}

	return out
}

// HasNegativeCycle reports whether any diagonal distance went negative.
func (r *Result) HasNegativeCycle() bool {
	return len(r.NegativeCycleVertices()) > 0
}
