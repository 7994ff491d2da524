// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/roadapsp/apsp"
)

// ErrNilResult indicates Resolve was called without a computed result.
var ErrNilResult = errors.New("query: nil result")

// Answer is the outcome of one Pair.
// Path is nil when Err is set or predecessors were not tracked.
type Answer struct {
	Pair
	Distance float64
	Path     []int
	Err      error
}

// Resolve answers every pair concurrently on at most workers goroutines
// (GOMAXPROCS when workers <= 0). Answers keep the input order.
//
// Distance-only results (no predecessor matrix) yield answers with a
// Distance and a nil Path; that is not an error.
//
// The returned error is non-nil only for a nil result, a pool failure or
// ctx cancellation; in those cases no answers are returned.
func Resolve(ctx context.Context, res *apsp.Result, pairs []Pair, workers int) ([]Answer, error) {
	if res == nil {
		return nil, fmt.Errorf("query.Resolve: %w", ErrNilResult)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pairs) && len(pairs) > 0 {
		workers = len(pairs)
	}

	answers := make([]Answer, len(pairs))
	if len(pairs) == 0 {
		return answers, nil
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(workers, func(arg interface{}) {
		defer wg.Done()
		idx := arg.(int)
		answers[idx] = answer(res, pairs[idx])
	})
	if err != nil {
		return nil, fmt.Errorf("query.Resolve: pool: %w", err)
	}
	defer pool.Release()

	for i := range pairs {
		if err = ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("query.Resolve: %w", err)
		}
		wg.Add(1)
		if err = pool.Invoke(i); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("query.Resolve: submit %s: %w", pairs[i], err)
		}
	}
	wg.Wait()

	return answers, nil
}

// answer computes one pair synchronously.
func answer(res *apsp.Result, p Pair) Answer {
	a := Answer{Pair: p}
	a.Distance, a.Err = res.Distance(p.From, p.To)
	if a.Err != nil || res.Pred == nil {
		return a
	}
	a.Path, a.Err = res.Path(p.From, p.To)

	return a
}
