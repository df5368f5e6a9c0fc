// Package fanout runs a function over a slice with bounded concurrency and
// returns one result per item in input order. Services use it for bulk
// operations where each item succeeds or fails on its own.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome for one item. Err is non-nil on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines
// (values < 1 mean 1). Items are dispatched in input order. Once ctx is done,
// items not yet dispatched get ctx.Err() and fn is not called for them; fn
// calls already running are left to observe ctx themselves. A panic in fn is
// recovered and reported as that item's error.
//
// Run blocks until every dispatched call returns. For empty input it returns
// an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	maxWorkers = max(maxWorkers, 1)

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = call(ctx, it, fn)
		}(i, item)
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", rec)}
		}
	}()
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
