// Package fanout maps a function over a slice with a fixed number of
// workers. Catalog loading uses it to fetch every catalog at once.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value when Err is nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most workers goroutines and returns
// the results indexed like items. Once ctx is done, items not yet started
// get ctx.Err() without fn being called; started calls run to completion.
// A workers value below one is treated as one.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(max(workers, 1), len(items)) {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}
