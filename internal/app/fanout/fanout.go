// Package fanout provides a generic, bounded-concurrency fan-out helper for
// read paths that touch many store records at once (team scans, audits).
// Results keep input order and each item succeeds or fails on its own.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// Items that have not started when ctx is canceled record ctx.Err() and fn
// is not called for them. Items already running see the canceled ctx.
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Values splits results into the successful values (in input order) and
// the joined errors of the failed items.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	return values, errors.Join(errs...)
}
