// Package batch runs one function over many inputs with bounded concurrency,
// keeping results in input order. The checker uses it to build documents in
// parallel; every document gets its own builder, so no state is shared
// between calls.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a panic recovered from the per-item function.
var ErrPanic = errors.New("batch item panicked")

// Result is the outcome for one input: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most workers calls in flight and
// returns the results in input order. A workers value below 1 is treated as 1.
//
// Items still waiting for a worker when ctx is canceled get ctx.Err() and fn
// is not called for them; calls already running are left to observe ctx
// themselves. A panic in fn is recovered and reported as that item's error,
// wrapping ErrPanic.
//
// Empty input yields an empty, non-nil slice.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = max(workers, 1)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, item, fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}

// Errors joins the errors of all failed results, or returns nil.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
