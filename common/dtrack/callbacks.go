/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import "context"

// Callbacks holds optional outcome handlers. A nil handler is skipped.
type Callbacks[T any] struct {
	OnSuccess func(T)
	OnFailure func(error)
}

// Resolve invokes exactly one handler, if set, for the outcome (v, err)
func (cb Callbacks[T]) Resolve(v T, err error) {
	if err != nil {
		if cb.OnFailure != nil {
			cb.OnFailure(err)
		}
		return
	}
	if cb.OnSuccess != nil {
		cb.OnSuccess(v)
	}
}

// Do runs fn and routes its outcome to cb
func Do[T any](ctx context.Context, fn func(context.Context) (T, error), cb Callbacks[T]) {
	cb.Resolve(fn(ctx))
}

// Go runs Do on a new goroutine. The returned channel is closed after the
// handler, if any, has returned.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error), cb Callbacks[T]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Do(ctx, fn, cb)
	}()
	return done
}

// NoContent adapts an operation without a payload, such as DeleteProject, for Do and Go
func NoContent(fn func(context.Context) error) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}
}
