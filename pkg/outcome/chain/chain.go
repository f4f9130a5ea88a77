package chain

import (
	"context"

	"github.com/tibrom/async-result-ext/pkg/outcome"
	"github.com/tibrom/async-result-ext/pkg/outcome/asyncext"
	"github.com/tibrom/async-result-ext/pkg/outcome/direct"
	"github.com/tibrom/async-result-ext/pkg/outcome/future"
)

// Chain wraps a future of an Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx context.Context
	fut *future.Future[outcome.Outcome[T, E]]
}

// Start creates a new chain from an outcome
func Start[T, E any](ctx context.Context, result outcome.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: ctx,
		fut: future.Resolve(result),
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: ctx,
		fut: future.Resolve(outcome.Success[T, E](value)),
	}
}

// FromFuture creates a new chain from a pending outcome
func FromFuture[T, E any](ctx context.Context, fut *future.Future[outcome.Outcome[T, E]]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: ctx,
		fut: fut,
	}
}

// Result awaits the chain and returns the underlying outcome.
// The error is non-nil only when ctx is done before the chain settles.
func (c *Chain[T, E]) Result() (outcome.Outcome[T, E], error) {
	return c.fut.Await(c.ctx)
}

// Then chains an op that yields a future of Outcome[U, E]
func Then[T, E, U any](c *Chain[T, E],
	onSuccess func(context.Context, T) *future.Future[outcome.Outcome[U, E]]) *Chain[U, E] {

	return &Chain[U, E]{
		ctx: c.ctx,
		fut: future.Bind(c.fut, func(o outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {
			return asyncext.AndThen(o, func(v T) *future.Future[outcome.Outcome[U, E]] {
				return onSuccess(c.ctx, v)
			})
		}),
	}
}

// Map chains an op that asynchronously transforms the successful value
func Map[T, E, U any](c *Chain[T, E],
	onSuccess func(context.Context, T) *future.Future[U]) *Chain[U, E] {

	return &Chain[U, E]{
		ctx: c.ctx,
		fut: future.Bind(c.fut, func(o outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {
			return asyncext.Map(o, func(v T) *future.Future[U] {
				return onSuccess(c.ctx, v)
			})
		}),
	}
}

// MapErr chains an op that asynchronously transforms the failure value
func MapErr[T, E, F any](c *Chain[T, E],
	onFailure func(context.Context, E) *future.Future[F]) *Chain[T, F] {

	return &Chain[T, F]{
		ctx: c.ctx,
		fut: future.Bind(c.fut, func(o outcome.Outcome[T, E]) *future.Future[outcome.Outcome[T, F]] {
			return asyncext.MapErr(o, func(err E) *future.Future[F] {
				return onFailure(c.ctx, err)
			})
		}),
	}
}

// Ensure performs a side effect on success without changing the outcome
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		fut: future.Bind(c.fut, func(o outcome.Outcome[T, E]) *future.Future[outcome.Outcome[T, E]] {
			return asyncext.Inspect(o, func(v T) *future.Future[future.Void] {
				return future.Do(func() {
					onSuccess(c.ctx, v)
				})
			})
		}),
	}
}

// EnsureErr performs a side effect on failure without changing the outcome
func (c *Chain[T, E]) EnsureErr(onFailure func(context.Context, E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		fut: future.Bind(c.fut, func(o outcome.Outcome[T, E]) *future.Future[outcome.Outcome[T, E]] {
			return asyncext.InspectErr(o, func(err E) *future.Future[future.Void] {
				return future.Do(func() {
					onFailure(c.ctx, err)
				})
			})
		}),
	}
}

// Finally awaits the chain and collapses it into a final value using
// direct.Finally; onCancel handles ctx ending before the chain settles.
func Finally[T, E, U any](c *Chain[T, E],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U,
	onCancel func(context.Context, error) U) U {

	o, err := c.fut.Await(c.ctx)
	if err != nil {
		return onCancel(c.ctx, err)
	}
	return direct.Finally(c.ctx, o, onSuccess, onFailure)
}
