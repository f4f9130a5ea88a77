package stream

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tibrom/async-result-ext/pkg/outcome"
	"github.com/tibrom/async-result-ext/pkg/outcome/asyncext"
	"github.com/tibrom/async-result-ext/pkg/outcome/core"
	"github.com/tibrom/async-result-ext/pkg/outcome/direct"
	"github.com/tibrom/async-result-ext/pkg/outcome/future"
)

// deliver forwards one settled outcome to out, or reports cancellation.
func deliver[U any](ctx context.Context, ch <-chan U, out chan<- U, onCancel func()) {
	defer close(out)

	select {
	case pr, ok := <-ch:
		if ok {
			out <- pr
		} else {
			onCancel()
		}
	case <-ctx.Done():
		onCancel()
	}
}

func cancelled[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) func() {

	return func() {
		if onCancel != nil {
			onCancel(ctx, input)
		}
	}
}

func Mapping[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	mapOnSuccess func(ctx context.Context, v T) *future.Future[U],
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[U, E] {

	ch := make(chan outcome.Outcome[U, E], 1)
	out := make(chan outcome.Outcome[U, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			pr, err := asyncext.Map(input, func(v T) *future.Future[U] {
				return mapOnSuccess(ctx, v)
			}).Await(ctx)
			if err == nil {
				ch <- pr
			}
		}
	}()

	go deliver(ctx, ch, out, cancelled(ctx, input, onCancel))

	return out
}

func Switching[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	switchOnSuccess func(ctx context.Context, v T) *future.Future[outcome.Outcome[U, E]],
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[U, E] {

	ch := make(chan outcome.Outcome[U, E], 1)
	out := make(chan outcome.Outcome[U, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			pr, err := asyncext.AndThen(input, func(v T) *future.Future[outcome.Outcome[U, E]] {
				return switchOnSuccess(ctx, v)
			}).Await(ctx)
			if err == nil {
				ch <- pr
			}
		}
	}()

	go deliver(ctx, ch, out, cancelled(ctx, input, onCancel))

	return out
}

func MappingErr[T, E, F any](ctx context.Context, input outcome.Outcome[T, E],
	mapOnFailure func(ctx context.Context, err E) *future.Future[F],
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, F] {

	ch := make(chan outcome.Outcome[T, F], 1)
	out := make(chan outcome.Outcome[T, F])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			pr, err := asyncext.MapErr(input, func(e E) *future.Future[F] {
				return mapOnFailure(ctx, e)
			}).Await(ctx)
			if err == nil {
				ch <- pr
			}
		}
	}()

	go deliver(ctx, ch, out, cancelled(ctx, input, onCancel))

	return out
}

func Inspecting[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	sideEffect func(ctx context.Context, v T),
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, E] {

	ch := make(chan outcome.Outcome[T, E], 1)
	out := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			pr, err := asyncext.Inspect(input, func(v T) *future.Future[future.Void] {
				return future.Do(func() {
					sideEffect(ctx, v)
				})
			}).Await(ctx)
			if err == nil {
				ch <- pr
			}
		}
	}()

	go deliver(ctx, ch, out, cancelled(ctx, input, onCancel))

	return out
}

func InspectingErr[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	sideEffect func(ctx context.Context, err E),
	onCancel func(ctx context.Context, in outcome.Outcome[T, E])) <-chan outcome.Outcome[T, E] {

	ch := make(chan outcome.Outcome[T, E], 1)
	out := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			pr, err := asyncext.InspectErr(input, func(e E) *future.Future[future.Void] {
				return future.Do(func() {
					sideEffect(ctx, e)
				})
			}).Await(ctx)
			if err == nil {
				ch <- pr
			}
		}
	}()

	go deliver(ctx, ch, out, cancelled(ctx, input, onCancel))

	return out
}

type FinallyHandlers[T, E, U any] struct {
	OnSuccess func(ctx context.Context, v T) U
	OnFailure func(ctx context.Context, err E) U
}

// Finalizing collapses a stream of outcomes into concrete values using the
// success/failure handlers. The stream ends when inputCh drains or ctx is
// done.
func Finalizing[T, E, U any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	handlers FinallyHandlers[T, E, U],
	onResult func(ctx context.Context, out U)) <-chan U {

	out := make(chan U)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := direct.Finally(ctx, in, handlers.OnSuccess, handlers.OnFailure)

				select {
				case <-ctx.Done():
					return
				case out <- res:
					if onResult != nil {
						onResult(ctx, res)
					}
				}
			}
		}
	}()

	return out
}

// Fan runs the engine over inputCh on a pool of pump workers and merges
// their deliveries into one channel. The worker count falls back to the
// context-carried limit when workers is 0 or less.
func Fan[T, E, U any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]],
	handlers core.CancelHandlers[T, E, U], workers int) <-chan outcome.Outcome[U, E] {

	if workers <= 0 {
		workers = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan outcome.Outcome[U, E])

	go func() {
		defer close(out)

		eg, gctx := errgroup.WithContext(ctx)
		for range workers {
			eg.Go(func() error {
				return core.Pump(gctx, inputCh, out, engine, handlers, nil)
			})
		}
		_ = eg.Wait()
	}()

	return out
}

// Engine adapts a chain-style op into a Fan engine.
func Engine[T, E, U any](
	switchOnSuccess func(ctx context.Context, v T) *future.Future[outcome.Outcome[U, E]]) func(
	ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {

	return func(ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {
		return asyncext.AndThen(input, func(v T) *future.Future[outcome.Outcome[U, E]] {
			return switchOnSuccess(ctx, v)
		})
	}
}

// MapEngine adapts a value-transforming op into a Fan engine.
func MapEngine[T, E, U any](
	mapOnSuccess func(ctx context.Context, v T) *future.Future[U]) func(
	ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {

	return func(ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]] {
		return asyncext.Map(input, func(v T) *future.Future[U] {
			return mapOnSuccess(ctx, v)
		})
	}
}
