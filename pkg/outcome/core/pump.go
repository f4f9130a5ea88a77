package core

import (
	"context"

	"github.com/tibrom/async-result-ext/pkg/outcome"
	"github.com/tibrom/async-result-ext/pkg/outcome/future"
)

type CancelHandlers[T, E, U any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Outcome[T, E], outCh chan<- outcome.Outcome[U, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[T, E], outCh chan<- outcome.Outcome[U, E])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[T, E], processed outcome.Outcome[U, E], outCh chan<- outcome.Outcome[U, E])
}

// Pump drives one worker: it reads outcomes from inputCh, awaits the
// engine's future for each, and delivers the settled outcome to outCh.
// It returns ctx.Err() when cancelled mid-stream, nil when inputCh drains.
func Pump[T, E, U any](ctx context.Context,
	inputCh <-chan outcome.Outcome[T, E], outCh chan<- outcome.Outcome[U, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) *future.Future[outcome.Outcome[U, E]],
	handlers CancelHandlers[T, E, U],
	onDelivered func(ctx context.Context, out outcome.Outcome[U, E])) error {

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return ctx.Err()
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			pr, err := engine(ctx, in).Await(ctx)
			if err != nil {
				if future.IsCancelled(err) {
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
				}
				return ctx.Err()
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return ctx.Err()
			case outCh <- pr:
				if onDelivered != nil {
					onDelivered(ctx, pr)
				}
			}
		}
	}
}
