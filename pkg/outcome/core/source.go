package core

import (
	"context"
	"sync"

	"github.com/tibrom/async-result-ext/pkg/outcome"
	"github.com/tibrom/async-result-ext/pkg/outcome/direct"
)

type SourceHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnEmit      func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func Emit[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func SourceFromArgs[T, E any](ctx context.Context, handlers SourceHandlers[T], values ...T) <-chan outcome.Outcome[T, E] {
	in := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- direct.Succeed[T, E](v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func Source[T, E any](ctx context.Context, values []T) <-chan outcome.Outcome[T, E] {
	return SourceFromArgs[T, E](ctx, SourceHandlers[T]{}, values...)
}

func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()
	wg.Wait()
	return res
}

func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
