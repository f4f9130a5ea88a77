package future

import (
	"context"

	"github.com/brickingsoft/errors"
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "future"
)

// ErrCancelled is returned by Await when ctx is done before the value arrives.
var ErrCancelled = errors.Define("future: await cancelled", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))

// IsCancelled reports whether err is an ErrCancelled error.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Void is the payload of side-effect-only futures.
type Void = struct{}

// Future is a single-use awaitable: the value is delivered once and
// consumed by the first Await, Then or Bind.
type Future[T any] struct {
	ch chan T
}

// Go runs fn on its own goroutine and returns a Future for its value.
func Go[T any](fn func() T) *Future[T] {
	f := &Future[T]{ch: make(chan T, 1)}
	go func() {
		f.ch <- fn()
	}()
	return f
}

// Resolve returns an already-completed Future.
// Awaiting it does not suspend.
func Resolve[T any](v T) *Future[T] {
	f := &Future[T]{ch: make(chan T, 1)}
	f.ch <- v
	return f
}

// Do runs a side effect on its own goroutine.
func Do(fn func()) *Future[Void] {
	return Go(func() Void {
		fn()
		return Void{}
	})
}

// Await blocks until the value is delivered or ctx is done.
// On cancellation the zero value and ErrCancelled are returned; the
// computation itself keeps whatever cancellation behavior its ctx gives it.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case v := <-f.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, errors.From(ErrCancelled)
	}
}

// Then transforms the awaited value without an intermediate Await.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Go(func() U {
		return fn(<-f.ch)
	})
}

// Bind chains a future-returning continuation onto f.
func Bind[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return Go(func() U {
		return <-fn(<-f.ch).ch
	})
}
