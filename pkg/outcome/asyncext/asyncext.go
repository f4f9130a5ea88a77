package asyncext

import (
	"github.com/tibrom/async-result-ext/pkg/outcome"
	"github.com/tibrom/async-result-ext/pkg/outcome/future"
)

// Map applies an asynchronous op to the success value and wraps the
// awaited output as a new success. A failure passes through unchanged and
// op is never invoked.
func Map[T, E, U any](o outcome.Outcome[T, E],
	op func(v T) *future.Future[U]) *future.Future[outcome.Outcome[U, E]] {

	if o.IsFailure() {
		return future.Resolve(outcome.FailureFrom[U](o))
	}
	return future.Then(op(o.Value()), func(u U) outcome.Outcome[U, E] {
		return outcome.Success[U, E](u)
	})
}

// AndThen chains an asynchronous op that itself yields an outcome. The
// awaited outcome is returned directly, without re-wrapping. A failure
// passes through unchanged and op is never invoked.
func AndThen[T, E, U any](o outcome.Outcome[T, E],
	op func(v T) *future.Future[outcome.Outcome[U, E]]) *future.Future[outcome.Outcome[U, E]] {

	if o.IsFailure() {
		return future.Resolve(outcome.FailureFrom[U](o))
	}
	return op(o.Value())
}

// MapOr applies an asynchronous op to the success value, or yields the
// already-evaluated defaultV on failure. For a lazily computed fallback
// use MapOrElse.
func MapOr[T, E, U any](o outcome.Outcome[T, E], defaultV U,
	op func(v T) *future.Future[U]) *future.Future[U] {

	if o.IsFailure() {
		return future.Resolve(defaultV)
	}
	return op(o.Value())
}

// MapOrElse applies an asynchronous op to the success value, or an
// asynchronous defaultF to the failure value. Exactly one of the two is
// invoked.
func MapOrElse[T, E, U any](o outcome.Outcome[T, E],
	defaultF func(err E) *future.Future[U],
	op func(v T) *future.Future[U]) *future.Future[U] {

	if o.IsSuccess() {
		return op(o.Value())
	}
	return defaultF(o.Err())
}

// MapErr applies an asynchronous op to the failure value and wraps the
// awaited output as a new failure. A success passes through unchanged and
// op is never invoked.
func MapErr[T, E, F any](o outcome.Outcome[T, E],
	op func(err E) *future.Future[F]) *future.Future[outcome.Outcome[T, F]] {

	if o.IsSuccess() {
		return future.Resolve(outcome.SuccessFrom[F](o))
	}
	return future.Then(op(o.Err()), func(f F) outcome.Outcome[T, F] {
		return outcome.Failure[T, F](f)
	})
}

// Inspect awaits a side effect on the success value and yields the
// original outcome untouched. On failure op is never invoked and no
// suspension occurs.
func Inspect[T, E any](o outcome.Outcome[T, E],
	op func(v T) *future.Future[future.Void]) *future.Future[outcome.Outcome[T, E]] {

	if o.IsFailure() {
		return future.Resolve(o)
	}
	return future.Then(op(o.Value()), func(future.Void) outcome.Outcome[T, E] {
		return o
	})
}

// InspectErr awaits a side effect on the failure value and yields the
// original outcome untouched. On success op is never invoked and no
// suspension occurs.
func InspectErr[T, E any](o outcome.Outcome[T, E],
	op func(err E) *future.Future[future.Void]) *future.Future[outcome.Outcome[T, E]] {

	if o.IsSuccess() {
		return future.Resolve(o)
	}
	return future.Then(op(o.Err()), func(future.Void) outcome.Outcome[T, E] {
		return o
	})
}

// IsOkAnd yields the awaited boolean of op applied to the success value,
// or false for any failure. op is never invoked on failure.
func IsOkAnd[T, E any](o outcome.Outcome[T, E],
	op func(v T) *future.Future[bool]) *future.Future[bool] {

	if o.IsFailure() {
		return future.Resolve(false)
	}
	return op(o.Value())
}
