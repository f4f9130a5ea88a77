package direct

import (
	"context"

	"github.com/tibrom/async-result-ext/pkg/outcome"
)

func Succeed[T, E any](input T) outcome.Outcome[T, E] {
	return outcome.Success[T, E](input)
}

func Fail[T, E any](err E) outcome.Outcome[T, E] {
	return outcome.Failure[T, E](err)
}

func Map[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) U) outcome.Outcome[U, E] {

	if input.IsSuccess() {
		return outcome.Success[U, E](onSuccess(ctx, input.Value()))
	}
	return outcome.FailureFrom[U](input)
}

func AndThen[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) outcome.Outcome[U, E]) outcome.Outcome[U, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailureFrom[U](input)
}

func MapOr[T, E, U any](ctx context.Context, input outcome.Outcome[T, E], defaultV U,
	onSuccess func(ctx context.Context, v T) U) U {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return defaultV
}

func MapOrElse[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	defaultF func(ctx context.Context, err E) U,
	onSuccess func(ctx context.Context, v T) U) U {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return defaultF(ctx, input.Err())
}

func MapErr[T, E, F any](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E) F) outcome.Outcome[T, F] {

	if input.IsSuccess() {
		return outcome.SuccessFrom[F](input)
	}
	return outcome.Failure[T, F](onFailure(ctx, input.Err()))
}

func Inspect[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func InspectErr[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E)) outcome.Outcome[T, E] {

	if input.IsFailure() {
		onFailure(ctx, input.Err())
	}
	return input
}

func IsOkAnd[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) bool) bool {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return false
}

// Try calls a function returning (U, error) and converts a non-nil error
// to a failure.
func Try[T, U any](ctx context.Context, input outcome.Outcome[T, error],
	onTryExecute func(ctx context.Context, v T) (U, error)) outcome.Outcome[U, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Failure[U, error](err)
		}
		return outcome.Success[U, error](out)
	}
	return outcome.FailureFrom[U](input)
}

func Finally[T, E, U any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, err E) U) U {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}
