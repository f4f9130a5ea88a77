package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success value of type T or a failure value of
// type E. Exactly one variant is populated; combinators consume the
// receiver by value and never mutate it in place.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure into an outcome with a different success
// type, preserving identity and creation time.
func FailureFrom[Out, In, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom carries a successful value into an outcome with a different
// failure type, preserving identity and creation time.
func SuccessFrom[F, T, E any](from Outcome[T, E]) Outcome[T, F] {
	return Outcome[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}
