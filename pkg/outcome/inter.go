package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry either a value or a failure
type WithFailure[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
