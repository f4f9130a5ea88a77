// Package outcome defines the two-variant success/failure value type that
// the rest of the module operates on.
//
// Outcome[T, E] holds either a success payload of type T or a failure
// payload of type E, never both. Construct with Success/Failure, convert
// across type parameters with SuccessFrom/FailureFrom. Every combinator in
// the sibling packages consumes an Outcome by value and yields a fresh one;
// nothing here is mutated after construction.
package outcome
