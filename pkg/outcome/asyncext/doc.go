// Package asyncext contains asynchronous counterparts of the direct
// combinators: Map, AndThen, MapOr, MapOrElse, MapErr, Inspect,
// InspectErr and IsOkAnd, each taking a future-returning op instead of a
// plain function.
//
// Every combinator consumes its outcome, invokes op at most once and only
// on the branch its name documents, and returns a future the caller
// awaits. Pass-through branches yield already-resolved futures, so the
// only suspension point is the op the caller supplied. Nothing here
// retries, races or spawns beyond the op's own goroutine; cancelling the
// surrounding ctx while awaiting behaves exactly like cancelling the op
// directly.
package asyncext
