// Package direct contains the single-value, synchronous combinators over
// Outcome[T, E]. They are the plain counterparts of package asyncext and
// the building blocks the channel-based packages lift.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, E]
// - Map/AndThen/MapErr: transform one side of the outcome
// - MapOr/MapOrElse/Finally: reduce to a concrete value
// - Inspect/InspectErr: side-effect helpers that leave the outcome untouched
// - Try: call a function (U, error) and convert the error to a failure
package direct
