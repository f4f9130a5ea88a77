// Package chain provides a fluent wrapper around a pending Outcome[T, E]
// for building asynchronous pipelines out of asyncext combinators.
//
// A Chain holds a context and a future of an outcome; each step binds the
// next op onto that future, so nothing suspends until Result or Finally
// awaits the whole pipeline. Failures short-circuit exactly like the
// single-step combinators: ops attached with Then/Map/Ensure are never
// invoked once the outcome is a failure.
//
// Key operations:
// - Start/FromValue/FromFuture: begin a chain
// - Then: chain an op yielding a future of Outcome[U, E]
// - Map/MapErr: asynchronously transform one side of the outcome
// - Ensure/EnsureErr: run side effects without changing the outcome
// - Result/Finally: await and collapse into a concrete value
package chain
