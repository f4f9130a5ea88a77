// Package future provides the single-use awaitable used by the async
// combinators: a value computed on its own goroutine and delivered over a
// channel of one.
//
// Highlights:
// - Go/Do: start a computation or side effect on its own goroutine
// - Resolve: an already-completed future, awaiting it does not suspend
// - Await: the single suspension point, honoring ctx cancellation
// - Then/Bind: compose futures without intermediate awaits
//
// A Future carries its value exactly once; await it (or hand it to
// Then/Bind) from a single consumer.
package future
