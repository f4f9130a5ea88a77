// Package stream implements channel-based building blocks that lift the
// asyncext combinators over outcome streams, with control over
// cancellation behavior.
//
// The single-value lifts (Mapping, Switching, MappingErr, Inspecting,
// InspectingErr) settle one outcome on its own goroutine and deliver it
// through a channel, calling the optional onCancel handler when ctx ends
// first. Fan runs an engine over a whole stream on a pool of pump workers
// (package core) merged through one output channel, and Finalizing
// collapses the resulting stream into concrete values.
package stream
