// Package core contains pipeline plumbing utilities: channel helpers,
// worker configuration via context, and the pump that drives stream
// workers. It does not define combinator logic; it provides the
// scaffolding package stream uses to run outcomes through async stages
// with controlled concurrency.
package core
