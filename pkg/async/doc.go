// Package async provides a small generic Future type used by the
// authenticator facade for its non-blocking, store-backed operations.
//
// Async starts the supplied function in its own goroutine and immediately
// returns a *Future. The caller waits with Await, bounds the wait with
// AwaitWithTimeout, or polls with IsComplete. If the context is cancelled
// before the computation starts, the Future completes with the context
// error.
//
// Futures are lightweight wrappers around a goroutine and a channel; they
// carry exactly one result and are safe to Await from multiple goroutines.
package async
