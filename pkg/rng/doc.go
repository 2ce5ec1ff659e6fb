// Package rng provides a thread-safe source of cryptographically strong
// random bytes that periodically rebuilds its underlying generator.
//
// The Reseeding reader counts byte-producing operations and, once the count
// crosses MaxOperations, discards the current generator and obtains a fresh
// one from its source factory. Reads proceed concurrently under a shared
// lock; the rare rebuild takes the lock exclusively, so a reseed is never
// interleaved with a draw.
//
// The default source is crypto/rand. A custom factory can be supplied with
// WithSource, which is how tests substitute deterministic streams and how
// embedders plug in hardware-backed generators.
package rng
