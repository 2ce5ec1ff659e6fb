// Package memstore is an in-memory credential store for tests and
// single-process deployments. Credentials live in a mutex-guarded map and
// disappear with the process.
package memstore
