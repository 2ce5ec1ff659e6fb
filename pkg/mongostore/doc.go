// Package mongostore is a MongoDB-backed credential store. Each user's
// credential is one document keyed by user name in a configurable
// collection.
package mongostore
