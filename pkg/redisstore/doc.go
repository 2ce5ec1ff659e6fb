// Package redisstore is a Redis-backed credential store. Each user's
// credential lives in a hash under a configurable key prefix, with the
// secret, the validation code and the scratch codes as fields.
//
// Connect establishes the client with retry, the way services bring up
// their Redis dependency at startup; New wraps an existing client when the
// embedding application already manages one.
package redisstore
