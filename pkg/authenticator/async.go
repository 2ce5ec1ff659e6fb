package authenticator

import (
	"context"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/async"
)

// The *Async variants run the store round-trip in a goroutine and return a
// Future, for embedders on non-blocking request paths. Semantics are
// identical to their synchronous counterparts.

// CreateUserCredentialsAsync mints and persists a credential without
// blocking the caller.
func (a *Authenticator) CreateUserCredentialsAsync(ctx context.Context, userName string) *async.Future[Credential] {
	return async.Async(ctx, userName, a.CreateUserCredentials)
}

// GenerateUserTOTPAsync resolves the user's secret and derives the current
// code without blocking the caller.
func (a *Authenticator) GenerateUserTOTPAsync(ctx context.Context, userName string) *async.Future[int] {
	return async.Async(ctx, userName, a.GenerateUserTOTP)
}

// AuthorizeUserAsync verifies a user-supplied code without blocking the
// caller. The verification time is fixed when the call is made, not when
// the future is awaited.
func (a *Authenticator) AuthorizeUserAsync(ctx context.Context, userName string, code int) *async.Future[bool] {
	at := time.Now()
	return async.Async(ctx, userName, func(ctx context.Context, user string) (bool, error) {
		return a.AuthorizeUserAt(ctx, user, code, at)
	})
}
