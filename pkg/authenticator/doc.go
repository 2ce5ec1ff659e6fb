// Package authenticator is the high-level entry point for enrolling users
// into TOTP-based two-factor authentication and verifying the codes their
// authenticator applications produce.
//
// An Authenticator bundles an immutable Config, a reseeding random source
// and an optional CredentialStore. It creates credentials (secret key,
// validation code at the UNIX epoch, and a set of single-use 8-digit scratch
// codes), derives time-based codes from encoded secrets, and verifies
// user-supplied codes with tolerance for clock skew.
//
// # Usage
//
// Enrolling and verifying without a store:
//
//	auth, err := authenticator.New(authenticator.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cred, err := auth.CreateCredentials()
//	// persist cred.Key() and cred.ScratchCodes(), show the provisioning
//	// URI built by package otpuri to the user
//
//	ok, err := auth.Authorize(cred.Key(), 123456)
//
// # Credential stores
//
// User-scoped operations (CreateUserCredentials, AuthorizeUser,
// GenerateUserTOTP) resolve secrets through a CredentialStore. The store is
// either passed explicitly with WithCredentialStore or registered process
// wide with RegisterStore; each Authenticator looks the registration up at
// most once and caches the result. Without a store, user-scoped operations
// fail with ErrStoreNotConfigured. Ready-made stores live in the memstore,
// redisstore, pgstore and mongostore packages.
//
// # Concurrency
//
// All methods are safe for concurrent use. Config and Credential values are
// immutable after construction; the only shared mutable state is the random
// source, which synchronises internally.
//
// # Verification semantics
//
// Authorize returns (false, nil) for codes that do not match any time step
// in the configured window and for codes that are structurally impossible.
// Errors are reserved for misconfiguration (undecodable secret, invalid
// window) and for store failures, so a boolean false always means "the user
// typed the wrong code".
package authenticator
