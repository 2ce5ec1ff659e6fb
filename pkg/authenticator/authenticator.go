package authenticator

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/rng"
)

// Authenticator is the facade tying together configuration, randomness and
// the optional credential store. Construct it once and share it: all
// methods are safe for concurrent use.
type Authenticator struct {
	config    Config
	random    io.Reader
	store     CredentialStore
	storeOnce sync.Once
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithCredentialStore sets the store explicitly, overriding any process-wide
// registration.
func WithCredentialStore(store CredentialStore) Option {
	return func(a *Authenticator) { a.store = store }
}

// WithRandom replaces the default reseeding crypto/rand source. Intended
// for tests and for embedders with hardware-backed generators.
func WithRandom(r io.Reader) Option {
	return func(a *Authenticator) { a.random = r }
}

// New builds an Authenticator for the given configuration.
func New(cfg Config, opts ...Option) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &Authenticator{config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.random == nil {
		random, err := rng.New()
		if err != nil {
			return nil, err
		}
		a.random = random
	}

	return a, nil
}

// Config returns the configuration the facade operates under.
func (a *Authenticator) Config() Config { return a.config }

// GenerateTOTP returns the integer code for the given encoded secret at the
// current time.
func (a *Authenticator) GenerateTOTP(secret string) (int, error) {
	return a.GenerateTOTPAt(secret, time.Now())
}

// GenerateTOTPAt returns the integer code for the given encoded secret at
// an arbitrary time.
func (a *Authenticator) GenerateTOTPAt(secret string, t time.Time) (int, error) {
	key, err := a.config.keyEncoding.Decode(secret)
	if err != nil {
		return 0, err
	}
	return a.config.generator().CodeAt(key, t)
}

// Authorize checks a user-supplied code against the secret at the current
// time, tolerating clock skew per the configured window.
func (a *Authenticator) Authorize(secret string, code int) (bool, error) {
	return a.AuthorizeAt(secret, code, time.Now())
}

// AuthorizeAt is Authorize at an arbitrary time. Structurally impossible
// codes are rejected before the secret is even decoded.
func (a *Authenticator) AuthorizeAt(secret string, code int, t time.Time) (bool, error) {
	if code <= 0 || code >= a.config.codeModulus() {
		return false, nil
	}

	key, err := a.config.keyEncoding.Decode(secret)
	if err != nil {
		return false, err
	}
	return a.config.generator().Validate(key, code, t, a.config.windowSize)
}

// CreateUserCredentials mints a credential and persists it through the
// credential store under the given user name.
func (a *Authenticator) CreateUserCredentials(ctx context.Context, userName string) (Credential, error) {
	if strings.TrimSpace(userName) == "" {
		return Credential{}, ErrInvalidUserName
	}

	store, err := a.credentialStore()
	if err != nil {
		return Credential{}, err
	}

	cred, err := a.CreateCredentials()
	if err != nil {
		return Credential{}, err
	}

	if err := store.Save(ctx, userName, cred.Key(), cred.ValidationCode(), cred.ScratchCodes()); err != nil {
		return Credential{}, errors.Join(ErrStoreFailed, err)
	}

	return cred, nil
}

// GenerateUserTOTP returns the current code of the given user.
func (a *Authenticator) GenerateUserTOTP(ctx context.Context, userName string) (int, error) {
	return a.GenerateUserTOTPAt(ctx, userName, time.Now())
}

// GenerateUserTOTPAt returns the code of the given user at an arbitrary
// time.
func (a *Authenticator) GenerateUserTOTPAt(ctx context.Context, userName string, t time.Time) (int, error) {
	secret, err := a.userSecret(ctx, userName)
	if err != nil {
		return 0, err
	}
	return a.GenerateTOTPAt(secret, t)
}

// AuthorizeUser checks a user-supplied code against the secret stored for
// the given user at the current time.
func (a *Authenticator) AuthorizeUser(ctx context.Context, userName string, code int) (bool, error) {
	return a.AuthorizeUserAt(ctx, userName, code, time.Now())
}

// AuthorizeUserAt is AuthorizeUser at an arbitrary time.
func (a *Authenticator) AuthorizeUserAt(ctx context.Context, userName string, code int, t time.Time) (bool, error) {
	secret, err := a.userSecret(ctx, userName)
	if err != nil {
		return false, err
	}
	return a.AuthorizeAt(secret, code, t)
}

func (a *Authenticator) userSecret(ctx context.Context, userName string) (string, error) {
	if strings.TrimSpace(userName) == "" {
		return "", ErrInvalidUserName
	}

	store, err := a.credentialStore()
	if err != nil {
		return "", err
	}

	secret, err := store.GetSecret(ctx, userName)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", err
		}
		return "", errors.Join(ErrStoreFailed, err)
	}
	return secret, nil
}

// credentialStore resolves the store to use: an explicitly configured one
// wins, otherwise the process-wide registration is consulted once and the
// outcome — present or absent — is cached for the facade's lifetime.
func (a *Authenticator) credentialStore() (CredentialStore, error) {
	a.storeOnce.Do(func() {
		if a.store == nil {
			a.store = lookupRegisteredStore()
		}
	})
	if a.store == nil {
		return nil, ErrStoreNotConfigured
	}
	return a.store, nil
}
