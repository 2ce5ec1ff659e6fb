package authenticator

import "errors"

var (
	ErrInvalidUserName             = errors.New("user name cannot be empty")
	ErrInvalidKeyLength            = errors.New("secret key length must be at least 10 bytes")
	ErrInvalidScratchCodeCount     = errors.New("scratch code count cannot be negative")
	ErrStoreNotConfigured          = errors.New("credential store is not configured")
	ErrUserNotFound                = errors.New("user not found in credential store")
	ErrStoreFailed                 = errors.New("credential store operation failed")
	ErrFailedToGenerateCredentials = errors.New("failed to generate credentials")
)
