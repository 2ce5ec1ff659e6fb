package secrets

import "errors"

var (
	ErrFailedToEncryptSecret      = errors.New("failed to encrypt TOTP secret")
	ErrFailedToDecryptSecret      = errors.New("failed to decrypt TOTP secret")
	ErrCiphertextTooShort         = errors.New("ciphertext too short")
	ErrFailedToGenerateKey        = errors.New("failed to generate encryption key")
	ErrFailedToLoadKey            = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeyLength = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet        = errors.New("TOTP encryption key not set")
)
