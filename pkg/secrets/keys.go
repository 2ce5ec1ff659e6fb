package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config carries the process-wide encryption key for TOTP secrets.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"` // Base64-encoded 32-byte key
}

var (
	cfg  Config
	once sync.Once
)

// GenerateEncryptionKey creates a new random 32-byte key suitable for
// AES-256 encryption.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a new random key and returns it
// base64-encoded, ready to be stored in the TOTP_ENCRYPTION_KEY environment
// variable.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// LoadEncryptionKey reads and decodes the encryption key from the
// environment. The environment is parsed once per process; later calls
// return the cached value.
func LoadEncryptionKey() ([]byte, error) {
	var parseErr error
	once.Do(func() {
		parseErr = env.Parse(&cfg)
	})
	if parseErr != nil {
		return nil, errors.Join(ErrFailedToLoadKey, parseErr)
	}
	return DecodeEncryptionKey(cfg.EncryptionKey)
}

// DecodeEncryptionKey decodes a base64-encoded 32-byte encryption key.
func DecodeEncryptionKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Join(ErrFailedToLoadKey, ErrEncryptionKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadKey, err)
	}

	if len(key) != KeySize {
		return nil, errors.Join(ErrFailedToLoadKey, ErrInvalidEncryptionKeyLength)
	}

	return key, nil
}
