package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
)

const defaultKeyPrefix = "totp:credentials:"

const (
	fieldSecret         = "secret"
	fieldValidationCode = "validation_code"
	fieldScratchCodes   = "scratch_codes"
)

// Store persists credentials in Redis hashes.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

var _ authenticator.CredentialStore = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix overrides the default "totp:credentials:" key prefix.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) { s.keyPrefix = prefix }
}

// New wraps an existing Redis client into a credential store.
func New(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{client: client, keyPrefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(userName string) string {
	return s.keyPrefix + userName
}

// GetSecret implements authenticator.CredentialStore.
func (s *Store) GetSecret(ctx context.Context, userName string) (string, error) {
	secret, err := s.client.HGet(ctx, s.key(userName), fieldSecret).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return "", err
	}
	return secret, nil
}

// Save implements authenticator.CredentialStore. Saving an existing user
// replaces the whole stored credential.
func (s *Store) Save(ctx context.Context, userName, secret string, validationCode int, scratchCodes []int) error {
	key := s.key(userName)

	// Delete-then-set in one transaction so a shrunk scratch-code list
	// never leaves stale fields behind.
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, map[string]any{
			fieldSecret:         secret,
			fieldValidationCode: strconv.Itoa(validationCode),
			fieldScratchCodes:   encodeScratchCodes(scratchCodes),
		})
		return nil
	})
	return err
}

// ScratchCodes returns the stored scratch codes of a user.
func (s *Store) ScratchCodes(ctx context.Context, userName string) ([]int, error) {
	raw, err := s.client.HGet(ctx, s.key(userName), fieldScratchCodes).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return nil, err
	}
	return decodeScratchCodes(raw)
}

func encodeScratchCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}
	return strings.Join(parts, ",")
}

func decodeScratchCodes(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]int, len(parts))
	for i, part := range parts {
		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Join(ErrCorruptedRecord, err)
		}
		codes[i] = code
	}
	return codes, nil
}
