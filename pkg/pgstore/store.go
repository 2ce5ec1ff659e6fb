package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
)

// Store persists credentials in the totp_credentials table.
type Store struct {
	pool *pgxpool.Pool
}

var _ authenticator.CredentialStore = (*Store)(nil)

// New wraps an existing connection pool into a credential store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetSecret implements authenticator.CredentialStore.
func (s *Store) GetSecret(ctx context.Context, userName string) (string, error) {
	var secret string
	err := s.pool.QueryRow(ctx,
		`SELECT secret FROM totp_credentials WHERE user_name = $1`,
		userName,
	).Scan(&secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return "", err
	}
	return secret, nil
}

// Save implements authenticator.CredentialStore with an upsert, so
// re-enrolling a user replaces the previous credential atomically.
func (s *Store) Save(ctx context.Context, userName, secret string, validationCode int, scratchCodes []int) error {
	codes := make([]int32, len(scratchCodes))
	for i, code := range scratchCodes {
		codes[i] = int32(code)
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO totp_credentials (user_name, secret, validation_code, scratch_codes)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_name) DO UPDATE
		 SET secret = EXCLUDED.secret,
		     validation_code = EXCLUDED.validation_code,
		     scratch_codes = EXCLUDED.scratch_codes,
		     updated_at = now()`,
		userName, secret, validationCode, codes,
	)
	return err
}

// ScratchCodes returns the stored scratch codes of a user.
func (s *Store) ScratchCodes(ctx context.Context, userName string) ([]int, error) {
	var codes []int32
	err := s.pool.QueryRow(ctx,
		`SELECT scratch_codes FROM totp_credentials WHERE user_name = $1`,
		userName,
	).Scan(&codes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
		}
		return nil, err
	}

	result := make([]int, len(codes))
	for i, code := range codes {
		result[i] = int(code)
	}
	return result, nil
}
