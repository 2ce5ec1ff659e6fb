package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
)

// record keeps everything Save receives, so tests can assert on the full
// credential, not just the secret.
type record struct {
	secret         string
	validationCode int
	scratchCodes   []int
}

// Store is an in-memory authenticator.CredentialStore. The zero value is
// not usable; construct with New.
type Store struct {
	mu      sync.RWMutex
	records map[string]record
}

var _ authenticator.CredentialStore = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]record)}
}

// GetSecret implements authenticator.CredentialStore.
func (s *Store) GetSecret(_ context.Context, userName string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userName]
	if !ok {
		return "", fmt.Errorf("%w: %q", authenticator.ErrUserNotFound, userName)
	}
	return rec.secret, nil
}

// Save implements authenticator.CredentialStore. Saving an existing user
// replaces the stored credential.
func (s *Store) Save(_ context.Context, userName, secret string, validationCode int, scratchCodes []int) error {
	codes := make([]int, len(scratchCodes))
	copy(codes, scratchCodes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userName] = record{
		secret:         secret,
		validationCode: validationCode,
		scratchCodes:   codes,
	}
	return nil
}

// Delete removes a user's credential, if present.
func (s *Store) Delete(userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userName)
}

// Len reports how many users have stored credentials.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ValidationCode returns the stored validation code of a user.
func (s *Store) ValidationCode(userName string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[userName]
	return rec.validationCode, ok
}

// ScratchCodes returns a copy of the stored scratch codes of a user.
func (s *Store) ScratchCodes(userName string) ([]int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[userName]
	if !ok {
		return nil, false
	}
	codes := make([]int, len(rec.scratchCodes))
	copy(codes, rec.scratchCodes)
	return codes, true
}
