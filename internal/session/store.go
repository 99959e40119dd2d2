// Package session holds the local authentication state: the bearer
// token and the cached user profile. The store is the single source of
// truth for "is a user signed in" and "who are they"; it is injected
// into every client rather than accessed as ambient global state.
package session

import (
	"sync"

	"github.com/flowtrace/flowtrace/internal/models"
)

// Store defines the interface for session persistence.
//
// Token presence is the only authentication signal; the store never
// validates expiry locally — a stale token is discovered when a
// backend call rejects it.
type Store interface {
	// Token returns the persisted bearer token, if any.
	Token() (string, bool)
	// User returns the cached user profile, if any.
	User() (*models.User, bool)
	// Authenticated reports whether a token is present.
	Authenticated() bool
	// SetSession persists token and user together.
	SetSession(token string, user *models.User) error
	// Clear removes both the token and the user profile.
	Clear() error
}

// MemoryStore implements Store in process memory. Sessions do not
// survive a restart; used by tests and as a fallback when no session
// directory is writable.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the current token.
func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// User returns the cached profile.
func (s *MemoryStore) User() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Authenticated reports whether a token is present.
func (s *MemoryStore) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// SetSession stores token and user together.
func (s *MemoryStore) SetSession(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
	return nil
}

// Clear removes the token and the user profile.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
