// failing_store.go - Session store double that fails on writes
package testutil

import (
	"github.com/flowtrace/flowtrace/internal/models"
	"github.com/flowtrace/flowtrace/internal/session"
)

// FailingStore wraps a MemoryStore and fails every write with Err.
// Reads pass through, so a pre-seeded token stays visible.
type FailingStore struct {
	Mem *session.MemoryStore
	Err error
}

// NewFailingStore creates a FailingStore whose writes fail with err.
func NewFailingStore(err error) *FailingStore {
	return &FailingStore{Mem: session.NewMemoryStore(), Err: err}
}

func (s *FailingStore) Token() (string, bool)      { return s.Mem.Token() }
func (s *FailingStore) User() (*models.User, bool) { return s.Mem.User() }
func (s *FailingStore) Authenticated() bool        { return s.Mem.Authenticated() }

func (s *FailingStore) SetSession(token string, user *models.User) error {
	return s.Err
}

func (s *FailingStore) Clear() error {
	return s.Err
}
