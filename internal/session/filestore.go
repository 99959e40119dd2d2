package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/flowtrace/flowtrace/internal/models"
)

// Storage keys within the session file. The user profile is stored
// JSON-encoded under its key so the on-disk layout matches the web
// client's localStorage contract.
const (
	keyToken = "flowtrace.token"
	keyUser  = "flowtrace.user"
)

const sessionFileName = "session.db"

// FileStore implements Store backed by a msgpack key-value file, so
// the session survives process restarts until explicitly cleared.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string][]byte
}

// NewFileStore opens (or creates) the session file in dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	s := &FileStore{
		path:   filepath.Join(dir, sessionFileName),
		values: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session file: %w", err)
	}
	if err := msgpack.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("decoding session file: %w", err)
	}
	return nil
}

// flush writes the value map to a temp file and renames it into place,
// so a crash mid-write never leaves a truncated session file.
func (s *FileStore) flush() error {
	data, err := msgpack.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding session file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, if any.
func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[keyToken]
	if !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// User returns the cached user profile, if any.
func (s *FileStore) User() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[keyUser]
	if !ok || len(raw) == 0 {
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// Authenticated reports whether a token is present.
func (s *FileStore) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// SetSession persists token and user together. Both values land in the
// same flush, so a reader never observes a token without its profile.
func (s *FileStore) SetSession(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[keyToken] = []byte(token)
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encoding user profile: %w", err)
		}
		s.values[keyUser] = raw
	} else {
		delete(s.values, keyUser)
	}

	return s.flush()
}

// Clear removes both the token and the user profile.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, keyToken)
	delete(s.values, keyUser)

	return s.flush()
}
