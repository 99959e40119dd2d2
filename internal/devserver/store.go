// Package devserver is a local stub of the Flowtrace backend. It serves
// the production wire contract (auth, CSV datasource upload, case-root
// report) with an in-memory account store and fixture process-mining
// data, so the CLI and the client tests can run without the real
// service. It performs no actual mining.
package devserver

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/flowtrace/flowtrace/internal/models"
)

// Sentinel errors surfaced by the store.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownToken       = errors.New("unknown token")
)

type userRecord struct {
	Email        string
	FullName     string
	Company      string
	PasswordHash []byte
}

// Store is the in-memory account and datasource registry.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*userRecord // keyed by email
	tokens      map[string]string      // session token -> email
	recovery    map[string]string      // recovery token -> email, single use
	datasources map[string]models.UploadResult
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]*userRecord),
		tokens:      make(map[string]string),
		recovery:    make(map[string]string),
		datasources: make(map[string]models.UploadResult),
	}
}

// Seed registers an account without issuing a token. Used at startup so
// the stub has a known login.
func (s *Store) Seed(email, password, fullName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = &userRecord{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}
	return nil
}

// Authenticate verifies credentials and issues a session token.
func (s *Store) Authenticate(email, password string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[email]
	if !ok {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	s.tokens[token] = email

	return &models.User{FullName: rec.FullName, Email: rec.Email}, token, nil
}

// Register creates an account and issues a session token.
func (s *Store) Register(payload models.SignUpPayload) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[payload.Email]; exists {
		return nil, "", ErrEmailTaken
	}

	s.users[payload.Email] = &userRecord{
		Email:        payload.Email,
		FullName:     payload.FullName,
		Company:      payload.Company,
		PasswordHash: hash,
	}

	token := uuid.New().String()
	s.tokens[token] = payload.Email

	return &models.User{FullName: payload.FullName, Email: payload.Email}, token, nil
}

// LookupToken resolves a session token to the account email.
func (s *Store) LookupToken(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.tokens[token]
	return email, ok
}

// RevokeToken invalidates a session token. Revoking an unknown token is
// a no-op, matching the idempotent logout contract.
func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// IssueRecoveryToken creates a single-use recovery token for email.
// Returns false when no such account exists.
func (s *Store) IssueRecoveryToken(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return "", false
	}
	token := uuid.New().String()
	s.recovery[token] = email
	return token, true
}

// ResetPassword consumes a recovery token and replaces the account
// password. The token is invalid afterwards.
func (s *Store) ResetPassword(recoveryToken, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.recovery[recoveryToken]
	if !ok {
		return ErrUnknownToken
	}
	rec, ok := s.users[email]
	if !ok {
		return ErrUnknownToken
	}

	rec.PasswordHash = hash
	delete(s.recovery, recoveryToken)
	return nil
}

// AddDatasource records an uploaded datasource.
func (s *Store) AddDatasource(res models.UploadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasources[res.ID] = res
}

// DatasourceCount reports how many datasources have been uploaded.
func (s *Store) DatasourceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasources)
}
