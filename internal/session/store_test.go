package session

import (
	"testing"

	"github.com/flowtrace/flowtrace/internal/models"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	s := NewMemoryStore()

	if s.Authenticated() {
		t.Error("fresh store should not be authenticated")
	}
	if _, ok := s.Token(); ok {
		t.Error("fresh store should have no token")
	}
	if _, ok := s.User(); ok {
		t.Error("fresh store should have no user")
	}

	user := &models.User{FullName: "Ada Lovelace", Email: "ada@example.com"}
	if err := s.SetSession("tok1", user); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if !s.Authenticated() {
		t.Error("expected authenticated after SetSession")
	}
	tok, ok := s.Token()
	if !ok || tok != "tok1" {
		t.Errorf("expected token tok1, got %q (ok=%v)", tok, ok)
	}
	got, ok := s.User()
	if !ok || got.Email != "ada@example.com" {
		t.Errorf("unexpected user: %+v (ok=%v)", got, ok)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Authenticated() {
		t.Error("expected unauthenticated after Clear")
	}
	if _, ok := s.User(); ok {
		t.Error("Clear must remove the user profile as well as the token")
	}
}

func TestMemoryStore_UserIsCopied(t *testing.T) {
	s := NewMemoryStore()
	user := &models.User{FullName: "Ada", Email: "ada@example.com"}
	if err := s.SetSession("tok", user); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// Mutating the caller's struct must not leak into the store.
	user.Email = "mallory@example.com"

	got, _ := s.User()
	if got.Email != "ada@example.com" {
		t.Errorf("store user mutated through caller pointer: %+v", got)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	user := &models.User{FullName: "Grace Hopper", Email: "grace@example.com"}
	if err := s.SetSession("tok-persist", user); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// Reopen from disk, as after a process restart.
	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	tok, ok := reopened.Token()
	if !ok || tok != "tok-persist" {
		t.Errorf("expected persisted token, got %q (ok=%v)", tok, ok)
	}
	got, ok := reopened.User()
	if !ok || got.FullName != "Grace Hopper" {
		t.Errorf("expected persisted user, got %+v (ok=%v)", got, ok)
	}
}

func TestFileStore_ClearRemovesBothValues(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.SetSession("tok", &models.User{Email: "a@b.com"}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Authenticated() {
		t.Error("cleared session must stay cleared across reopen")
	}
	if _, ok := reopened.User(); ok {
		t.Error("cleared user profile must not reappear across reopen")
	}
}

func TestFileStore_EmptyDirIsUnauthenticated(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if s.Authenticated() {
		t.Error("store with no session file should be unauthenticated")
	}
}

func TestFileStore_SessionWithoutUser(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.SetSession("tok-only", nil); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if !s.Authenticated() {
		t.Error("token without user should still count as authenticated")
	}
	if _, ok := s.User(); ok {
		t.Error("expected no user profile")
	}
}
