package guard

import (
	"context"
	"testing"
	"time"

	"github.com/flowtrace/flowtrace/internal/models"
	"github.com/flowtrace/flowtrace/internal/session"
)

func TestGuard_ResolvesFromSessionStore(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  State
	}{
		{name: "token present", token: "tok1", want: StateAuthenticated},
		{name: "no token", token: "", want: StateUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			if tt.token != "" {
				if err := store.SetSession(tt.token, &models.User{Email: "a@b.com"}); err != nil {
					t.Fatalf("SetSession: %v", err)
				}
			}

			g := New(store)
			if g.State() != StatePending {
				t.Fatalf("fresh guard should be pending, got %v", g.State())
			}

			if got := g.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuard_TerminalStatesIgnoreLaterSessionChanges(t *testing.T) {
	store := session.NewMemoryStore()
	g := New(store)

	if got := g.Resolve(); got != StateUnauthenticated {
		t.Fatalf("Resolve() = %v, want unauthenticated", got)
	}

	// A login after the guard has resolved must not flip the decision;
	// only a fresh guard (next render) sees the new session.
	store.SetSession("tok-later", nil)
	if got := g.Resolve(); got != StateUnauthenticated {
		t.Errorf("resolved guard changed state to %v", got)
	}

	fresh := New(store)
	if !fresh.Admit() {
		t.Error("fresh guard should admit after login")
	}
}

func TestGuard_ResolveAsync(t *testing.T) {
	store := session.NewMemoryStore()
	store.SetSession("tok", nil)
	g := New(store)

	select {
	case got := <-g.ResolveAsync(context.Background()):
		if got != StateAuthenticated {
			t.Errorf("got %v, want authenticated", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for guard resolution")
	}
}

func TestGuard_ResolveAsyncCancelledContext(t *testing.T) {
	g := New(session.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := g.ResolveAsync(ctx)
	if _, ok := <-ch; ok {
		t.Error("cancelled resolution should close without a value")
	}
	if g.State() != StatePending {
		t.Errorf("cancelled resolution should leave guard pending, got %v", g.State())
	}
}

func TestState_String(t *testing.T) {
	if StatePending.String() != "pending" ||
		StateAuthenticated.String() != "authenticated" ||
		StateUnauthenticated.String() != "unauthenticated" {
		t.Error("unexpected state names")
	}
}
