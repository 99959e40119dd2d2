// Package guard gates access to authenticated views. It resolves once,
// Pending -> Authenticated | Unauthenticated, by consulting the session
// store, and never re-validates: a token revoked server-side mid-session
// is only detected when a later API call fails, not by the guard.
package guard

import (
	"context"
	"sync"

	"github.com/flowtrace/flowtrace/internal/session"
)

// State is the guard's decision state.
type State int

const (
	// StatePending means the session store has not been consulted yet.
	StatePending State = iota
	// StateAuthenticated admits the protected view. Terminal.
	StateAuthenticated
	// StateUnauthenticated redirects to the login entry point. Terminal.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Guard gates one protected view.
type Guard struct {
	mu    sync.Mutex
	store session.Store
	state State
}

// New creates a Guard in StatePending.
func New(store session.Store) *Guard {
	return &Guard{store: store, state: StatePending}
}

// State returns the current state without resolving.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Resolve consults the session store on first call and transitions to a
// terminal state. Later calls return the resolved state unchanged, even
// if the session store has changed since.
func (g *Guard) Resolve() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StatePending {
		if g.store.Authenticated() {
			g.state = StateAuthenticated
		} else {
			g.state = StateUnauthenticated
		}
	}
	return g.state
}

// ResolveAsync runs the check off the caller's goroutine so a UI can
// render a loading placeholder while Pending. The channel receives the
// terminal state exactly once, then closes; on context cancellation it
// closes without a value and the guard stays Pending.
func (g *Guard) ResolveAsync(ctx context.Context) <-chan State {
	out := make(chan State, 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
		default:
			out <- g.Resolve()
		}
	}()
	return out
}

// Admit resolves the guard and reports whether the protected view may
// render.
func (g *Guard) Admit() bool {
	return g.Resolve() == StateAuthenticated
}
