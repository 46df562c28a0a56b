// Package session tracks who is currently signed in.
//
// The manager is the single owner of authentication state. It starts in
// StateLoading, derives its first real state from the stored credential at
// Bootstrap, and afterwards only transitions through explicit SignIn,
// SignUp, SignOut and Refresh calls. There is no background transition on
// token expiry: a server-side 401 clears the credential inside the API
// transport, and the next Refresh re-derives the state from what is
// actually stored.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/log"
	"github.com/NicoCalcagno/Spendly/internal/token"
)

// State is the authentication lifecycle position.
type State int

const (
	// StateLoading is the initial state, before the stored credential has
	// been checked.
	StateLoading State = iota
	// StateUnauthenticated means no valid credential is held.
	StateUnauthenticated
	// StateAuthenticated means a credential is stored and the current user
	// has been fetched.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Manager owns the session lifecycle.
type Manager struct {
	client *api.Client
	tokens token.Store
	logger *log.Logger

	mu    sync.Mutex
	state State
	user  *api.User
}

// NewManager creates a manager in StateLoading.
func NewManager(client *api.Client, tokens token.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Manager{
		client: client,
		tokens: tokens,
		logger: logger.WithComponent("session"),
		state:  StateLoading,
	}
}

// Bootstrap derives the initial state from the stored credential. A stale
// credential (present but rejected by the service) is cleared as a
// recovery action; that path still lands in StateUnauthenticated without
// returning an error.
func (m *Manager) Bootstrap(ctx context.Context) error {
	return m.derive(ctx)
}

// Refresh re-derives the state from the stored credential. The UI calls it
// after a protected call fails with an authorization error, closing the
// window where the in-memory state could disagree with the cleared
// credential.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.derive(ctx)
}

func (m *Manager) derive(ctx context.Context) error {
	_, err := m.tokens.Load()
	if errors.Is(err, token.ErrNotFound) {
		m.set(StateUnauthenticated, nil)
		return nil
	}
	if err != nil {
		m.set(StateUnauthenticated, nil)
		return fmt.Errorf("load credential: %w", err)
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		// The credential did not hold up. Drop it so the next derive does
		// not repeat the failed round trip.
		m.logger.WarnContext(ctx, "Stored credential rejected, clearing", "error", err)
		if clearErr := m.tokens.Clear(); clearErr != nil {
			m.logger.ErrorContext(ctx, "Failed to clear stale credential", "error", clearErr)
		}
		m.set(StateUnauthenticated, nil)
		return nil
	}

	m.set(StateAuthenticated, user)
	m.logger.InfoContext(ctx, "Session restored", "email", user.Email)
	return nil
}

// SignIn logs in and fetches the current user. On success the manager is
// StateAuthenticated; on failure it is StateUnauthenticated and the error
// carries the human-readable message for the UI.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if _, err := m.client.Login(ctx, email, password); err != nil {
		m.set(StateUnauthenticated, nil)
		return err
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.set(StateUnauthenticated, nil)
		return err
	}

	m.set(StateAuthenticated, user)
	return nil
}

// SignUp registers a new account and then signs it in with the same
// credentials.
func (m *Manager) SignUp(ctx context.Context, email, password, fullName string) error {
	if _, err := m.client.Register(ctx, email, password, fullName); err != nil {
		return err
	}
	return m.SignIn(ctx, email, password)
}

// SignOut clears the credential and the in-memory user.
func (m *Manager) SignOut() error {
	err := m.client.Logout()
	m.set(StateUnauthenticated, nil)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	m.logger.Info("Signed out")
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the signed-in user, or nil outside StateAuthenticated.
func (m *Manager) User() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether the manager is in StateAuthenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

func (m *Manager) set(state State, user *api.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}
