package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/token"
)

// fakeService is a minimal stand-in for the auth endpoints of the remote
// service. It accepts exactly one email/password pair and one bearer token.
type fakeService struct {
	email    string
	password string
	token    string

	registered int
	logins     int
}

func (s *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != s.email || body.Password != s.password {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
			return
		}
		s.logins++
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": s.token, "token_type": "bearer"})
	})

	mux.HandleFunc("POST /api/v1/users/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.email = body.Email
		s.password = body.Password
		s.registered++
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": body.Email, "full_name": body.FullName})
	})

	mux.HandleFunc("GET /api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": s.email, "full_name": "Test User"})
	})

	return mux
}

func newTestManager(t *testing.T, svc *fakeService) (*Manager, *token.MemStore) {
	t.Helper()
	srv := httptest.NewServer(svc.handler())
	t.Cleanup(srv.Close)

	store := token.NewMemStore()
	client := api.NewClient(srv.URL+"/api/v1", store, nil, 5*time.Second)
	return NewManager(client, store, nil), store
}

func validService() *fakeService {
	return &fakeService{email: "user@example.com", password: "hunter2", token: "tok-valid"}
}

func TestManagerStartsLoading(t *testing.T) {
	manager, _ := newTestManager(t, validService())
	assert.Equal(t, StateLoading, manager.State())
	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.User())
}

func TestBootstrapWithoutCredential(t *testing.T) {
	manager, _ := newTestManager(t, validService())

	require.NoError(t, manager.Bootstrap(context.Background()))
	assert.Equal(t, StateUnauthenticated, manager.State())
}

func TestBootstrapWithValidCredential(t *testing.T) {
	manager, store := newTestManager(t, validService())
	require.NoError(t, store.Save("tok-valid"))

	require.NoError(t, manager.Bootstrap(context.Background()))
	assert.Equal(t, StateAuthenticated, manager.State())
	require.NotNil(t, manager.User())
	assert.Equal(t, "user@example.com", manager.User().Email)
}

func TestBootstrapClearsStaleCredential(t *testing.T) {
	manager, store := newTestManager(t, validService())
	require.NoError(t, store.Save("tok-expired"))

	// Recovery path: no error, unauthenticated, credential gone.
	require.NoError(t, manager.Bootstrap(context.Background()))
	assert.Equal(t, StateUnauthenticated, manager.State())

	_, err := store.Load()
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestSignIn(t *testing.T) {
	manager, store := newTestManager(t, validService())

	require.NoError(t, manager.SignIn(context.Background(), "user@example.com", "hunter2"))
	assert.Equal(t, StateAuthenticated, manager.State())
	assert.Equal(t, "Test User", manager.User().FullName)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-valid", tok)
}

func TestSignInWrongPassword(t *testing.T) {
	manager, store := newTestManager(t, validService())

	err := manager.SignIn(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Incorrect email or password")
	assert.Equal(t, StateUnauthenticated, manager.State())

	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, token.ErrNotFound)
}

func TestSignUpSignsIn(t *testing.T) {
	svc := &fakeService{token: "tok-new"}
	manager, _ := newTestManager(t, svc)

	require.NoError(t, manager.SignUp(context.Background(), "new@example.com", "pw123", "New User"))
	assert.Equal(t, StateAuthenticated, manager.State())
	assert.Equal(t, 1, svc.registered)
	assert.Equal(t, 1, svc.logins, "registration must sign in with the same credentials")
}

func TestSignOut(t *testing.T) {
	manager, store := newTestManager(t, validService())
	require.NoError(t, manager.SignIn(context.Background(), "user@example.com", "hunter2"))

	require.NoError(t, manager.SignOut())
	assert.Equal(t, StateUnauthenticated, manager.State())
	assert.Nil(t, manager.User())

	_, err := store.Load()
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestRefreshAfterServerSideInvalidation(t *testing.T) {
	svc := validService()
	manager, store := newTestManager(t, svc)
	require.NoError(t, manager.SignIn(context.Background(), "user@example.com", "hunter2"))

	// The server stops accepting the token; the next protected call gets a
	// 401 and the transport clears the credential behind the manager's back.
	svc.token = "tok-rotated"
	_, err := manager.client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	_, loadErr := store.Load()
	require.ErrorIs(t, loadErr, token.ErrNotFound)

	// The in-memory state is stale until Refresh re-derives it.
	assert.True(t, manager.IsAuthenticated())
	require.NoError(t, manager.Refresh(context.Background()))
	assert.Equal(t, StateUnauthenticated, manager.State())
	assert.Nil(t, manager.User())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
