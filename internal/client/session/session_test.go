package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galeria/admin-api/internal/client/apiclient"
	"github.com/galeria/admin-api/internal/client/credential"
)

// fakeAuthServer accepts admin@admin.com/admin123 and serves /api/auths/user
// for the token it issued.
type fakeAuthServer struct {
	mu        sync.Mutex
	token     string
	role      string
	omitToken bool
	userCalls int
}

func (f *fakeAuthServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/api/auths/login":
		var in struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email != "admin@admin.com" || in.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid credentials"}`)
			return
		}
		if f.omitToken {
			_, _ = io.WriteString(w, `{"token_type":"Bearer"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": f.token, "token_type": "Bearer"})
	case "/api/auths/user":
		f.userCalls++
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid or expired token"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{
			"id": "u1", "name": "Administrator", "email": "admin@admin.com", "role": f.role,
		}})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeAuthServer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userCalls
}

func newTestService(t *testing.T, fake *fakeAuthServer) (*Service, credential.Store) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store := credential.NewMemoryStore()
	client, err := apiclient.New(srv.URL, store)
	require.NoError(t, err)
	return NewService(client, zerolog.Nop()), store
}

func TestLogin_Success(t *testing.T) {
	svc, store := newTestService(t, &fakeAuthServer{token: "tok", role: RoleAdmin})
	gate := NewGate(svc)

	res := svc.Login(context.Background(), "admin@admin.com", "admin123")
	require.True(t, res.Success, res.Error)

	tok, _ := store.Get()
	assert.Equal(t, "tok", tok)

	cur := svc.Current()
	require.NotNil(t, cur)
	assert.Equal(t, RoleAdmin, cur.Role)
	assert.Equal(t, "tok", cur.Token)
	assert.True(t, gate.IsAuthenticated())
	assert.True(t, gate.IsAdmin())
}

func TestLogin_NonAdminRole(t *testing.T) {
	svc, _ := newTestService(t, &fakeAuthServer{token: "tok", role: RoleUser})
	gate := NewGate(svc)

	require.True(t, svc.Login(context.Background(), "admin@admin.com", "admin123").Success)
	assert.True(t, gate.IsAuthenticated())
	assert.False(t, gate.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store := newTestService(t, &fakeAuthServer{token: "tok", role: RoleAdmin})

	res := svc.Login(context.Background(), "admin@admin.com", "nope")
	assert.False(t, res.Success)
	assert.Equal(t, "invalid credentials", res.Error)
	assert.Nil(t, svc.Current())

	tok, _ := store.Get()
	assert.Empty(t, tok)
}

func TestLogin_MissingTokenFailsLoudly(t *testing.T) {
	fake := &fakeAuthServer{token: "tok", role: RoleAdmin, omitToken: true}
	svc, store := newTestService(t, fake)

	res := svc.Login(context.Background(), "admin@admin.com", "admin123")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "access token")
	assert.Nil(t, svc.Current())
	assert.Zero(t, fake.calls())

	tok, _ := store.Get()
	assert.Empty(t, tok)
}

func TestLogout_ClearsEverythingWithoutServer(t *testing.T) {
	svc, store := newTestService(t, &fakeAuthServer{token: "tok", role: RoleAdmin})
	require.True(t, svc.Login(context.Background(), "admin@admin.com", "admin123").Success)

	require.NoError(t, svc.Logout())
	assert.Nil(t, svc.Current())
	tok, _ := store.Get()
	assert.Empty(t, tok)
	assert.False(t, NewGate(svc).IsAuthenticated())
}

func TestInit_ValidToken(t *testing.T) {
	svc, store := newTestService(t, &fakeAuthServer{token: "tok", role: RoleAdmin})
	require.NoError(t, store.Set("tok"))

	assert.True(t, svc.Loading())
	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.Loading())
	<-svc.Ready()

	require.NotNil(t, svc.Current())
	assert.Equal(t, "admin@admin.com", svc.Current().Email)
}

func TestInit_ExpiredTokenClearedSilently(t *testing.T) {
	svc, store := newTestService(t, &fakeAuthServer{token: "tok", role: RoleAdmin})
	require.NoError(t, store.Set("stale"))

	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.Loading())
	assert.Nil(t, svc.Current())

	tok, _ := store.Get()
	assert.Empty(t, tok)
}

func TestInit_NoTokenRunsOnce(t *testing.T) {
	fake := &fakeAuthServer{token: "tok", role: RoleAdmin}
	svc, store := newTestService(t, fake)

	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.Loading())
	assert.Zero(t, fake.calls())

	require.NoError(t, store.Set("tok"))
	require.NoError(t, svc.Init(context.Background()))
	assert.Zero(t, fake.calls())
	assert.Nil(t, svc.Current())
}

func TestUnauthorizedDropsSession(t *testing.T) {
	fake := &fakeAuthServer{token: "tok", role: RoleAdmin}
	svc, store := newTestService(t, fake)
	require.True(t, svc.Login(context.Background(), "admin@admin.com", "admin123").Success)

	// the server rotates its secret
	fake.mu.Lock()
	fake.token = "other"
	fake.mu.Unlock()
	_, err := svc.CurrentUser(context.Background())
	require.ErrorIs(t, err, apiclient.ErrAuthenticationExpired)

	assert.Nil(t, svc.Current())
	tok, _ := store.Get()
	assert.Empty(t, tok)
}
