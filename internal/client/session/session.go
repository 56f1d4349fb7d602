// Package session owns the signed-in user of the admin client.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/client/apiclient"
)

// Role values returned by the server.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Session is the authenticated identity. Token is the bearer credential it was
// hydrated with.
type Session struct {
	UserID      string `json:"id"`
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Token       string `json:"-"`
}

// LoginResult is the outcome of Login. Error is set when Success is false.
type LoginResult struct {
	Success bool
	Error   string
}

// Service performs login, logout and current-user hydration. It is the only
// writer of the current Session.
type Service struct {
	client *apiclient.Client
	log    zerolog.Logger

	mu      sync.RWMutex
	current *Session

	initOnce sync.Once
	ready    chan struct{}
}

// NewService returns a Service bound to client. Any 401 seen by client drops
// the in-memory Session.
func NewService(client *apiclient.Client, log zerolog.Logger) *Service {
	s := &Service{client: client, log: log, ready: make(chan struct{})}
	client.OnUnauthorized(s.drop)
	return s
}

// Current returns the signed-in Session, or nil.
func (s *Service) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login exchanges credentials for a token, stores it and hydrates the Session.
// It never returns an error: failures are reported in LoginResult.
func (s *Service) Login(ctx context.Context, email, password string) LoginResult {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := s.client.Do(ctx, apiclient.Request{
		Method:    http.MethodPost,
		Path:      "/auths/login",
		Body:      map[string]string{"email": email, "password": password},
		Anonymous: true,
	}, &resp)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return LoginResult{Error: apiclient.Message(err)}
	}
	if resp.AccessToken == "" {
		err := &apiclient.Error{
			Kind:    apiclient.ErrMalformedResponse,
			Status:  http.StatusOK,
			Message: "login response has no access token",
			Method:  http.MethodPost,
			Path:    "/auths/login",
		}
		s.log.Error().Err(err).Msg("login failed")
		return LoginResult{Error: err.Message}
	}

	if err := s.client.Store().Set(resp.AccessToken); err != nil {
		s.log.Error().Err(err).Msg("store token")
		return LoginResult{Error: fmt.Sprintf("store token: %v", err)}
	}

	if _, err := s.CurrentUser(ctx); err != nil {
		s.log.Warn().Err(err).Msg("hydrate session after login")
		return LoginResult{Error: apiclient.Message(err)}
	}
	s.log.Info().Str("email", email).Msg("logged in")
	return LoginResult{Success: true}
}

// CurrentUser fetches the signed-in user and replaces the Session with it.
func (s *Service) CurrentUser(ctx context.Context) (*Session, error) {
	token, err := s.client.Store().Get()
	if err != nil {
		return nil, err
	}
	var resp struct {
		User *Session `json:"user"`
	}
	if err := s.client.Do(ctx, apiclient.Request{Path: "/auths/user"}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &apiclient.Error{
			Kind:    apiclient.ErrMalformedResponse,
			Status:  http.StatusOK,
			Message: "current user response has no user",
			Method:  http.MethodGet,
			Path:    "/auths/user",
		}
	}
	resp.User.Token = token

	s.mu.Lock()
	s.current = resp.User
	s.mu.Unlock()
	return resp.User, nil
}

// Logout forgets the token and the Session. It never contacts the server.
func (s *Service) Logout() error {
	s.drop()
	return s.client.Store().Clear()
}

// Init hydrates the Session from a stored token. It runs once per Service;
// later calls return immediately. An expired token is cleared silently.
func (s *Service) Init(ctx context.Context) error {
	var err error
	s.initOnce.Do(func() {
		defer close(s.ready)
		err = s.hydrate(ctx)
	})
	return err
}

func (s *Service) hydrate(ctx context.Context) error {
	token, err := s.client.Store().Get()
	if err != nil || token == "" {
		return err
	}
	_, err = s.CurrentUser(ctx)
	if errors.Is(err, apiclient.ErrAuthenticationExpired) {
		s.log.Debug().Msg("stored token rejected, starting signed out")
		return nil
	}
	return err
}

// Loading reports whether Init has not finished yet.
func (s *Service) Loading() bool {
	select {
	case <-s.ready:
		return false
	default:
		return true
	}
}

// Ready is closed once Init has finished.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) drop() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
