package client

import (
	"context"
	"os"
	"strings"
	"sync"

	"foodie-finder-backend/internal/models"
)

// AuthState is the session's authentication state
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateAuthenticating
	StateAuthenticated
	StateError
)

func (s AuthState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// TokenStore persists the session token between runs
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory only
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}

// FileTokenStore persists the token to a file
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Session is the authentication state container. It owns the token lifecycle:
// login and register move it through authenticating to authenticated or
// error, logout and any 401 revert it to anonymous.
type Session struct {
	api    *Client
	tokens TokenStore

	mu    sync.Mutex
	state AuthState
	user  *models.User
	err   error
}

// NewSession creates a session bound to the given API client and token store
func NewSession(api *Client, tokens TokenStore) *Session {
	s := &Session{
		api:    api,
		tokens: tokens,
		state:  StateAnonymous,
	}
	api.OnUnauthorized = s.invalidate
	return s
}

// State returns the current authentication state
func (s *Session) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, or nil
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Err returns the error of the last failed login or registration
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Login authenticates with credentials
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.setAuthenticating()
	payload, err := s.api.Login(ctx, email, password)
	return s.finishAuth(payload, err)
}

// Register creates an account and authenticates
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	s.setAuthenticating()
	payload, err := s.api.Register(ctx, name, email, password)
	return s.finishAuth(payload, err)
}

func (s *Session) setAuthenticating() {
	s.mu.Lock()
	s.state = StateAuthenticating
	s.err = nil
	s.mu.Unlock()
}

func (s *Session) finishAuth(payload *AuthPayload, err error) error {
	if err != nil {
		s.api.SetToken("")
		s.tokens.Clear()
		s.mu.Lock()
		s.state = StateError
		s.user = nil
		s.err = err
		s.mu.Unlock()
		return err
	}

	s.api.SetToken(payload.Token)
	s.tokens.Save(payload.Token)
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &payload.User
	s.err = nil
	s.mu.Unlock()
	return nil
}

// Logout discards the token and reverts to anonymous
func (s *Session) Logout() {
	s.api.SetToken("")
	s.tokens.Clear()
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.err = nil
	s.mu.Unlock()
}

// Resume restores a persisted session on startup. If the stored token no
// longer resolves to a user the session silently reverts to anonymous and
// the stale token is discarded.
func (s *Session) Resume(ctx context.Context) {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		return
	}

	s.api.SetToken(token)
	me, err := s.api.Me(ctx)
	if err != nil {
		s.api.SetToken("")
		s.tokens.Clear()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &me.User
	s.err = nil
	s.mu.Unlock()
}

// invalidate handles an authorization failure on any request
func (s *Session) invalidate() {
	s.api.SetToken("")
	s.tokens.Clear()
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}
