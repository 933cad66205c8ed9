// Package session keeps the authenticated user state: bearer token, the
// profile fetched with it and the on-disk token file used to survive
// restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// ErrNotAuthenticated is returned by operations which require a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

type state struct {
	Token string `json:"token"`
}

// Store owns the current session. All methods are safe for concurrent use.
type Store struct {
	client    api.Client
	statePath string
	log       logrus.FieldLogger

	mu    sync.RWMutex
	token string
	user  *entities.User
}

// New creates a Store persisting the token at statePath. statePath may be
// empty, in which case the session lives only in memory.
func New(client api.Client, statePath string) *Store {
	return &Store{
		client:    client,
		statePath: statePath,
		log:       logrus.WithField("package", "session"),
	}
}

// Restore loads the persisted token, if any, and validates it against the
// backend. A missing state file is not an error. A rejected token clears the
// persisted state and leaves the store unauthenticated.
func (s *Store) Restore(ctx context.Context) error {
	if s.statePath == "" {
		return nil
	}

	b, err := os.ReadFile(s.statePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session state: %w", err)
	}

	var st state
	if err := json.Unmarshal(b, &st); err != nil {
		return fmt.Errorf("failed to decode session state: %w", err)
	}
	if st.Token == "" {
		return nil
	}

	s.client.SetToken(st.Token)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.client.SetToken("")
		if errors.Is(err, api.ErrUnauthorized) {
			s.log.Debug("persisted token rejected, clearing state")
			s.clearState()
			return nil
		}
		return fmt.Errorf("failed to validate session: %w", err)
	}

	s.mu.Lock()
	s.token = st.Token
	s.user = user
	s.mu.Unlock()

	return nil
}

// Login exchanges credentials for a token, fetches the profile and persists
// the token.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	s.client.SetToken(token)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.client.SetToken("")
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if err := s.persist(token); err != nil {
		s.log.WithError(err).Warn("failed to persist session state")
	}

	return nil
}

// Logout forgets the token and the profile and removes the state file.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.client.SetToken("")
	s.clearState()
}

// RefreshUser re-fetches the profile, e.g. after UpdateName or UpdateCity.
func (s *Store) RefreshUser(ctx context.Context) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return nil
}

// Authenticated reports whether a validated session is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// User returns a copy of the current profile, or nil when unauthenticated.
func (s *Store) User() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Can reports whether the current user's role grants c. Unauthenticated
// sessions have no capabilities.
func (s *Store) Can(c entities.Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return false
	}
	return s.user.Role.Can(c)
}

// TokenExpiresAt extracts the expiry claim from the bearer token without
// verifying the signature. The zero time is returned when the token is
// absent, malformed or carries no expiry.
func (s *Store) TokenExpiresAt() time.Time {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return time.Time{}
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func (s *Store) persist(token string) error {
	if s.statePath == "" {
		return nil
	}

	b, err := json.Marshal(state{Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.statePath), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(s.statePath, b, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}

	return nil
}

func (s *Store) clearState() {
	if s.statePath == "" {
		return
	}
	if err := os.Remove(s.statePath); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).Warn("failed to remove session state")
	}
}
