package auth

import (
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinedesk/v2/internal/types"
)

// Store persists the session token and user snapshot across launches.
// core.LocalStore implements it.
type Store interface {
	SaveSession(token string, user types.User) error
	LoadSession() (string, *types.User, error)
	ClearSession() error
}

// Session is the one holder of "who is logged in". It is created at
// startup, restored from the store, handed to the services and the UI,
// and wiped on logout or on a rejected authenticated call.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *types.User
	store Store
}

// NewSession creates an empty session backed by store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Restore loads a persisted session. An expired token is discarded so
// the app goes straight to the login window instead of making a doomed
// authenticated call. Returns true when a usable session was restored.
func (s *Session) Restore() bool {
	token, user, err := s.store.LoadSession()
	if err != nil {
		log.Printf("Failed to load persisted session: %v", err)
		return false
	}
	if token == "" {
		return false
	}
	if tokenExpired(token) {
		log.Println("Persisted token is expired, clearing session.")
		if err := s.store.ClearSession(); err != nil {
			log.Printf("Failed to clear expired session: %v", err)
		}
		return false
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return true
}

// Begin records a fresh login and persists it.
func (s *Session) Begin(token string, user types.User) {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	if err := s.store.SaveSession(token, user); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
}

// End wipes the session, both in memory and in the store. Safe to call
// repeatedly; used for user logout and for forced re-login on 401/403.
func (s *Session) End() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.ClearSession(); err != nil {
		log.Printf("Failed to clear persisted session: %v", err)
	}
}

// SetUser replaces the cached user snapshot after a profile update.
func (s *Session) SetUser(user types.User) {
	s.mu.Lock()
	token := s.token
	s.user = &user
	s.mu.Unlock()

	if token != "" {
		if err := s.store.SaveSession(token, user); err != nil {
			log.Printf("Failed to persist updated profile: %v", err)
		}
	}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user snapshot, or nil when logged out.
func (s *Session) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// LoggedIn reports whether a session is active.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Tokens that do not
// parse as JWTs or carry no exp are treated as live and left for the
// server to reject.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
