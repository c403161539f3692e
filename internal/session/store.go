// Package session owns the client-side auth state: the current
// identity, its bearer token, and the durable record that lets a
// session survive process restarts. Authentication status is derived
// from identity presence alone; there is no separate boolean to drift
// out of sync.
package session

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/state"
)

// keyCookies stores the cookie mirror next to the session record.
const keyCookies = "cookies"

// Identity is the authenticated user as the backend reported it.
type Identity struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `json:"role"`
	Token       string `json:"token"`
}

// UserID returns the identity's id in cookie form.
func (id Identity) UserID() string {
	return strconv.Itoa(id.ID)
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == "admin"
}

// FromUser converts the backend's login payload into an Identity.
func FromUser(u api.User) Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		Token:       u.Token,
	}
}

// record is the durable session shape.
type record struct {
	Identity Identity  `json:"identity"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Store holds the current session and keeps the durable record and the
// cookie mirror in step with it.
type Store struct {
	mu       sync.RWMutex
	identity *Identity
	records  *state.Store
	now      func() time.Time
}

// NewStore creates a session store backed by the given state records.
func NewStore(records *state.Store) *Store {
	return &Store{
		records: records,
		now:     time.Now,
	}
}

// Rehydrate restores the session from disk. An expired or partial
// mirror means the session is stale: both records are cleared and the
// store comes up logged out, which is not an error.
func (s *Store) Rehydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec record
	found, err := s.records.Load(state.KeySession, &rec)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if !found {
		return nil
	}

	var jar cookieJar
	jarFound, err := s.records.Load(keyCookies, &jar)
	if err != nil {
		return fmt.Errorf("restoring session cookies: %w", err)
	}
	if !jarFound || !jar.valid(s.now()) {
		return s.clearLocked()
	}

	s.identity = &rec.Identity
	return nil
}

// Login installs a fresh identity and persists it. The durable record
// and the cookie mirror are written together; if either write fails the
// in-memory session is still installed so the current process works,
// and the error reports the degraded persistence.
func (s *Store) Login(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &id
	now := s.now()

	if err := s.records.Save(state.KeySession, record{Identity: id, IssuedAt: now}); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	if err := s.records.Save(keyCookies, mirrorFor(id, now)); err != nil {
		return fmt.Errorf("persisting session cookies: %w", err)
	}
	return nil
}

// Logout drops the identity and removes both durable records. Logging
// out while logged out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// clearLocked removes the in-memory identity and both records.
func (s *Store) clearLocked() error {
	s.identity = nil
	if err := s.records.Delete(state.KeySession); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if err := s.records.Delete(keyCookies); err != nil {
		return fmt.Errorf("clearing session cookies: %w", err)
	}
	return nil
}

// UpdateIdentity replaces the profile fields of the logged-in identity
// while keeping the existing token when the update carries none. Doing
// this logged out is a programming error surfaced as a plain error.
func (s *Store) UpdateIdentity(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return fmt.Errorf("no active session to update")
	}
	if id.Token == "" {
		id.Token = s.identity.Token
	}
	s.identity = &id

	now := s.now()
	if err := s.records.Save(state.KeySession, record{Identity: id, IssuedAt: now}); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	if err := s.records.Save(keyCookies, mirrorFor(id, now)); err != nil {
		return fmt.Errorf("persisting session cookies: %w", err)
	}
	return nil
}

// Authenticated reports whether an identity is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Current returns the logged-in identity, when there is one.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Token returns the bearer token, or the empty string when logged out.
// Shaped for api.WithToken.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}
