// Package session holds the API session cookie for the current user.
//
// The remote API authenticates every call with the jwt_token cookie it sets on
// sign-in. A Store is the CLI's equivalent of a browser cookie jar for that one
// cookie; whether a Store is reachable at all decides if the process runs with
// an interactive session.
package session

import (
	"errors"
	"net/http"
	"sync"

	"grocer/cli/internal/keychain"
)

// CookieName is the cookie the API issues on sign-in and reads on every call.
const CookieName = "jwt_token"

// Store persists the session cookie.
type Store interface {
	// Cookie returns the stored cookie, or false if there is none.
	Cookie() (*http.Cookie, bool)
	// Save replaces the stored cookie.
	Save(c *http.Cookie) error
	// Clear forgets the stored cookie.
	Clear() error
}

// KeyringStore keeps the cookie in the OS keychain so it survives between
// processes.
type KeyringStore struct {
	km *keychain.Manager
}

// NewKeyringStore wraps a keychain manager.
func NewKeyringStore(km *keychain.Manager) *KeyringStore {
	return &KeyringStore{km: km}
}

func (s *KeyringStore) Cookie() (*http.Cookie, bool) {
	v, err := s.km.LoadSessionCookie()
	if err != nil || v == "" {
		return nil, false
	}
	return &http.Cookie{Name: CookieName, Value: v}, true
}

func (s *KeyringStore) Save(c *http.Cookie) error {
	if c == nil || c.Value == "" {
		return errors.New("session: empty cookie")
	}
	return s.km.SaveSessionCookie(c.Value)
}

func (s *KeyringStore) Clear() error {
	return s.km.ClearSessionCookie()
}

// MemoryStore keeps the cookie for the lifetime of the process only.
type MemoryStore struct {
	mu     sync.RWMutex
	cookie *http.Cookie
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Cookie() (*http.Cookie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cookie == nil {
		return nil, false
	}
	c := *s.cookie
	return &c, true
}

func (s *MemoryStore) Save(c *http.Cookie) error {
	if c == nil || c.Value == "" {
		return errors.New("session: empty cookie")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	cp.Name = CookieName
	s.cookie = &cp
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookie = nil
	return nil
}
