// Package authcache answers "is the user signed in right now" without asking
// the API on every navigation.
//
// A Cache holds one belief per session: whether the session cookie is
// accepted, the profile that came with it, and when that was last confirmed.
// Confirmations hit GET /me once, are never retried, and their result (positive
// or negative) is trusted for TTL.
package authcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"grocer/cli/internal/backend"
	"grocer/cli/internal/logging"

	"github.com/rs/zerolog"
)

// TTL is how long a confirmation stays valid.
const TTL = 5 * time.Minute

// State is a read-only snapshot of the cache.
type State struct {
	Authenticated bool
	// User is nil unless Authenticated.
	User *backend.User
	// LastCheckedAt is zero until a confirmation completes.
	LastCheckedAt time.Time
	// Refreshing is true while a confirmation call is in flight.
	Refreshing bool
}

// Checked reports whether any confirmation completed since the last Clear.
func (s State) Checked() bool { return !s.LastCheckedAt.IsZero() }

// Cache is the session's authentication state. The zero value is not usable;
// construct with New.
type Cache struct {
	identity         backend.Identity
	sessionAvailable bool
	ttl              time.Duration
	now              func() time.Time
	log              zerolog.Logger

	mu            sync.Mutex
	authenticated bool
	user          *backend.User
	lastCheckedAt time.Time
	inFlight      int
}

// Option configures a Cache.
type Option func(*Cache)

// WithSessionAvailable declares whether this process can reach a session
// cookie at all. Without one, EnsureFresh is a no-op returning false.
// Defaults to true.
func WithSessionAvailable(ok bool) Option {
	return func(c *Cache) { c.sessionAvailable = ok }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithTTL overrides the freshness window.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) { c.ttl = d }
}

// WithLogger attaches a logger for cache decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cache) { c.log = l }
}

// New returns an unconfirmed cache backed by identity.
func New(identity backend.Identity, opts ...Option) *Cache {
	c := &Cache{
		identity:         identity,
		sessionAvailable: true,
		ttl:              TTL,
		now:              time.Now,
		log:              zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionAvailable reports the capability the cache was built with.
func (c *Cache) SessionAvailable() bool { return c.sessionAvailable }

// TTL returns the freshness window.
func (c *Cache) TTL() time.Duration { return c.ttl }

// State returns a snapshot.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Authenticated: c.authenticated,
		User:          c.user,
		LastCheckedAt: c.lastCheckedAt,
		Refreshing:    c.inFlight > 0,
	}
}

// EnsureFresh returns whether the user is authenticated, confirming with the
// API when force is set or the cached answer is missing or older than TTL.
//
// Every confirmation failure, whatever its cause, is recorded and returned as
// false. Overlapping calls are neither blocked nor coalesced; whichever
// finishes last decides the state.
func (c *Cache) EnsureFresh(ctx context.Context, force bool) bool {
	if !c.sessionAvailable {
		return false
	}

	now := c.now()

	c.mu.Lock()
	if !force && !c.lastCheckedAt.IsZero() && now.Sub(c.lastCheckedAt) < c.ttl {
		authed := c.authenticated
		c.mu.Unlock()
		c.log.Debug().Bool("authenticated", authed).Msg("auth cache hit")
		return authed
	}
	c.inFlight++
	c.mu.Unlock()

	c.log.Debug().Bool("force", force).Msg("confirming session")
	user, err := c.confirm(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	c.lastCheckedAt = now
	if err != nil || user == nil {
		c.authenticated = false
		c.user = nil
		ev := c.log.Debug()
		if err != nil {
			ev = ev.Str("error", logging.Mask(err.Error()))
		}
		ev.Msg("session not confirmed")
		return false
	}
	c.authenticated = true
	c.user = user
	c.log.Debug().Str("user_id", user.ID).Msg("session confirmed")
	return true
}

// confirm makes the single identity call. A panicking identity counts as a
// failed confirmation.
func (c *Cache) confirm(ctx context.Context) (user *backend.User, err error) {
	defer func() {
		if r := recover(); r != nil {
			user, err = nil, fmt.Errorf("identity check panicked: %v", r)
		}
	}()
	return c.identity.Me(ctx)
}

// Refresh forces a confirmation.
func (c *Cache) Refresh(ctx context.Context) bool {
	return c.EnsureFresh(ctx, true)
}

// Clear forgets everything, as on logout. No network.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = false
	c.user = nil
	c.lastCheckedAt = time.Time{}
}
