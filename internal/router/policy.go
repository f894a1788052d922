// Package router gates navigation between CLI pages.
//
// A Guard decides, for one target path, whether the navigation passes or is
// redirected, using a static access Policy and the session's auth cache. A
// Navigator runs the guard before every page render and follows redirects, so
// a page the guard turns away is never drawn.
package router

import (
	"net/url"
	"path"
	"strings"
)

// Policy is the static access table, keyed by path.
type Policy struct {
	// Exempt prefixes skip the guard entirely, without consulting the cache.
	Exempt []string
	// GuestOnly paths are for signed-out users (sign-in, sign-up).
	GuestOnly []string
	// Protected paths require a session.
	Protected []string
	// ProtectedPrefixes protect every path under them.
	ProtectedPrefixes []string
	// SignIn is where unauthenticated users are sent.
	SignIn string
	// Landing is where authenticated users are sent away from guest-only pages.
	Landing string
}

// DefaultPolicy is grocer's route table.
func DefaultPolicy() Policy {
	return Policy{
		Exempt:            []string{"/lists/share/"},
		GuestOnly:         []string{"/signin", "/signup"},
		Protected:         []string{"/dashboard"},
		ProtectedPrefixes: []string{"/lists/"},
		SignIn:            "/signin",
		Landing:           "/dashboard",
	}
}

// IsExempt reports whether p bypasses the guard.
func (p Policy) IsExempt(path string) bool {
	return hasAnyPrefix(path, p.Exempt)
}

// IsGuestOnly reports whether p is only for signed-out users.
func (p Policy) IsGuestOnly(path string) bool {
	return contains(p.GuestOnly, path)
}

// RequiresAuth reports whether p needs a session. Exempt paths never do.
func (p Policy) RequiresAuth(path string) bool {
	if p.IsExempt(path) {
		return false
	}
	return contains(p.Protected, path) || hasAnyPrefix(path, p.ProtectedPrefixes)
}

// PathOf extracts the path component used for policy matching and routing.
// Query strings and fragments are ignored. The path stays escaped, so an
// encoded slash never splits a segment, and is cleaned: no trailing slash,
// no dot segments, "/" when empty.
func PathOf(to string) string {
	p := to
	if u, err := url.Parse(to); err == nil {
		p = u.EscapedPath()
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
