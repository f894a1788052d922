package router

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubAuth answers EnsureFresh with a fixed value and counts calls.
type stubAuth struct {
	authenticated bool
	calls         atomic.Int32
}

func (s *stubAuth) EnsureFresh(ctx context.Context, force bool) bool {
	s.calls.Add(1)
	return s.authenticated
}

func newGuard(authenticated bool) (*Guard, *stubAuth) {
	a := &stubAuth{authenticated: authenticated}
	return NewGuard(a, DefaultPolicy(), zerolog.Nop()), a
}

func TestGuard_ExemptPathSkipsCache(t *testing.T) {
	for _, authed := range []bool{true, false} {
		g, a := newGuard(authed)
		d := g.Check(context.Background(), "/lists/share/abc123")
		assert.Equal(t, ExemptPass, d.Outcome)
		assert.Empty(t, d.Target)
		assert.Equal(t, int32(0), a.calls.Load())
	}
}

func TestGuard_AuthenticatedLeavesGuestOnlyPages(t *testing.T) {
	g, _ := newGuard(true)
	for _, p := range []string{"/signin", "/signup", "/signin?next=/lists/1"} {
		d := g.Check(context.Background(), p)
		assert.Equal(t, Redirect, d.Outcome, p)
		assert.Equal(t, "/dashboard", d.Target, p)
	}
}

func TestGuard_UnauthenticatedSentToSignIn(t *testing.T) {
	g, a := newGuard(false)
	for _, p := range []string{"/dashboard", "/lists/42"} {
		d := g.Check(context.Background(), p)
		assert.Equal(t, Redirect, d.Outcome, p)
		assert.Equal(t, "/signin", d.Target, p)
	}
	assert.Equal(t, int32(2), a.calls.Load())
}

func TestGuard_AuthenticatedPassesProtected(t *testing.T) {
	g, _ := newGuard(true)
	d := g.Check(context.Background(), "/lists/42")
	assert.Equal(t, ConfirmedPass, d.Outcome)
	assert.Equal(t, "/lists/42", d.Path)
	assert.True(t, d.Authenticated)
	assert.Empty(t, d.Target)
}

func TestGuard_PublicPagesPassEitherWay(t *testing.T) {
	for _, authed := range []bool{true, false} {
		g, a := newGuard(authed)
		d := g.Check(context.Background(), "/")
		assert.Equal(t, ConfirmedPass, d.Outcome)
		assert.Equal(t, int32(1), a.calls.Load())
	}
	g, _ := newGuard(false)
	assert.Equal(t, ConfirmedPass, g.Check(context.Background(), "/signin").Outcome)
}

func TestPolicy_Matching(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.IsExempt("/lists/share/x"))
	assert.False(t, p.RequiresAuth("/lists/share/x"))
	assert.True(t, p.RequiresAuth("/lists/x"))
	assert.True(t, p.RequiresAuth("/dashboard"))
	assert.False(t, p.RequiresAuth("/dashboardx"))
	assert.False(t, p.RequiresAuth("/lists"))
	assert.True(t, p.IsGuestOnly("/signup"))
	assert.False(t, p.IsGuestOnly("/signin/extra"))
}

func TestPathOf(t *testing.T) {
	cases := map[string]string{
		"":                   "/",
		"/":                  "/",
		"dashboard":          "/dashboard",
		"/lists/7?tab=items": "/lists/7",
		"/signin#top":        "/signin",
		"/lists/share/a%2Fb": "/lists/share/a%2Fb",
		"/dashboard/":        "/dashboard",
		"/signin//":          "/signin",
		"/lists/share/":      "/lists/share",
		"/lists/./7/../8":    "/lists/8",
	}
	for in, want := range cases {
		assert.Equal(t, want, PathOf(in), in)
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "exempt-pass", ExemptPass.String())
	assert.Equal(t, "confirmed-pass", ConfirmedPass.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}

func TestGuard_TrailingSlashAliases(t *testing.T) {
	g, a := newGuard(false)
	d := g.Check(context.Background(), "/dashboard/")
	assert.Equal(t, Redirect, d.Outcome)
	assert.Equal(t, "/signin", d.Target)

	// A share link without an id is not exempt; it falls under /lists/.
	d = g.Check(context.Background(), "/lists/share/")
	assert.Equal(t, Redirect, d.Outcome)
	assert.Equal(t, "/signin", d.Target)
	assert.Equal(t, int32(2), a.calls.Load())

	g, _ = newGuard(true)
	d = g.Check(context.Background(), "/signin/")
	assert.Equal(t, Redirect, d.Outcome)
	assert.Equal(t, "/dashboard", d.Target)
}
