package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"grocer/cli/internal/authcache"
	"grocer/cli/internal/backend"
	"grocer/cli/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder registers pages that only note what was drawn.
type recorder struct {
	drawn []Request
}

func (r *recorder) page(next string) Page {
	return func(ctx context.Context, req Request) (Result, error) {
		r.drawn = append(r.drawn, req)
		return Result{Next: next}, nil
	}
}

func (r *recorder) paths() []string {
	out := make([]string, 0, len(r.drawn))
	for _, req := range r.drawn {
		out = append(out, req.Path)
	}
	return out
}

func newNavigator(auth Authenticator) (*Navigator, *recorder) {
	rec := &recorder{}
	n := NewNavigator(NewGuard(auth, DefaultPolicy(), zerolog.Nop()), zerolog.Nop())
	n.Handle("/", rec.page(""))
	n.Handle("/signin", rec.page(""))
	n.Handle("/signup", rec.page(""))
	n.Handle("/dashboard", rec.page(""))
	n.Handle("/lists/share/{id}", rec.page(""))
	n.Handle("/lists/{id}", rec.page(""))
	return n, rec
}

func TestNavigate_RedirectPreemptsRender(t *testing.T) {
	n, rec := newNavigator(&stubAuth{authenticated: false})

	v, err := n.Navigate(context.Background(), "/dashboard")
	require.NoError(t, err)
	assert.Equal(t, []string{"/signin"}, rec.paths())
	assert.Equal(t, "/signin", v.Final)
	assert.True(t, v.Redirected())
	assert.Equal(t, []Hop{{From: "/dashboard", To: "/signin", ByGuard: true}}, v.Hops)
}

func TestNavigate_ExemptRenderWithParams(t *testing.T) {
	a := &stubAuth{}
	n, rec := newNavigator(a)

	v, err := n.Navigate(context.Background(), "/lists/share/abc123?from=mail")
	require.NoError(t, err)
	assert.False(t, v.Redirected())
	require.Len(t, rec.drawn, 1)
	assert.Equal(t, "abc123", rec.drawn[0].Params["id"])
	assert.Equal(t, "mail", rec.drawn[0].Query.Get("from"))
	assert.Equal(t, int32(0), a.calls.Load())
}

func TestNavigate_ListDetailWhenAuthenticated(t *testing.T) {
	n, rec := newNavigator(&stubAuth{authenticated: true})

	v, err := n.Navigate(context.Background(), "/lists/42")
	require.NoError(t, err)
	assert.Empty(t, v.Hops)
	require.Len(t, rec.drawn, 1)
	assert.Equal(t, "42", rec.drawn[0].Params["id"])
	assert.True(t, rec.drawn[0].Authenticated)
}

func TestNavigate_TrailingSlashCannotBypassGuard(t *testing.T) {
	n, rec := newNavigator(&stubAuth{authenticated: false})

	v, err := n.Navigate(context.Background(), "/dashboard/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/signin"}, rec.paths())
	assert.True(t, v.Redirected())

	n, rec = newNavigator(&stubAuth{authenticated: true})
	v, err = n.Navigate(context.Background(), "/signin/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/dashboard"}, rec.paths())
	assert.True(t, v.Redirected())
}

func TestNavigate_ShareWithoutIDIsNotAList(t *testing.T) {
	a := &stubAuth{authenticated: false}
	n, rec := newNavigator(a)

	v, err := n.Navigate(context.Background(), "/lists/share/")
	require.NoError(t, err)
	assert.Equal(t, int32(2), a.calls.Load())
	assert.Equal(t, []string{"/signin"}, rec.paths())
	assert.True(t, v.Redirected())

	// Signed in, the bare share path must not reach the list page either.
	rec = &recorder{}
	n = NewNavigator(NewGuard(&stubAuth{authenticated: true}, DefaultPolicy(), zerolog.Nop()), zerolog.Nop())
	n.Handle("/lists/share/{id}", rec.page(""))
	n.Handle("/lists/share", func(ctx context.Context, req Request) (Result, error) {
		return Result{}, ErrNoRoute
	})
	n.Handle("/lists/{id}", rec.page(""))

	_, err = n.Navigate(context.Background(), "/lists/share/")
	require.ErrorIs(t, err, ErrNoRoute)
	assert.Empty(t, rec.drawn)
}

func TestNavigate_EscapedSlashStaysInParam(t *testing.T) {
	n, rec := newNavigator(&stubAuth{authenticated: true})

	_, err := n.Navigate(context.Background(), "/lists/share%2Fabc")
	require.NoError(t, err)
	require.Len(t, rec.drawn, 1)
	assert.Equal(t, "/lists/share%2Fabc", rec.drawn[0].Path)
	assert.Equal(t, "share/abc", rec.drawn[0].Params["id"])
}

func TestNavigate_PageHandOffIsGuarded(t *testing.T) {
	a := &stubAuth{authenticated: false}
	rec := &recorder{}
	n := NewNavigator(NewGuard(a, DefaultPolicy(), zerolog.Nop()), zerolog.Nop())
	n.Handle("/signin", rec.page("/dashboard"))
	n.Handle("/dashboard", rec.page(""))

	// The sign-in page keeps handing off to the dashboard, which the guard
	// keeps sending back: the loop must be cut.
	_, err := n.Navigate(context.Background(), "/signin")
	require.ErrorIs(t, err, ErrTooManyRedirects)
	for _, p := range rec.paths() {
		assert.Equal(t, "/signin", p)
	}
}

func TestNavigate_NotFound(t *testing.T) {
	n, rec := newNavigator(&stubAuth{})

	_, err := n.Navigate(context.Background(), "/nowhere")
	require.ErrorIs(t, err, ErrNoRoute)
	assert.Empty(t, rec.drawn)

	var missing string
	n.NotFound(func(ctx context.Context, req Request) (Result, error) {
		missing = req.Path
		return Result{}, nil
	})
	v, err := n.Navigate(context.Background(), "/nowhere")
	require.NoError(t, err)
	assert.Equal(t, "/nowhere", missing)
	assert.Equal(t, "/nowhere", v.Final)
}

func TestNavigate_CancelledContext(t *testing.T) {
	n, rec := newNavigator(&stubAuth{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Navigate(ctx, "/")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.drawn)
}

// apiServer is a minimal grocer API: /me accepts only the cookie issued by
// /signin.
type apiServer struct {
	meCalls atomic.Int32
}

func (s *apiServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/me":
		s.meCalls.Add(1)
		c, err := r.Cookie(session.CookieName)
		if err != nil || c.Value != "issued" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "ada@example.com"})
	case "/signin":
		http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "issued"})
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"id": "u1"}})
	default:
		http.NotFound(w, r)
	}
}

func TestNavigate_SessionLifecycle(t *testing.T) {
	srv := &apiServer{}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	store := session.NewMemoryStore()
	api := backend.New(ts.URL, store, backend.WithHTTPClient(ts.Client()))
	cache := authcache.New(api)
	n, rec := newNavigator(cache)
	ctx := context.Background()

	// Fresh session: the dashboard needs a confirmation, which fails.
	v, err := n.Navigate(ctx, "/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "/signin", v.Final)
	assert.Equal(t, int32(1), srv.meCalls.Load())

	// Within TTL the negative answer is reused and sign-in stays put.
	v, err = n.Navigate(ctx, "/signin")
	require.NoError(t, err)
	assert.Empty(t, v.Hops)
	assert.Equal(t, int32(1), srv.meCalls.Load())

	// Sign-in happens outside navigation, then the cache is refreshed.
	_, err = api.SignIn(ctx, backend.SignInRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, cache.Refresh(ctx))
	assert.Equal(t, int32(2), srv.meCalls.Load())
	assert.True(t, cache.State().Authenticated)

	v, err = n.Navigate(ctx, "/signin")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", v.Final)
	assert.Equal(t, []Hop{{From: "/signin", To: "/dashboard", ByGuard: true}}, v.Hops)
	assert.Equal(t, int32(2), srv.meCalls.Load())

	assert.Equal(t, []string{"/signin", "/signin", "/dashboard"}, rec.paths())
}

func TestNavigate_NoSessionCapability(t *testing.T) {
	srv := &apiServer{}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	api := backend.New(ts.URL, nil, backend.WithHTTPClient(ts.Client()))
	cache := authcache.New(api, authcache.WithSessionAvailable(false))
	n, _ := newNavigator(cache)

	v, err := n.Navigate(context.Background(), "/lists/9")
	require.NoError(t, err)
	assert.Equal(t, "/signin", v.Final)
	assert.Equal(t, int32(0), srv.meCalls.Load())
	assert.False(t, cache.State().Checked())
}
