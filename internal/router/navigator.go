package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMaxHops bounds redirect chains within one navigation.
const DefaultMaxHops = 5

var (
	// ErrTooManyRedirects means a navigation kept bouncing between pages.
	ErrTooManyRedirects = errors.New("router: too many redirects")
	// ErrNoRoute means nothing matched and no not-found page is registered.
	ErrNoRoute = errors.New("router: no route")
)

// Request is what a page receives.
type Request struct {
	Path   string
	Query  url.Values
	Params map[string]string
	// Authenticated mirrors the guard's answer for this render.
	Authenticated bool
}

// Result lets a page hand off to another path once it is done, e.g. sign-in
// moving on to the dashboard. The hand-off goes through the guard again.
type Result struct {
	Next string
}

// Page renders one route.
type Page func(ctx context.Context, req Request) (Result, error)

// Hop records one redirect.
type Hop struct {
	From string
	To   string
	// ByGuard is false when the page itself asked to move on.
	ByGuard bool
}

// Visit summarises a navigation.
type Visit struct {
	Requested string
	// Final is the last path rendered.
	Final string
	// Rendered lists every page drawn, in order.
	Rendered []string
	Hops     []Hop
}

// Redirected reports whether the guard turned away any step of the visit.
func (v Visit) Redirected() bool {
	for _, h := range v.Hops {
		if h.ByGuard {
			return true
		}
	}
	return false
}

type route struct {
	segments []string
	page     Page
}

// Navigator maps paths to pages behind a Guard.
type Navigator struct {
	guard    *Guard
	routes   []route
	notFound Page
	maxHops  int
	log      zerolog.Logger
}

// NewNavigator creates a navigator that consults g before every render.
func NewNavigator(g *Guard, log zerolog.Logger) *Navigator {
	return &Navigator{guard: g, maxHops: DefaultMaxHops, log: log}
}

// Handle registers a page for a pattern. Segments written as {name} match any
// single non-empty segment and are passed in Request.Params. Patterns are
// tried in registration order.
func (n *Navigator) Handle(pattern string, p Page) {
	n.routes = append(n.routes, route{segments: split(pattern), page: p})
}

// NotFound sets the page rendered for unmatched paths.
func (n *Navigator) NotFound(p Page) { n.notFound = p }

// Navigate takes the user to `to`. The guard runs first for every step; a
// redirect replaces the step before anything is rendered.
func (n *Navigator) Navigate(ctx context.Context, to string) (Visit, error) {
	v := Visit{Requested: to}
	current := to

	for hops := 0; ; hops++ {
		if err := ctx.Err(); err != nil {
			return v, err
		}
		if hops > n.maxHops {
			return v, fmt.Errorf("%w: %s", ErrTooManyRedirects, describe(v.Hops))
		}

		d := n.guard.Check(ctx, current)
		if d.Outcome == Redirect {
			v.Hops = append(v.Hops, Hop{From: d.Path, To: d.Target, ByGuard: true})
			current = d.Target
			continue
		}

		page, params := n.match(d.Path)
		if page == nil {
			if n.notFound == nil {
				return v, fmt.Errorf("%w: %s", ErrNoRoute, d.Path)
			}
			page = n.notFound
		}

		req := Request{
			Path:          d.Path,
			Query:         queryOf(current),
			Params:        params,
			Authenticated: d.Authenticated,
		}
		res, err := page(ctx, req)
		v.Rendered = append(v.Rendered, d.Path)
		v.Final = d.Path
		if err != nil {
			return v, err
		}
		if res.Next == "" {
			return v, nil
		}
		n.log.Debug().Str("from", d.Path).Str("to", res.Next).Msg("page handed off")
		v.Hops = append(v.Hops, Hop{From: d.Path, To: res.Next})
		current = res.Next
	}
}

func (n *Navigator) match(path string) (Page, map[string]string) {
	segs := split(path)
	for _, r := range n.routes {
		if params, ok := matchSegments(r.segments, segs); ok {
			return r.page, params
		}
	}
	return nil, nil
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if path[i] == "" {
				return nil, false
			}
			if params == nil {
				params = map[string]string{}
			}
			val, err := url.PathUnescape(path[i])
			if err != nil {
				val = path[i]
			}
			params[p[1:len(p)-1]] = val
			continue
		}
		if p != path[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func queryOf(to string) url.Values {
	u, err := url.Parse(to)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

func describe(hops []Hop) string {
	parts := make([]string, 0, len(hops))
	for _, h := range hops {
		parts = append(parts, h.From+" -> "+h.To)
	}
	return strings.Join(parts, ", ")
}
