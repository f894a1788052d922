package router

import (
	"context"

	"github.com/rs/zerolog"
)

// Authenticator is the auth cache as seen by the guard.
type Authenticator interface {
	EnsureFresh(ctx context.Context, force bool) bool
}

// Outcome is how one navigation attempt ended.
type Outcome int

const (
	// ExemptPass: the path is exempt; the cache was not consulted.
	ExemptPass Outcome = iota
	// ConfirmedPass: the cache was consulted and the policy allowed it.
	ConfirmedPass
	// Redirect: the navigation must go to Decision.Target instead.
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case ExemptPass:
		return "exempt-pass"
	case ConfirmedPass:
		return "confirmed-pass"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict for one path.
type Decision struct {
	Outcome Outcome
	// Path is the matched path of the request.
	Path string
	// Target is set only for Redirect.
	Target string
	// Authenticated is what the cache answered; false for ExemptPass.
	Authenticated bool
}

// Guard applies a Policy using an Authenticator. It keeps no state of its own.
type Guard struct {
	auth   Authenticator
	policy Policy
	log    zerolog.Logger
}

// NewGuard builds a guard. The logger may be zero-valued.
func NewGuard(auth Authenticator, policy Policy, log zerolog.Logger) *Guard {
	return &Guard{auth: auth, policy: policy, log: log}
}

// Policy returns the guard's access table.
func (g *Guard) Policy() Policy { return g.policy }

// Check evaluates a navigation to `to`. Rules are tried in order and the first
// match wins: exemption, guest-only while signed in, protected while signed
// out, then pass.
func (g *Guard) Check(ctx context.Context, to string) Decision {
	path := PathOf(to)
	if g.policy.IsExempt(path) {
		g.log.Debug().Str("path", path).Msg("guard: exempt")
		return Decision{Outcome: ExemptPass, Path: path}
	}

	authenticated := g.auth.EnsureFresh(ctx, false)
	d := Decision{Outcome: ConfirmedPass, Path: path, Authenticated: authenticated}

	switch {
	case g.policy.IsGuestOnly(path) && authenticated:
		d.Outcome, d.Target = Redirect, g.policy.Landing
	case g.policy.RequiresAuth(path) && !authenticated:
		d.Outcome, d.Target = Redirect, g.policy.SignIn
	}

	g.log.Debug().
		Str("path", path).
		Bool("authenticated", authenticated).
		Stringer("outcome", d.Outcome).
		Str("target", d.Target).
		Msg("guard")
	return d
}
