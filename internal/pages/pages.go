// Package pages renders the CLI's navigable screens.
//
// Every screen is a router.Page; the Navigator has already run the guard by
// the time one of them is called.
package pages

import (
	"context"
	"io"

	"grocer/cli/internal/authcache"
	"grocer/cli/internal/backend"
	"grocer/cli/internal/router"
	"grocer/cli/internal/session"
	"grocer/cli/internal/terminal"

	"github.com/pterm/pterm"
)

// Auth is the part of the auth cache pages use.
type Auth interface {
	Refresh(ctx context.Context) bool
	State() authcache.State
}

// Pages holds what the screens need. Sessions may be nil when no session store
// is reachable.
type Pages struct {
	Out      io.Writer
	API      backend.API
	Auth     Auth
	Prompt   terminal.Prompter
	Sessions session.Store
}

// Register wires every page into n.
func (p *Pages) Register(n *router.Navigator) {
	n.Handle("/", p.Home)
	n.Handle("/signin", p.SignIn)
	n.Handle("/signup", p.SignUp)
	n.Handle("/dashboard", p.Dashboard)
	n.Handle("/lists/share/{id}", p.Share)
	// A share link without an id is not a list called "share".
	n.Handle("/lists/share", p.NotFound)
	n.Handle("/lists/{id}", p.ListDetail)
	n.NotFound(p.NotFound)
}

func (p *Pages) println(a ...any) {
	pterm.Fprintln(p.Out, a...)
}

func (p *Pages) hasCookie() bool {
	if p.Sessions == nil {
		return false
	}
	_, ok := p.Sessions.Cookie()
	return ok
}

var (
	titleStyle = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)
	labelStyle = pterm.NewStyle(pterm.FgLightCyan)
	hintStyle  = pterm.NewStyle(pterm.FgGreen)
	mutedStyle = pterm.NewStyle(pterm.FgGray)
)
