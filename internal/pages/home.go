package pages

import (
	"context"

	"grocer/cli/internal/router"

	"github.com/pterm/pterm"
)

// Home is the landing screen for "/".
func (p *Pages) Home(ctx context.Context, req router.Request) (router.Result, error) {
	title := titleStyle.Sprint("grocer")
	body := "Shared shopping lists from your terminal."
	if req.Authenticated {
		if u := p.Auth.State().User; u != nil {
			body += "\n\nSigned in as " + pterm.Bold.Sprint(u.DisplayName())
		}
	}
	p.println(pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(body))
	p.println()

	if req.Authenticated {
		p.println("  • " + hintStyle.Sprint("open /dashboard") + " to see your lists")
		p.println("  • " + hintStyle.Sprint("lists create <name>") + " to start a new one")
		return router.Result{}, nil
	}
	p.println("  • " + hintStyle.Sprint("open /signin") + " if you already have an account")
	p.println("  • " + hintStyle.Sprint("open /signup") + " to create one")
	return router.Result{}, nil
}

// NotFound is shown for paths no page claims.
func (p *Pages) NotFound(ctx context.Context, req router.Request) (router.Result, error) {
	p.println(pterm.Warning.Sprint("Nothing at " + req.Path))
	p.println("Try " + hintStyle.Sprint("open /") + ".")
	return router.Result{}, nil
}
