package pages

import (
	"context"
	"strings"

	"grocer/cli/internal/backend"
	apperrors "grocer/cli/internal/errors"
	"grocer/cli/internal/router"

	"github.com/pterm/pterm"
)

// SignIn asks for credentials, signs in, and moves on to the dashboard once
// the new session is confirmed.
func (p *Pages) SignIn(ctx context.Context, req router.Request) (router.Result, error) {
	p.println(titleStyle.Sprint("Sign in"))

	email, err := p.Prompt.Line("Email: ")
	if err != nil {
		return router.Result{}, err
	}
	password, err := p.Prompt.Secret("Password: ")
	if err != nil {
		return router.Result{}, err
	}

	if _, err := p.API.SignIn(ctx, backend.SignInRequest{Email: email, Password: password}); err != nil {
		return router.Result{}, err
	}
	return p.afterAuth(ctx)
}

// SignUp creates an account and then behaves like SignIn.
func (p *Pages) SignUp(ctx context.Context, req router.Request) (router.Result, error) {
	p.println(titleStyle.Sprint("Create an account"))

	var r backend.SignUpRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name: ", &r.FirstName},
		{"Last name: ", &r.LastName},
		{"Email: ", &r.Email},
	}
	for _, f := range fields {
		v, err := p.Prompt.Line(f.prompt)
		if err != nil {
			return router.Result{}, err
		}
		*f.dst = v
	}
	password, err := p.Prompt.Secret("Password: ")
	if err != nil {
		return router.Result{}, err
	}
	r.Password = password

	avatar, err := p.Prompt.Line("Avatar URL (optional): ")
	if err != nil {
		return router.Result{}, err
	}
	if avatar = strings.TrimSpace(avatar); avatar != "" {
		r.AvatarURL = &avatar
	}

	if _, err := p.API.SignUp(ctx, r); err != nil {
		return router.Result{}, err
	}
	return p.afterAuth(ctx)
}

// afterAuth confirms the freshly stored session before leaving the page.
func (p *Pages) afterAuth(ctx context.Context) (router.Result, error) {
	if !p.Auth.Refresh(ctx) {
		if p.Sessions == nil {
			return router.Result{}, apperrors.New(apperrors.Unauthorized,
				"signed in, but no session store is available to keep the session (try --ephemeral)")
		}
		return router.Result{}, apperrors.New(apperrors.Unauthorized, "signed in, but the API did not accept the session")
	}
	name := ""
	if u := p.Auth.State().User; u != nil {
		name = u.DisplayName()
	}
	p.println(pterm.Success.Sprint("Welcome, " + name))
	return router.Result{Next: "/dashboard"}, nil
}
