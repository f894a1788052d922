package cmd

import (
	"io"
	"os"

	"grocer/cli/internal/authcache"
	"grocer/cli/internal/backend"
	"grocer/cli/internal/config"
	"grocer/cli/internal/keychain"
	"grocer/cli/internal/logging"
	"grocer/cli/internal/pages"
	"grocer/cli/internal/router"
	"grocer/cli/internal/session"
	"grocer/cli/internal/terminal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is one browsing session: a session store, an API client, the auth
// cache built over it, and a navigator that guards every page.
type app struct {
	cfg    config.Config
	out    io.Writer
	log    zerolog.Logger
	prompt terminal.Prompter
	store  session.Store
	api    *backend.HTTP
	cache  *authcache.Cache
	nav    *router.Navigator
}

// newApp wires a session. A nil store means no session cookie is reachable; the
// auth cache then answers "not signed in" without calling the API.
func newApp(c config.Config, store session.Store, out io.Writer, prompt terminal.Prompter, log zerolog.Logger, opts ...backend.Option) *app {
	opts = append([]backend.Option{backend.WithLogger(log)}, opts...)
	api := backend.New(c.APIURL, store, opts...)
	cache := authcache.New(api,
		authcache.WithSessionAvailable(store != nil),
		authcache.WithLogger(log),
	)
	nav := router.NewNavigator(router.NewGuard(cache, router.DefaultPolicy(), log), log)
	p := &pages.Pages{Out: out, API: api, Auth: cache, Prompt: prompt, Sessions: store}
	p.Register(nav)

	return &app{cfg: c, out: out, log: log, prompt: prompt, store: store, api: api, cache: cache, nav: nav}
}

// sessionApp is set once per process; tests replace it.
var sessionApp *app

// appFor returns the process's session, creating it on first use.
func appFor(cmd *cobra.Command) *app {
	if sessionApp == nil {
		log := logging.Get()
		sessionApp = newApp(cfg, openStore(flagEphemeral, log), cmd.OutOrStdout(), terminal.NewConsole(os.Stdin, cmd.OutOrStdout()), log)
	}
	return sessionApp
}

// openStore picks the session store. It returns a nil interface when the
// keychain cannot be opened.
func openStore(ephemeral bool, log zerolog.Logger) session.Store {
	if ephemeral {
		return session.NewMemoryStore()
	}
	km, err := keychain.GetManager()
	if err != nil {
		log.Warn().Str("error", logging.Mask(err.Error())).Msg("keychain unavailable; running without a session")
		return nil
	}
	return session.NewKeyringStore(km)
}

// logout forgets the session locally. The API has no logout endpoint; the
// cookie simply stops being sent.
func (a *app) logout() error {
	if a.store != nil {
		if err := a.store.Clear(); err != nil {
			return err
		}
	}
	a.cache.Clear()
	return nil
}
