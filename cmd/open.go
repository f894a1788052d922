package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"grocer/cli/internal/authcache"
	"grocer/cli/internal/httperrors"
	"grocer/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// openCmd renders one page in a fresh session.
var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a page such as /dashboard or /lists/<id>",
	Long: `The open command navigates to a single page, exactly as the interactive shell
would. Protected pages send you to /signin when you are not signed in, and
/signin or /signup send you to /dashboard when you are.

Pages:
  /                    home
  /signin, /signup     sign in or create an account
  /dashboard           your lists
  /lists/<id>          one list and its items
  /lists/share/<id>    join a list someone shared with you`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 1 {
			path = normalizePath(args[0])
		}
		a := appFor(cmd)
		v, err := a.nav.Navigate(cmd.Context(), path)
		a.log.Debug().Str("requested", v.Requested).Str("final", v.Final).Int("hops", len(v.Hops)).Msg("navigation")
		return fail("opening "+path, err)
	},
}

// shellCmd keeps one session open across navigations, so the auth cache's
// answer is reused between pages until it goes stale.
var shellCmd = &cobra.Command{
	Use:   "shell [path]",
	Short: "Browse interactively in one session",
	Long: `The shell command starts an interactive session. Type a path to open a page,
or one of:

  :state     show what the session believes about your sign-in
  :refresh   confirm the session with the API now
  :logout    sign out
  :help      show this help
  :quit      leave the shell`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := "/"
		if len(args) == 1 {
			start = normalizePath(args[0])
		}
		return runShell(cmd.Context(), appFor(cmd), start)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(shellCmd)
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// runShell reads commands until :quit or end of input.
func runShell(ctx context.Context, a *app, start string) error {
	a.visit(ctx, start)
	for {
		in, err := a.prompt.Line(pterm.NewStyle(pterm.FgLightCyan).Sprint("grocer> "))
		if errors.Is(err, terminal.ErrNoInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		switch in {
		case "":
		case ":q", ":quit", ":exit":
			return nil
		case ":help":
			pterm.Fprintln(a.out, "Type a path such as /dashboard, or :state, :refresh, :logout, :quit.")
		case ":state":
			printState(a.out, a.cache.State(), a.cache.TTL(), time.Now())
		case ":refresh":
			if a.cache.Refresh(ctx) {
				pterm.Fprintln(a.out, pterm.Success.Sprint("Session confirmed"))
			} else {
				pterm.Fprintln(a.out, pterm.Warning.Sprint("Not signed in"))
			}
		case ":logout":
			if err := a.logout(); err != nil {
				httperrors.Present(a.out, err, "signing out")
				continue
			}
			pterm.Fprintln(a.out, "✅ Signed out")
		default:
			if strings.HasPrefix(in, ":") {
				pterm.Fprintln(a.out, "Unknown command "+in+". Try :help.")
				continue
			}
			a.visit(ctx, normalizePath(in))
		}
	}
}

// visit navigates and reports failures inline, keeping the session alive.
func (a *app) visit(ctx context.Context, path string) {
	if _, err := a.nav.Navigate(ctx, path); err != nil {
		httperrors.Present(a.out, err, "opening "+path)
	}
}

func printState(w io.Writer, st authcache.State, ttl time.Duration, now time.Time) {
	label := pterm.NewStyle(pterm.FgLightCyan)
	switch {
	case !st.Checked():
		pterm.Fprintln(w, label.Sprint("Signed in: ")+"not checked yet")
	case st.Authenticated:
		who := ""
		if st.User != nil {
			who = " (" + st.User.DisplayName() + ")"
		}
		pterm.Fprintln(w, label.Sprint("Signed in: ")+"yes"+who)
	default:
		pterm.Fprintln(w, label.Sprint("Signed in: ")+"no")
	}
	if st.Checked() {
		age := now.Sub(st.LastCheckedAt).Truncate(time.Second)
		left := (ttl - age).Truncate(time.Second)
		if left > 0 {
			pterm.Fprintln(w, label.Sprint("Checked:   ")+fmt.Sprintf("%s ago, trusted for another %s", age, left))
		} else {
			pterm.Fprintln(w, label.Sprint("Checked:   ")+fmt.Sprintf("%s ago, will re-check on next page", age))
		}
	}
	if st.Refreshing {
		pterm.Fprintln(w, label.Sprint("Refreshing"))
	}
}
