package cmd

import (
	"fmt"
	"time"

	"grocer/cli/internal/session"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It confirms the stored session with GET /me and shows the account behind it.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated account.
It validates the current session by checking with the API and shows the account
and when the session cookie expires.

If no valid session exists, it will indicate that the user is not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		if !a.cache.EnsureFresh(cmd.Context(), false) {
			fmt.Fprintln(a.out, "🔒 You're not logged in yet!")
			fmt.Fprintln(a.out, "   Run 'grocer login' to get started.")
			return nil
		}

		u := a.cache.State().User
		fmt.Fprintf(a.out, "👤 Current user: %s\n", u.DisplayName())
		if u.Email != "" && u.Email != u.DisplayName() {
			fmt.Fprintf(a.out, "   Email:   %s\n", u.Email)
		}
		fmt.Fprintf(a.out, "   ID:      %s\n", u.ID)
		if a.store != nil {
			if c, ok := a.store.Cookie(); ok {
				if exp, ok := session.Expiry(c); ok {
					fmt.Fprintf(a.out, "   Session: expires %s\n", exp.Local().Format(time.RFC1123))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
