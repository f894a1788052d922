// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// loginCmd signs in with email and password through the /signin page.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with email and password",
	Long: `The login command prompts for your email and password, signs in, and stores
the session cookie in the OS keychain (or in memory with --ephemeral). On
success it shows your dashboard.

If already signed in with a valid session, it skips the prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd.Context(), appFor(cmd), "/signin", "signing in")
	},
}

// signupCmd creates an account through the /signup page.
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd.Context(), appFor(cmd), "/signup", "creating your account")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
}

// authenticate short-circuits when the session is already confirmed, then
// opens the given guest page.
func authenticate(ctx context.Context, a *app, page, action string) error {
	if a.cache.EnsureFresh(ctx, false) {
		name := ""
		if u := a.cache.State().User; u != nil {
			name = u.DisplayName()
		}
		fmt.Fprintf(a.out, "👋 Already signed in as %s\n", name)
		fmt.Fprintln(a.out, "   Run 'grocer logout' to switch accounts.")
		return nil
	}
	_, err := a.nav.Navigate(ctx, page)
	return fail(action, err)
}
