// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session",
	Long: `The logout command removes the session cookie from the OS keychain and
forgets the cached sign-in state. The API has no server-side logout; the
cookie expires on its own.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		if err := a.logout(); err != nil {
			return fail("signing out", err)
		}
		fmt.Fprintln(a.out, "✅ Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
