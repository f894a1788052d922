// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"grocer/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version and API status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		fmt.Fprintf(a.out, "grocer %s\n", Version)

		status, err := a.api.Health(cmd.Context())
		if err != nil {
			status = "unreachable"
		}
		fmt.Fprintf(a.out, "api %s (%s)\n", httperrors.ExtractHostFromURL(a.api.BaseURL()), status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
