// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for grocer.
// It implements subcommands for signing in, browsing pages and managing shared
// lists using the Cobra CLI framework. Page navigation goes through the auth
// cache and route guard in internal/router.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"grocer/cli/internal/config"
	"grocer/cli/internal/httperrors"
	"grocer/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL    string
	flagLogLevel  string
	flagEphemeral bool

	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "grocer",
	Short:         "Shared shopping lists from the terminal",
	Long:          `grocer is a terminal client for the grocer shared shopping list API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		if flagAPIURL != "" {
			c.APIURL = flagAPIURL
		}
		if flagLogLevel != "" {
			c.LogLevel = flagLogLevel
		}
		cfg = c
		logging.Init(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// failure attaches what the user was doing to an error, for presentation.
type failure struct {
	action string
	err    error
}

func (f *failure) Error() string { return f.action + ": " + f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

// fail wraps err with an action such as "loading your lists". nil stays nil.
func fail(action string, err error) error {
	if err == nil {
		return nil
	}
	return &failure{action: action, err: err}
}

// Execute runs the CLI application.
// It executes the root command and presents any error before exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report(err)
		os.Exit(1)
	}
}

func report(err error) {
	var f *failure
	if errors.As(err, &f) {
		httperrors.Present(os.Stderr, f.err, f.action)
		return
	}
	fmt.Fprintln(os.Stderr, logging.Mask(err.Error()))
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", "", "grocer API base URL (overrides GROCER_API_URL and config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&flagEphemeral, "ephemeral", false, "keep the session in memory only; nothing is read from or written to the keychain")
}
