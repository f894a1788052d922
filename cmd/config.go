package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"grocer/cli/internal/config"
	apperrors "grocer/cli/internal/errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p, err := config.Path()
		if err != nil {
			p = "unavailable (" + err.Error() + ")"
		}
		fmt.Fprintf(out, "api_url:    %s\n", cfg.APIURL)
		fmt.Fprintf(out, "log_level:  %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_pretty: %t\n", cfg.LogPretty)
		fmt.Fprintf(out, "file:       %s\n", p)
		return nil
	},
}

var configSetAPIURLCmd = &cobra.Command{
	Use:   "set-api-url <url>",
	Short: "Save the API base URL to the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimRight(strings.TrimSpace(args[0]), "/")
		if err := validateAPIURL(raw); err != nil {
			return fail("saving the API URL", err)
		}
		if err := config.Update(func(c *config.Config) { c.APIURL = raw }); err != nil {
			return fail("saving the API URL", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ API URL set to %s\n", raw)
		return nil
	},
}

func validateAPIURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.New(apperrors.Validation, "API URL must be an absolute http(s) URL, e.g. https://api.example.com")
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetAPIURLCmd)
	rootCmd.AddCommand(configCmd)
}
