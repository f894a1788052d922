package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"grocer/cli/internal/backend"
	"grocer/cli/internal/pages"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	listDescription string
	listYes         bool
)

// listsCmd groups list management. Without a subcommand it lists everything.
var listsCmd = &cobra.Command{
	Use:     "lists",
	Aliases: []string{"list"},
	Short:   "Create, show and share lists",
	Args:    cobra.NoArgs,
	RunE:    runListsLs,
}

var listsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show all your lists",
	Args:  cobra.NoArgs,
	RunE:  runListsLs,
}

func runListsLs(cmd *cobra.Command, args []string) error {
	a := appFor(cmd)
	lists, err := spin(a.out, "Loading lists", func() ([]backend.List, error) {
		return a.api.GetLists(cmd.Context())
	})
	if err != nil {
		return fail("loading your lists", err)
	}
	if len(lists) == 0 {
		fmt.Fprintln(a.out, "No lists yet. Create one with: grocer lists create <name>")
		return nil
	}
	pterm.Fprintln(a.out, pages.RenderLists(lists))
	return nil
}

var listsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		l, err := a.api.CreateList(cmd.Context(), backend.CreateListRequest{
			Name:        strings.Join(args, " "),
			Description: listDescription,
		})
		if err != nil {
			return fail("creating the list", err)
		}
		pterm.Fprintln(a.out, pterm.Success.Sprint("Created "+l.Name))
		pterm.Fprintln(a.out, pages.RenderList(l))
		return nil
	},
}

// listsShowCmd goes through the navigator so the guard applies.
var listsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one list and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		_, err := a.nav.Navigate(cmd.Context(), "/lists/"+url.PathEscape(args[0]))
		return fail("loading the list", err)
	},
}

var listsRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a list (and optionally change its description)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		name := strings.Join(args[1:], " ")
		req := backend.UpdateListRequest{Name: &name}
		if cmd.Flags().Changed("description") {
			req.Description = &listDescription
		}
		l, err := a.api.UpdateList(cmd.Context(), args[0], req)
		if err != nil {
			return fail("renaming the list", err)
		}
		pterm.Fprintln(a.out, pages.RenderList(l))
		return nil
	},
}

var listsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		if !listYes {
			ans, err := a.prompt.Line(fmt.Sprintf("Delete list %s? Type yes to confirm: ", args[0]))
			if err != nil || !strings.EqualFold(ans, "yes") {
				fmt.Fprintln(a.out, "Aborted.")
				return nil
			}
		}
		if err := a.api.DeleteList(cmd.Context(), args[0]); err != nil {
			return fail("deleting the list", err)
		}
		fmt.Fprintln(a.out, "🗑️  List deleted")
		return nil
	},
}

var listsShareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print the link others use to join a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		l, err := a.api.GetList(cmd.Context(), args[0])
		if err != nil {
			return fail("loading the list", err)
		}
		path := "/lists/share/" + l.ID
		fmt.Fprintf(a.out, "Share %q with this path:\n\n  %s\n\n", l.Name, path)
		fmt.Fprintf(a.out, "They can join with: grocer open %s\n", path)
		return nil
	},
}

var listsJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a list someone shared with you",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		_, err := a.nav.Navigate(cmd.Context(), "/lists/share/"+url.PathEscape(args[0]))
		return fail("joining the list", err)
	},
}

func init() {
	listsCreateCmd.Flags().StringVarP(&listDescription, "description", "d", "", "list description")
	listsRenameCmd.Flags().StringVarP(&listDescription, "description", "d", "", "new description")
	listsDeleteCmd.Flags().BoolVarP(&listYes, "yes", "y", false, "skip the confirmation prompt")

	listsCmd.AddCommand(listsLsCmd, listsCreateCmd, listsShowCmd, listsRenameCmd, listsDeleteCmd, listsShareCmd, listsJoinCmd)
	rootCmd.AddCommand(listsCmd)
}
