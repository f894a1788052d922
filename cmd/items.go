package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"grocer/cli/internal/backend"
	apperrors "grocer/cli/internal/errors"
	"grocer/cli/internal/pages"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	itemQuantity int
	itemDetails  string
	itemName     string
)

// itemsCmd groups item operations. Items are addressed by their index in the
// list, as shown by "grocer lists show".
var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"item"},
	Short:   "Add, edit, check and remove list items",
}

var itemsAddCmd = &cobra.Command{
	Use:   "add <list-id> <name>",
	Short: "Add an item",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFor(cmd)
		l, err := a.api.AddListItem(cmd.Context(), args[0], backend.AddListItemRequest{
			Name:     strings.Join(args[1:], " "),
			Quantity: itemQuantity,
			Details:  itemDetails,
		})
		return showItems(cmd, l, fail("adding the item", err))
	},
}

var itemsEditCmd = &cobra.Command{
	Use:   "edit <list-id> <index>",
	Short: "Change an item's name, quantity or details",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		req := backend.UpdateListItemRequest{Index: idx}
		f := cmd.Flags()
		if f.Changed("name") {
			req.Name = &itemName
		}
		if f.Changed("quantity") {
			req.Quantity = &itemQuantity
		}
		if f.Changed("details") {
			req.Details = &itemDetails
		}
		if req.Name == nil && req.Quantity == nil && req.Details == nil {
			return fmt.Errorf("nothing to change: pass --name, --quantity or --details")
		}
		l, err := appFor(cmd).api.UpdateListItem(cmd.Context(), args[0], req)
		return showItems(cmd, l, fail("editing the item", err))
	},
}

func checkCommand(use, short string, checked bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <list-id> <index>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			l, err := appFor(cmd).api.UpdateListItemChecked(cmd.Context(), args[0], idx, checked)
			return showItems(cmd, l, fail("updating the item", err))
		},
	}
}

var itemsRemoveCmd = &cobra.Command{
	Use:     "remove <list-id> <index>",
	Aliases: []string{"rm"},
	Short:   "Remove an item",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		l, err := appFor(cmd).api.DeleteListItem(cmd.Context(), args[0], idx)
		return showItems(cmd, l, fail("removing the item", err))
	},
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fail("reading the item index", apperrors.New(apperrors.Validation, "index must be a number from 0, as shown by 'grocer lists show'"))
	}
	return n, nil
}

func showItems(cmd *cobra.Command, l *backend.List, err error) error {
	if err != nil {
		return err
	}
	pterm.Fprintln(appFor(cmd).out, pages.RenderList(l))
	return nil
}

func init() {
	itemsAddCmd.Flags().IntVarP(&itemQuantity, "quantity", "q", 0, "quantity")
	itemsAddCmd.Flags().StringVarP(&itemDetails, "details", "d", "", "notes, up to 512 characters")
	itemsEditCmd.Flags().StringVarP(&itemName, "name", "n", "", "new name")
	itemsEditCmd.Flags().IntVarP(&itemQuantity, "quantity", "q", 0, "new quantity")
	itemsEditCmd.Flags().StringVarP(&itemDetails, "details", "d", "", "new details")

	itemsCmd.AddCommand(
		itemsAddCmd,
		itemsEditCmd,
		checkCommand("check", "Mark an item as done", true),
		checkCommand("uncheck", "Mark an item as not done", false),
		itemsRemoveCmd,
	)
	rootCmd.AddCommand(itemsCmd)
}
