// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:     "add <title> <author> <location>",
		GroupID: "catalog",
		Short:   "Add a book, or replace the entry with the same title",
		Long: `Add stores a book under its title. Adding a title that is already in
the catalog replaces that entry.

The location is a shelf number and a row number, written as "3 2",
"3,2" or "[3, 2]".`,
		Example: `  bookshelf add Dune Herbert "3 2"             # one copy on shelf 3, row 2
  bookshelf add "War and Peace" Tolstoy 7,4 -n 3  # three copies`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, author := args[0], args[1]
			if title == "" {
				return errors.NewValidationError("title", title, "cannot be empty")
			}

			location, err := catalogs.ParseLocation(args[2])
			if err != nil {
				return err
			}
			if quantity < 0 {
				return errors.NewValidationError("quantity", quantity, "cannot be negative")
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}
			if err := lib.AddBook(title, author, location, quantity); err != nil {
				return err
			}

			app.Logger().Debug().Str("title", title).Int("quantity", quantity).Msg("Added book")
			fmt.Fprintf(cmd.OutOrStdout(), "%s Book added: %s (%s, %d %s)\n",
				emoji.Success, title, location, quantity, copies(quantity))
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "n", constants.DefaultQuantity, "number of copies")

	return cmd
}

func copies(n int) string {
	if n == 1 {
		return "copy"
	}
	return "copies"
}
