// Package search provides the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "search <title>",
		GroupID: "catalog",
		Aliases: []string{"find", "show"},
		Short:   "Show where a book is shelved and how many copies are on hand",
		Example: `  bookshelf search Dune
  bookshelf search Dune -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			book, err := lib.Book(args[0])
			if err != nil {
				return err
			}

			format, err := output.Resolve(globals.OutputFormat(cmd, app.OutputFormat()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return output.FormatBook(cmd.OutOrStdout(), format, book)
		},
	}
}
