// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "catalog",
		Aliases: []string{"ls"},
		Short:   "List all books sorted by title",
		Example: `  bookshelf list            # table
  bookshelf list -o wide    # shelf, row and availability columns
  bookshelf list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			books := lib.List()
			flags := globals.Parse(cmd)
			if !flags.Quiet {
				app.Logger().Debug().Msgf("Found %d books", len(books))
			}

			format, err := output.Resolve(globals.OutputFormat(cmd, app.OutputFormat()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return output.FormatBooks(cmd.OutOrStdout(), format, books)
		},
	}
}
