package file

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
)

// NewLoadCommand creates the load command.
func NewLoadCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "load <path>",
		GroupID: "files",
		Aliases: []string{"import"},
		Short:   "Replace the catalog with the contents of a file",
		Long: `Load replaces the whole working catalog with the books stored in path.
If the file is missing or cannot be decoded, the working catalog is left
untouched.`,
		Example: `  bookshelf load backup.yaml
  bookshelf load books.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			lib, err := app.Library()
			if err != nil {
				return err
			}

			if err := lib.LoadFrom(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Loaded %d books from %s\n", emoji.Success, len(lib.List()), path)
			return nil
		},
	}
}
