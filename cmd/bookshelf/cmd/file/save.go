// Package file provides the save and load commands.
package file

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/save"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(app application.Application) *cobra.Command {
	var fileType string

	cmd := &cobra.Command{
		Use:     "save <path>",
		GroupID: "files",
		Aliases: []string{"export"},
		Short:   "Write the catalog to a file",
		Long: `Save writes the whole catalog to path, replacing the file if it exists.
The working catalog file is not changed.

The file type follows the extension (.json, .csv, anything else is YAML)
unless --type is given.`,
		Example: `  bookshelf save backup.yaml
  bookshelf save books.csv
  bookshelf save export.txt --type json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format, err := save.ParseFormat(fileType)
			if err != nil {
				return err
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}

			if err := lib.Save(save.WithPath(path), save.WithFormat(format)); err != nil {
				return err
			}

			count := len(lib.List())
			app.Logger().Debug().Str("path", path).Str("format", format.Resolve(path).String()).Msg("Saved catalog")
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %d books to %s\n", emoji.Success, count, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", "", "file type: yaml, json, csv (default: from extension)")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{save.FormatYAML.String(), save.FormatJSON.String(), save.FormatCSV.String()}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
