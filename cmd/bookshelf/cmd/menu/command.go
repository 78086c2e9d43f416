// Package menu provides the interactive menu command.
package menu

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/tui"
)

// NewCommand creates the menu command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "catalog",
		Short:   "Manage the library from an interactive menu",
		Long: `Menu opens an interactive menu with every catalog operation: adding,
searching, listing, borrowing and returning books, and saving or loading
the catalog from a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithInput(cmd.InOrStdin()),
				tui.WithOutput(cmd.OutOrStdout()),
			}
			if globals.Parse(cmd).NoColor {
				opts = append(opts, tui.WithTheme(tui.PlainTheme()))
			}
			if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				opts = append(opts, tui.WithAltScreen())
			}

			app.Logger().Debug().Str("path", lib.Path()).Msg("Starting menu")
			return tui.Run(cmd.Context(), lib, opts...)
		},
	}
}
