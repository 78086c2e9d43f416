package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/file"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/lend"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/menu"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// registerCommands adds every subcommand to the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		add.NewCommand(a),
		search.NewCommand(a),
		list.NewCommand(a),
		menu.NewCommand(a),
		lend.NewBorrowCommand(a),
		lend.NewReturnCommand(a),
		file.NewSaveCommand(a),
		file.NewLoadCommand(a),
		a.createVersionCommand(),
		a.createCompletionCommand(),
	)
}

// versionInfo is the structured form of the version command output.
type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// createVersionCommand creates the version command.
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(globals.OutputFormat(cmd, a.OutputFormat()))
			if err != nil {
				return err
			}
			switch format {
			case output.FormatJSON, output.FormatYAML:
				formatter := output.NewFormatter(format)
				return formatter.Format(cmd.OutOrStdout(), versionInfo{
					Version: a.version,
					Commit:  a.commit,
					Date:    a.date,
					BuiltBy: a.builtBy,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bookshelf %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
			return nil
		},
	}
}

// createCompletionCommand creates the shell completion command.
func (a *App) createCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate a shell completion script",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{constants.ShellBash, constants.ShellZsh, constants.ShellFish, constants.ShellPowerShell},
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), cmd.OutOrStdout(), args[0])
		},
	}
}

func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.NewValidationError("shell", shell, "must be one of: bash, zsh, fish, powershell")
	}
}
