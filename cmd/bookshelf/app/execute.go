package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// flagValues holds the raw global flag values before they are merged into Config.
type flagValues struct {
	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
	format     string
	logLevel   string
	catalog    string
}

// Execute runs the bookshelf CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Library catalog manager",
		Version: a.version,
		Long: `Bookshelf keeps a small library catalog: which books you own, where
each one is shelved and how many copies are on hand.

Every command works on a catalog file (library.yaml by default). Commands
that change the catalog write the file back when they succeed.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog",
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "lending",
		Title: "Lending Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "files",
		Title: "File Commands:",
	})

	f := a.flags
	rootCmd.PersistentFlags().StringVar(&f.configFile, "config", "", "config file (default is $HOME/.bookshelf.yaml)")
	rootCmd.PersistentFlags().StringVarP(&f.catalog, "catalog", "c", "", "working catalog file (default "+a.config.CatalogPath+")")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&f.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&f.format, "format", "o", "", "output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.flags.configFile != "" {
		config, err := LoadConfig(a.flags.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(a.flags)

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
