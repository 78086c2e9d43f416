// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) *Flags {
	// Walk up the command hierarchy to find persistent flags
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	format, _ := root.PersistentFlags().GetString("format")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}
}

// OutputFormat returns the --format flag value, or fallback when it is unset.
func OutputFormat(cmd *cobra.Command, fallback string) string {
	if f := Parse(cmd).Format; f != "" {
		return f
	}
	return fallback
}
