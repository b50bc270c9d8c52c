package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfmartin/renamebatch/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "renamebatch",
		Short: "Batch file renaming utility",
		Long: `renamebatch renames files under a directory according to composable
rules: prefix, suffix, regex search/replace, sequential or append numbering,
and date insertion. Every run is a dry-run preview unless --execute is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewRenameCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
