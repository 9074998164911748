package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jrf",
		Short: "A source-preserving refactoring engine for Java",
		Long: `jrf operates on compilation units produced by an external Java
parser: every subcommand reads a snapshot document (the original
source text plus its parsed tree, see tree.Snapshot) from a file or
stdin rather than parsing .java source itself.`,
	}

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newPRCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
