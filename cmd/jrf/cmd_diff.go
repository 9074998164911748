package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/javarefactor/config"
	"github.com/dhamidi/javarefactor/patch"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var input string
	var configDir string

	cmd := &cobra.Command{
		Use:   "diff <recipe>",
		Short: "Run a named .jrf.yaml recipe and print its unified diff",
		Long: `diff runs the same recipe apply does but never writes the
patched source anywhere: it renders the staged fixes straight from
refactor.Result.Patch, the shape patch.Render turns into "---"/"+++"/
"@@" unified-diff text, so a caller can review a recipe's effect
before committing to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configDir)
			if err != nil {
				return err
			}
			recipe := cfg.Recipe(args[0])
			if recipe == nil {
				return fmt.Errorf("no recipe named %q in %s", args[0], configDir)
			}

			snap, err := readSnapshot(input)
			if err != nil {
				return err
			}

			result, err := runRecipe(recipe, snap)
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %v\n", w)
			}
			if !result.Changed {
				fmt.Fprintln(os.Stderr, "no changes")
				return nil
			}

			fmt.Print(patch.Render(result.Patch, "a/source.java", "b/source.java"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "snapshot JSON file (default: stdin)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing .jrf.yaml")

	return cmd
}
