package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/javarefactor/config"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var input string
	var configDir string
	var output string
	var commit bool

	cmd := &cobra.Command{
		Use:   "apply <recipe>",
		Short: "Run a named .jrf.yaml recipe and write the patched source",
		Args:  cobra.ExactArgs(1),
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

			patched := tree.Print(result.Fixed)

			if output == "" || output == "-" {
				_, err = os.Stdout.WriteString(patched)
			} else {
				err = os.WriteFile(output, []byte(patched), 0644)
			}
			if err != nil {
				return err
			}

			if commit {
				return commitPatch(output, recipe.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "snapshot JSON file (default: stdin)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing .jrf.yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the patched source to (default: stdout)")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the written output file to the current git worktree")

	return cmd
}
