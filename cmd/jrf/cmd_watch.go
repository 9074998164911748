package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dhamidi/javarefactor/config"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay coalesces the burst of write events most editors and
// `go fmt`-style tools generate for a single logical save.
const debounceDelay = 500 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var configDir string
	var output string

	cmd := &cobra.Command{
		Use:   "watch <recipe> <snapshot-file>",
		Short: "Re-run a recipe every time a snapshot file changes",
		Long: `watch loads the named recipe once and then re-applies it to
snapshot-file every time that file is written, printing the patched
source (or writing it to --output) on each run until interrupted. The
file is watched event-driven via fsnotify rather than polled, so a
recipe reruns immediately after the snapshot is rewritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configDir)
			if err != nil {
				return err
			}
			recipe := cfg.Recipe(args[0])
			if recipe == nil {
				return fmt.Errorf("no recipe named %q in %s", args[0], configDir)
			}
			snapshotPath := args[1]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(filepath.Dir(snapshotPath)); err != nil {
				return fmt.Errorf("watch %s: %w", snapshotPath, err)
			}

			if err := runWatchOnce(recipe, snapshotPath, output); err != nil {
				fmt.Fprintln(os.Stderr, "jrf watch:", err)
			}

			return watchLoop(cmd, watcher, snapshotPath, recipe, output)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing .jrf.yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the patched source to (default: stdout)")

	return cmd
}

func watchLoop(cmd *cobra.Command, watcher *fsnotify.Watcher, snapshotPath string, recipe *config.Recipe, output string) error {
	var debounceTimer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(snapshotPath) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "jrf watch:", err)
		case <-fire:
			if err := runWatchOnce(recipe, snapshotPath, output); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "jrf watch:", err)
			}
		}
	}
}

func runWatchOnce(recipe *config.Recipe, snapshotPath, output string) error {
	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", snapshotPath, err)
	}
	snap, err := tree.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", snapshotPath, err)
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
	return err
}
