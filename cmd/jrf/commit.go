package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// commitPatch stages path and commits it to the repository containing
// path, the way `apply --commit` turns a written patch into a real
// commit without shelling out to git. Grounded on fumiya-kume-cca's
// pkg/git.RepositoryManager, but opening the worktree that already
// contains path rather than cloning one, since jrf runs against a
// checkout the caller already has.
func commitPatch(path, recipeName string) error {
	if path == "" || path == "-" {
		return fmt.Errorf("jrf apply --commit needs --output to name a file inside a git worktree")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("open git repository for %s: %w", abs, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}

	relPath, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return fmt.Errorf("relativize %s to worktree: %w", abs, err)
	}

	if _, err := worktree.Add(relPath); err != nil {
		return fmt.Errorf("stage %s: %w", relPath, err)
	}

	message := fmt.Sprintf("jrf apply: %s", recipeName)
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: commitSignature(),
	})
	if err != nil {
		return fmt.Errorf("commit %s: %w", relPath, err)
	}

	return nil
}

// commitSignature returns the author identity jrf commits under.
// go-git requires one explicitly; this is always the fixed
// "jrf <jrf@localhost>" identity, and the repository's configured
// user.name/user.email are not read.
func commitSignature() *object.Signature {
	return &object.Signature{
		Name:  "jrf",
		Email: "jrf@localhost",
		When:  time.Now(),
	}
}
