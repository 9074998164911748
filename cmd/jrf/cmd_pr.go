package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/dhamidi/javarefactor/config"
	"github.com/dhamidi/javarefactor/patch"
	"github.com/google/go-github/v60/github"
	"github.com/spf13/cobra"
)

func newPRCmd() *cobra.Command {
	var configDir string
	var owner string
	var repo string
	var branch string
	var base string
	var title string

	cmd := &cobra.Command{
		Use:   "pr <recipe>",
		Short: "Open a pull request carrying a recipe's rendered patch",
		Long: `pr runs the named recipe, renders its unified diff the same way
diff does, and posts it as the body of a new pull request against
--base, authenticating the way the local gh CLI already does (no
separate token flag). This only opens the PR against an existing
branch; it does not push commits itself — pair it with
"jrf apply --commit" and a plain "git push" first.`,
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
			if owner == "" || repo == "" {
				return fmt.Errorf("jrf pr needs --owner and --repo")
			}
			if branch == "" {
				return fmt.Errorf("jrf pr needs --branch, the head branch carrying the recipe's commit")
			}

			snap, err := readSnapshot("")
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
				fmt.Fprintln(os.Stderr, "no changes, not opening a pull request")
				return nil
			}

			diff := patch.Render(result.Patch, "a/source.java", "b/source.java")
			body := fmt.Sprintf("Recipe `%s` (%s).\n\n```diff\n%s```\n", recipe.Name, recipe.Refactor, diff)

			if title == "" {
				title = fmt.Sprintf("jrf: apply %s", recipe.Name)
			}

			client, err := newGitHubClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pr, _, err := client.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
				Title: &title,
				Head:  &branch,
				Base:  &base,
				Body:  &body,
			})
			if err != nil {
				return fmt.Errorf("create pull request: %w", err)
			}

			fmt.Printf("%s\n", pr.GetHTMLURL())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing .jrf.yaml")
	cmd.Flags().StringVar(&owner, "owner", "", "GitHub repository owner")
	cmd.Flags().StringVar(&repo, "repo", "", "GitHub repository name")
	cmd.Flags().StringVar(&branch, "branch", "", "head branch carrying the recipe's commit")
	cmd.Flags().StringVar(&base, "base", "main", "base branch to open the pull request against")
	cmd.Flags().StringVar(&title, "title", "", "pull request title (default: derived from the recipe name)")

	return cmd
}

// newGitHubClient authenticates the way the local gh CLI already has,
// rather than taking a separate --token flag: auth.TokenForHost
// resolves the token gh itself already has stored (env var, keyring,
// or config file, in gh's own precedence order), and ghAuthTransport
// attaches it to every request go-github sends.
func newGitHubClient() (*github.Client, error) {
	token, source := auth.TokenForHost("github.com")
	if token == "" {
		return nil, fmt.Errorf("no GitHub token found (%s); run `gh auth login`", source)
	}
	httpClient := &http.Client{
		Transport: &ghAuthTransport{token: token},
		Timeout:   30 * time.Second,
	}
	return github.NewClient(httpClient), nil
}

// ghAuthTransport attaches gh's resolved token to every request,
// the same bearer-style header gh itself sends its own REST calls with.
type ghAuthTransport struct {
	token string
}

func (t *ghAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "token "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}
