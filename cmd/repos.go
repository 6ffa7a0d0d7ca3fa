package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mayen007/gitfolio/internal/model"
)

// NewCmdRepos creates the repos command.
func NewCmdRepos(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List public repositories",
		Long:  `List the user's public repositories, forks excluded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepos(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Maximum repositories to show (0 = all)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "updated", "Sort order (updated, stars, name)")
	return cmd
}

func runRepos(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	res, err := rt.svc.Repositories.Get(ctx)
	if err != nil {
		return err
	}

	repos := slices.Clone(res.Data)
	if err := sortRepos(repos, opts.Sort); err != nil {
		return err
	}
	if opts.Limit > 0 && len(repos) > opts.Limit {
		repos = repos[:opts.Limit]
	}

	return rt.formatter(opts).Repositories(repos, os.Stdout)
}

func sortRepos(repos []model.Repository, order string) error {
	switch order {
	case "updated", "":
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	case "stars":
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return b.Stars - a.Stars
		})
	case "name":
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		return fmt.Errorf("invalid sort order %q: use updated, stars, or name", order)
	}
	return nil
}
