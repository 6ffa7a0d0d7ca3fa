package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCmdProjects creates the projects command.
func NewCmdProjects(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show featured projects",
		Long: `Show the profile's pinned repositories. Profiles with nothing
pinned fall back to the most starred repositories. With --featured, the
featured_repos list from the config is shown instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjects(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "Show the configured featured_repos list")
	return cmd
}

func runProjects(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Featured && len(rt.cfg.FeaturedRepos) > 0 {
		repos, err := rt.svc.FeaturedRepositories(ctx, rt.cfg.FeaturedRepos)
		if err != nil {
			return err
		}
		return rt.formatter(opts).Repositories(repos, os.Stdout)
	}

	res, err := rt.svc.Pinned.Get(ctx)
	if err != nil {
		return err
	}
	return rt.formatter(opts).Repositories(res.Data, os.Stdout)
}
