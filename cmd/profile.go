package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCmdProfile creates the profile command.
func NewCmdProfile(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the GitHub profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfile(cmd, opts)
		},
	}
}

func runProfile(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	res, err := rt.svc.Profile.Get(ctx)
	if err != nil {
		return err
	}
	return rt.formatter(opts).Profile(res.Data, os.Stdout)
}
