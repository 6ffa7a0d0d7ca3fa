package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCmdStats creates the stats command.
func NewCmdStats(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show contribution statistics",
		Long: `Show aggregate statistics: contributions this year, star and
fork totals, and contribution streaks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}
}

func runStats(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	res, err := rt.svc.Stats.Get(ctx)
	if err != nil {
		return err
	}
	return rt.formatter(opts).Stats(res.Data, os.Stdout)
}
