package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mayen007/gitfolio/internal/tui"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "gitfolio",
		Short: "GitHub portfolio dashboard",
		Long: `A CLI tool that renders a GitHub portfolio: profile, featured
projects, and contribution statistics, backed by a cached data layer
that keeps working when the API does not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addRootFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdProfile(opts))
	rootCmd.AddCommand(NewCmdProjects(opts))
	rootCmd.AddCommand(NewCmdRepos(opts))
	rootCmd.AddCommand(NewCmdStats(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdCache())
	rootCmd.AddCommand(NewCmdRateLimit())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// addRootFlags adds the flags shared by the root command and the data
// subcommands.
func addRootFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVarP(&opts.Username, "user", "u", "", "GitHub login to show (overrides config)")
	cmd.PersistentFlags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	cmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.PersistentFlags().BoolVar(&opts.NoCache, "no-cache", false, "Disable the persisted cache fallback")

	// TUI flag with tri-state: nil = auto, true = force, false = disable
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable the dashboard TUI (default: auto-detect)")
}

// runOverview renders the full portfolio, as a live dashboard on a
// terminal and as plain output everywhere else.
func runOverview(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	if shouldUseTUI(opts) {
		return tui.Run(ctx, rt.svc)
	}

	ov, err := rt.svc.Overview(ctx)
	if err != nil {
		return err
	}
	return rt.formatter(opts).Overview(ov, os.Stdout)
}
