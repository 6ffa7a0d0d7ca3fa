package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mayen007/gitfolio/config"
	"github.com/mayen007/gitfolio/internal/cache"
	"github.com/mayen007/gitfolio/internal/githubapi"
	"github.com/mayen007/gitfolio/internal/log"
	"github.com/mayen007/gitfolio/internal/output"
	"github.com/mayen007/gitfolio/internal/portfolio"
)

// runtime bundles everything a command needs after setup.
type runtime struct {
	cfg *config.Config
	svc *portfolio.Service
}

// setup loads config, initializes logging, and builds the portfolio
// service for the resolved username.
func setup(ctx context.Context, opts *Options) (*runtime, error) {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	username := opts.Username
	if username == "" {
		username = cfg.Username
	}
	if username == "" {
		return nil, fmt.Errorf("no GitHub username configured. Pass --user or run: gitfolio config set username <login>")
	}

	var store *cache.Store
	if !opts.NoCache {
		store, err = cache.NewStore()
		if err != nil {
			log.Warn("persisted cache unavailable", "error", err)
			store = nil
		}
	}

	client := githubapi.NewClient(ctx, cfg.GetGitHubToken())
	svc := portfolio.NewService(client, store, username,
		portfolio.WithPinnedLimit(cfg.PinnedFallbackLimit))

	return &runtime{cfg: cfg, svc: svc}, nil
}

// formatter resolves the output format from the flag, the config, and
// the table default, in that order.
func (rt *runtime) formatter(opts *Options) output.Formatter {
	format := opts.Format
	if format == "" {
		format = rt.cfg.DefaultFormat
	}
	return output.NewFormatter(output.Format(format))
}
