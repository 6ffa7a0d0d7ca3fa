// Package portfolio assembles the GitHub datasets a portfolio shows:
// profile, pinned projects, repository list, and aggregate statistics.
// Each dataset is owned by a query that handles staleness, retries, and
// the persisted cache fallback.
package portfolio

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mayen007/gitfolio/internal/cache"
	"github.com/mayen007/gitfolio/internal/constants"
	"github.com/mayen007/gitfolio/internal/githubapi"
	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/query"
	"github.com/mayen007/gitfolio/internal/streak"
)

// GitHubAPI is the slice of the GitHub client the service needs.
type GitHubAPI interface {
	User(ctx context.Context, username string) (model.Profile, error)
	ListRepositories(ctx context.Context, username string) ([]model.Repository, error)
	PinnedRepositories(ctx context.Context, username string) ([]model.Repository, error)
	ContributionCalendar(ctx context.Context, username string) (githubapi.Calendar, error)
}

var _ GitHubAPI = (*githubapi.Client)(nil)

// Service exposes one query per dataset. The queries share the persisted
// cache store and deduplicate concurrent fetches, so the CLI, the TUI,
// and tests can all pull from the same instance.
type Service struct {
	client      GitHubAPI
	store       *cache.Store
	username    string
	pinnedLimit int

	Profile      *query.Query[model.Profile]
	Repositories *query.Query[[]model.Repository]
	Pinned       *query.Query[[]model.Repository]
	Stats        *query.Query[model.Stats]
}

// Option configures a Service.
type Option func(*Service)

// WithPinnedLimit caps the star-ranked fallback list used when a profile
// has nothing pinned. Values below one keep the default.
func WithPinnedLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pinnedLimit = n
		}
	}
}

// NewService builds a Service for username. store may be nil to run
// without the persisted cache.
func NewService(client GitHubAPI, store *cache.Store, username string, opts ...Option) *Service {
	s := &Service{
		client:      client,
		store:       store,
		username:    username,
		pinnedLimit: constants.PinnedLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	retry := query.RetryPolicy{
		MaxRetries: constants.MaxRetries,
		BaseDelay:  constants.RetryBaseDelay,
		MaxDelay:   constants.RetryMaxDelay,
		Retryable:  githubapi.Retryable,
	}
	profileRetry := retry
	profileRetry.MaxDelay = constants.ProfileRetryMaxDelay

	s.Profile = query.New(query.Options{
		Key:       constants.CacheKeyUser,
		StaleTime: constants.ProfileStaleTime,
		GCTime:    constants.ProfileGCTime,
		Retry:     profileRetry,
	}, store, s.fetchProfile)

	s.Repositories = query.New(query.Options{
		Key:       constants.CacheKeyRepos,
		StaleTime: constants.ReposStaleTime,
		GCTime:    constants.ReposGCTime,
		Retry:     retry,
	}, store, s.fetchRepositories)

	s.Pinned = query.New(query.Options{
		Key:       constants.CacheKeyPinned,
		StaleTime: constants.PinnedStaleTime,
		GCTime:    constants.PinnedGCTime,
		Retry:     retry,
	}, store, s.fetchPinned)

	s.Stats = query.New(query.Options{
		Key:       constants.CacheKeyStats,
		StaleTime: constants.StatsStaleTime,
		GCTime:    constants.StatsGCTime,
		Retry:     retry,
	}, store, s.fetchStats)

	return s
}

// Username returns the GitHub login the service is bound to.
func (s *Service) Username() string {
	return s.username
}

func (s *Service) fetchProfile(ctx context.Context) (model.Profile, error) {
	return s.client.User(ctx, s.username)
}

// fetchRepositories returns the user's own repositories, forks excluded.
func (s *Service) fetchRepositories(ctx context.Context) ([]model.Repository, error) {
	repos, err := s.client.ListRepositories(ctx, s.username)
	if err != nil {
		return nil, err
	}
	owned := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		owned = append(owned, r)
	}
	return owned, nil
}

// fetchPinned returns the profile's pinned repositories. Profiles with
// nothing pinned fall back to the most starred non-fork repositories, so
// the projects section is never empty.
func (s *Service) fetchPinned(ctx context.Context) ([]model.Repository, error) {
	pinned, err := s.client.PinnedRepositories(ctx, s.username)
	if err != nil {
		return nil, err
	}
	if len(pinned) > 0 {
		return pinned, nil
	}

	repos, err := s.fetchRepositories(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(repos, func(a, b model.Repository) int {
		return b.Stars - a.Stars
	})
	if len(repos) > s.pinnedLimit {
		repos = repos[:s.pinnedLimit]
	}
	return repos, nil
}

// fetchStats aggregates the statistics panel: contribution totals and
// streaks from the calendar, star and fork sums over owned repositories,
// and the public repository count from the profile.
func (s *Service) fetchStats(ctx context.Context) (model.Stats, error) {
	var (
		profile  model.Profile
		repos    []model.Repository
		calendar githubapi.Calendar
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.client.User(gctx, s.username)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.fetchRepositories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		calendar, err = s.client.ContributionCalendar(gctx, s.username)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Stats{}, err
	}

	stats := model.Stats{
		TotalContributions: calendar.TotalContributions,
		TotalRepos:         profile.PublicRepos,
		ContributionYears:  calendar.Years,
	}
	for _, r := range repos {
		stats.TotalStars += r.Stars
		stats.TotalForks += r.Forks
	}

	streaks := streak.Calculate(calendar.Days)
	stats.CurrentStreak = streaks.Current
	stats.LongestStreak = streaks.Longest

	return stats, nil
}

// TopRepositories returns the n most starred owned repositories.
func (s *Service) TopRepositories(ctx context.Context, n int) ([]model.Repository, error) {
	res, err := s.Repositories.Get(ctx)
	if err != nil {
		return nil, err
	}
	repos := slices.Clone(res.Data)
	slices.SortStableFunc(repos, func(a, b model.Repository) int {
		return b.Stars - a.Stars
	})
	if n > 0 && len(repos) > n {
		repos = repos[:n]
	}
	return repos, nil
}

// FeaturedRepositories returns the named repositories in the given
// order. Names are matched case-insensitively; unknown names are
// skipped.
func (s *Service) FeaturedRepositories(ctx context.Context, names []string) ([]model.Repository, error) {
	res, err := s.Repositories.Get(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]model.Repository, 0, len(names))
	for _, name := range names {
		for _, r := range res.Data {
			if strings.EqualFold(r.Name, name) {
				featured = append(featured, r)
				break
			}
		}
	}
	return featured, nil
}

// Overview bundles every dataset for the dashboard and the default
// command.
type Overview struct {
	Profile model.Profile      `json:"profile"`
	Pinned  []model.Repository `json:"pinned"`
	Stats   model.Stats        `json:"stats"`

	// FromCache marks sections served from the persisted cache.
	FromCache struct {
		Profile bool `json:"profile"`
		Pinned  bool `json:"pinned"`
		Stats   bool `json:"stats"`
	} `json:"fromCache"`
}

// Overview fetches profile, pinned projects, and statistics in parallel.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var ov Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.Profile.Get(gctx)
		if err != nil {
			return err
		}
		ov.Profile = res.Data
		ov.FromCache.Profile = res.FromCache
		return nil
	})
	g.Go(func() error {
		res, err := s.Pinned.Get(gctx)
		if err != nil {
			return err
		}
		ov.Pinned = res.Data
		ov.FromCache.Pinned = res.FromCache
		return nil
	})
	g.Go(func() error {
		res, err := s.Stats.Get(gctx)
		if err != nil {
			return err
		}
		ov.Stats = res.Data
		ov.FromCache.Stats = res.FromCache
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}
