// Package constants provides a centralized location for all configuration
// values and magic numbers used throughout the gitfolio application.
package constants

import "time"

// Persisted cache constants
const (
	// CacheTTL is the maximum age of a persisted cache entry before it is
	// discarded on read. The persisted cache only serves as a fallback when
	// live fetches fail, so a short window keeps stale data bounded.
	CacheTTL = 10 * time.Minute

	// CacheKeyUser is the cache key for the profile dataset.
	CacheKeyUser = "github_user"

	// CacheKeyPinned is the cache key for the pinned repositories dataset.
	CacheKeyPinned = "github_pinned"

	// CacheKeyRepos is the cache key for the full repository list dataset.
	CacheKeyRepos = "github_repos"

	// CacheKeyStats is the cache key for the aggregate statistics dataset.
	CacheKeyStats = "github_stats"
)

// Staleness windows: in-memory results younger than these are served
// without a network call.
const (
	ProfileStaleTime = 15 * time.Minute
	ReposStaleTime   = 10 * time.Minute
	PinnedStaleTime  = 30 * time.Minute
	StatsStaleTime   = 15 * time.Minute
)

// GC windows: how long a query result is kept in memory after its last
// subscriber goes away.
const (
	ProfileGCTime = 30 * time.Minute
	ReposGCTime   = 20 * time.Minute
	PinnedGCTime  = time.Hour
	StatsGCTime   = 30 * time.Minute
)

// Retry constants
const (
	// MaxRetries is the number of automatic retries after a failed fetch.
	MaxRetries = 2

	// RetryBaseDelay is the initial backoff delay, doubled per attempt.
	RetryBaseDelay = time.Second

	// ProfileRetryMaxDelay caps backoff for the profile query.
	ProfileRetryMaxDelay = 10 * time.Second

	// RetryMaxDelay caps backoff for all other queries.
	RetryMaxDelay = 30 * time.Second
)

// GitHub API constants
const (
	// ReposPerPage is the page size for repository listing.
	ReposPerPage = 100

	// PinnedLimit is the maximum number of pinned repositories GitHub
	// shows on a profile.
	PinnedLimit = 6

	// RateLimitLowWatermark is the threshold below which rate limit
	// warnings are logged.
	RateLimitLowWatermark = 100
)
