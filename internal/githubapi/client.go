// Package githubapi wraps GitHub's REST and GraphQL surfaces behind a
// small client that returns normalized view models and classified errors.
// It performs no retries; retry policy belongs to the query layer.
package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/mayen007/gitfolio/internal/constants"
	"github.com/mayen007/gitfolio/internal/log"
	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/streak"
)

// Client wraps the GitHub API client.
type Client struct {
	rest *gh.Client
	// token is intentionally unexported. NEVER add String(), MarshalJSON(),
	// or any method that could expose this value in logs or serialized output.
	token string

	graphqlHTTP *http.Client
	graphqlURL  string
}

// NewClient creates a GitHub client. The token is optional: without one,
// REST calls run unauthenticated at lower rate limits and GraphQL calls
// fail with an authentication error (GitHub requires a token there).
func NewClient(ctx context.Context, token string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(ctx, ts)
		// Wrap transport with rate limit tracking
		hc.Transport = &rateLimitTransport{base: hc.Transport}
	} else {
		hc = &http.Client{Transport: &rateLimitTransport{}}
	}

	return &Client{
		rest:        gh.NewClient(hc),
		token:       token,
		graphqlHTTP: graphqlHTTPClient,
		graphqlURL:  graphqlEndpoint,
	}
}

// User fetches a user's public profile.
func (c *Client) User(ctx context.Context, username string) (model.Profile, error) {
	user, _, err := c.rest.Users.Get(ctx, username)
	if err != nil {
		return model.Profile{}, Classify(err)
	}
	return profileFromREST(user), nil
}

// ListRepositories lists all of a user's public repositories, sorted by
// last update, following pagination. Forks are included; callers that
// need them excluded filter on the Fork field.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]model.Repository, error) {
	opts := &gh.RepositoryListOptions{
		Sort: "updated",
		Type: "owner",
		ListOptions: gh.ListOptions{
			PerPage: constants.ReposPerPage,
		},
	}

	var repos []model.Repository

	for {
		page, resp, err := c.rest.Repositories.List(ctx, username, opts)
		if err != nil {
			return nil, Classify(err)
		}

		for _, r := range page {
			repos = append(repos, repoFromREST(r, username))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	log.Debug("listed repositories", "username", username, "count", len(repos))
	return repos, nil
}

// PinnedRepositories fetches the repositories pinned on a user's profile
// via GraphQL. An empty result means the user has nothing pinned; the
// caller decides what to substitute.
func (c *Client) PinnedRepositories(ctx context.Context, username string) ([]model.Repository, error) {
	var data pinnedData
	err := c.executeGraphQL(ctx, pinnedReposQuery, map[string]any{
		"username": username,
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, newError(KindNotFound, fmt.Errorf("user %q not found", username))
	}

	repos := make([]model.Repository, 0, len(data.User.PinnedItems.Nodes))
	for _, node := range data.User.PinnedItems.Nodes {
		repos = append(repos, repoFromPinnedNode(node))
	}

	log.Debug("fetched pinned repositories", "username", username, "count", len(repos))
	return repos, nil
}

// Calendar is a user's contribution calendar for one year.
type Calendar struct {
	TotalContributions int          `json:"totalContributions"`
	Days               []streak.Day `json:"days"`
	Years              []int        `json:"years"`
}

// ContributionCalendar fetches daily contribution counts for the current
// year, from January 1 through today.
func (c *Client) ContributionCalendar(ctx context.Context, username string) (Calendar, error) {
	from := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var data contributionsData
	err := c.executeGraphQL(ctx, contributionsQuery, map[string]any{
		"username": username,
		"from":     from.Format(time.RFC3339),
	}, &data)
	if err != nil {
		return Calendar{}, err
	}
	if data.User == nil {
		return Calendar{}, newError(KindNotFound, fmt.Errorf("user %q not found", username))
	}

	collection := data.User.ContributionsCollection
	cal := Calendar{
		TotalContributions: collection.ContributionCalendar.TotalContributions,
		Years:              collection.ContributionYears,
	}
	for _, week := range collection.ContributionCalendar.Weeks {
		for _, d := range week.ContributionDays {
			cal.Days = append(cal.Days, streak.Day{Date: d.Date, Count: d.ContributionCount})
		}
	}

	return cal, nil
}

// RateLimits fetches the current GitHub API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*gh.RateLimits, error) {
	limits, _, err := c.rest.RateLimit.Get(ctx)
	if err != nil {
		return nil, Classify(err)
	}
	return limits, nil
}
