package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mayen007/gitfolio/internal/log"
)

const graphqlEndpoint = "https://api.github.com/graphql"

// graphqlHTTPClient is a configured HTTP client for GraphQL requests with
// connection pooling and keep-alive for reduced latency.
var graphqlHTTPClient = &http.Client{
	Transport: &rateLimitTransport{
		base: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	},
	Timeout: 30 * time.Second,
}

// graphqlRequest represents a GraphQL request payload.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse represents a generic GraphQL response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// pinnedReposQuery fetches the up-to-6 repositories pinned on a user's
// profile, with nested language and topic lists.
const pinnedReposQuery = `
query($username: String!) {
  user(login: $username) {
    pinnedItems(first: 6, types: REPOSITORY) {
      nodes {
        ... on Repository {
          id
          name
          description
          url
          homepageUrl
          stargazerCount
          forkCount
          createdAt
          updatedAt
          primaryLanguage {
            name
            color
          }
          languages(first: 5, orderBy: {field: SIZE, direction: DESC}) {
            nodes {
              name
              color
            }
          }
          openGraphImageUrl
          repositoryTopics(first: 10) {
            nodes {
              topic {
                name
              }
            }
          }
        }
      }
    }
  }
}`

// contributionsQuery fetches the daily contribution calendar from a given
// start date, plus the list of years with contribution history.
const contributionsQuery = `
query($username: String!, $from: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
      contributionYears
    }
  }
}`

// executeGraphQL executes a GraphQL query against GitHub's API and decodes
// the data payload into out. Failures come back classified.
func (c *Client) executeGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	reqBody := graphqlRequest{Query: query, Variables: variables}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create GraphQL request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.graphqlHTTP.Do(req)
	if err != nil {
		return Classify(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classify(err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Debug("GraphQL request failed", "status", resp.StatusCode, "body", string(respBody))
		return classifyStatus(resp.StatusCode, fmt.Errorf("GraphQL request failed with status %d", resp.StatusCode))
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return newError(KindUnknown, fmt.Errorf("failed to parse GraphQL response: %w", err))
	}

	if len(gqlResp.Errors) > 0 {
		for _, e := range gqlResp.Errors {
			log.Debug("GraphQL error", "message", e.Message, "type", e.Type)
		}
		first := gqlResp.Errors[0]
		if first.Type == "NOT_FOUND" {
			return newError(KindNotFound, fmt.Errorf("GraphQL: %s", first.Message))
		}
		return newError(KindUnknown, fmt.Errorf("GraphQL: %s", first.Message))
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return newError(KindUnknown, fmt.Errorf("failed to decode GraphQL data: %w", err))
	}

	return nil
}

// pinnedNode mirrors the GraphQL pinned item shape.
type pinnedNode struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	HomepageURL     string    `json:"homepageUrl"`
	StargazerCount  int       `json:"stargazerCount"`
	ForkCount       int       `json:"forkCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	PrimaryLanguage *gqlLang  `json:"primaryLanguage"`
	Languages       struct {
		Nodes []gqlLang `json:"nodes"`
	} `json:"languages"`
	OpenGraphImageURL string `json:"openGraphImageUrl"`
	RepositoryTopics  struct {
		Nodes []struct {
			Topic struct {
				Name string `json:"name"`
			} `json:"topic"`
		} `json:"nodes"`
	} `json:"repositoryTopics"`
}

type gqlLang struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// pinnedData is the envelope for the pinned items query.
type pinnedData struct {
	User *struct {
		PinnedItems struct {
			Nodes []pinnedNode `json:"nodes"`
		} `json:"pinnedItems"`
	} `json:"user"`
}

// contributionsData is the envelope for the contributions query.
type contributionsData struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int `json:"totalContributions"`
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount int    `json:"contributionCount"`
						Date              string `json:"date"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
			ContributionYears []int `json:"contributionYears"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}
