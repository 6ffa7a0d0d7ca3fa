package githubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testClient points a client at a GraphQL stub server.
func testClient(srv *httptest.Server) *Client {
	return &Client{
		token:       "test-token",
		graphqlHTTP: srv.Client(),
		graphqlURL:  srv.URL,
	}
}

func graphqlStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestPinnedRepositories(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Variables["username"] != "mayen007" {
			t.Errorf("expected username variable, got %v", req.Variables)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer auth header, got %q", got)
		}

		_, _ = w.Write([]byte(`{
			"data": {
				"user": {
					"pinnedItems": {
						"nodes": [
							{
								"id": "R_1",
								"name": "portfolio",
								"description": "My site",
								"url": "https://github.com/mayen007/portfolio",
								"stargazerCount": 10,
								"forkCount": 2,
								"primaryLanguage": {"name": "JavaScript", "color": "#f1e05a"},
								"languages": {"nodes": [{"name": "JavaScript", "color": "#f1e05a"}]},
								"repositoryTopics": {"nodes": [{"topic": {"name": "react"}}]}
							}
						]
					}
				}
			}
		}`))
	})

	repos, err := testClient(srv).PinnedRepositories(context.Background(), "mayen007")
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 1 {
		t.Fatalf("expected 1 repo, got %d", len(repos))
	}
	r := repos[0]
	if r.Name != "portfolio" || r.Stars != 10 {
		t.Errorf("unexpected repo %+v", r)
	}
	if r.PrimaryLanguage == nil || r.PrimaryLanguage.Color != "#f1e05a" {
		t.Errorf("expected primary language color, got %+v", r.PrimaryLanguage)
	}
	if len(r.Topics) != 1 || r.Topics[0] != "react" {
		t.Errorf("expected topics [react], got %v", r.Topics)
	}
}

func TestPinnedRepositoriesEmpty(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"user": {"pinnedItems": {"nodes": []}}}}`))
	})

	repos, err := testClient(srv).PinnedRepositories(context.Background(), "mayen007")
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 0 {
		t.Errorf("expected no repos, got %d", len(repos))
	}
}

func TestPinnedRepositoriesUnknownUser(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"user": null}}`))
	})

	_, err := testClient(srv).PinnedRepositories(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if Classify(err).Kind != KindNotFound {
		t.Errorf("expected not_found, got %q", Classify(err).Kind)
	}
}

func TestExecuteGraphQLErrorType(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "Could not resolve to a User", "type": "NOT_FOUND"}]}`))
	})

	_, err := testClient(srv).PinnedRepositories(context.Background(), "nobody")
	if Classify(err).Kind != KindNotFound {
		t.Errorf("expected not_found from GraphQL error type, got %v", err)
	}
}

func TestExecuteGraphQLUnauthorized(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
	})

	_, err := testClient(srv).PinnedRepositories(context.Background(), "mayen007")
	if Classify(err).Kind != KindUnauthenticated {
		t.Errorf("expected unauthenticated, got %v", err)
	}
}

func TestContributionCalendar(t *testing.T) {
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if _, ok := req.Variables["from"]; !ok {
			t.Error("expected from variable for calendar query")
		}

		_, _ = w.Write([]byte(`{
			"data": {
				"user": {
					"contributionsCollection": {
						"contributionCalendar": {
							"totalContributions": 345,
							"weeks": [
								{"contributionDays": [
									{"contributionCount": 2, "date": "2025-01-01"},
									{"contributionCount": 0, "date": "2025-01-02"}
								]},
								{"contributionDays": [
									{"contributionCount": 5, "date": "2025-01-03"}
								]}
							]
						},
						"contributionYears": [2025, 2024, 2023]
					}
				}
			}
		}`))
	})

	cal, err := testClient(srv).ContributionCalendar(context.Background(), "mayen007")
	if err != nil {
		t.Fatal(err)
	}
	if cal.TotalContributions != 345 {
		t.Errorf("expected 345 contributions, got %d", cal.TotalContributions)
	}
	if len(cal.Days) != 3 {
		t.Errorf("expected 3 days flattened from weeks, got %d", len(cal.Days))
	}
	if cal.Days[2].Date != "2025-01-03" || cal.Days[2].Count != 5 {
		t.Errorf("unexpected last day %+v", cal.Days[2])
	}
	if len(cal.Years) != 3 || cal.Years[0] != 2025 {
		t.Errorf("unexpected years %v", cal.Years)
	}
}

func TestRateLimitTransportShortCircuits(t *testing.T) {
	defer globalRateLimitState.SetLimited(false, time.Time{})

	calls := 0
	srv := graphqlStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"data": {"user": null}}`))
	})

	c := testClient(srv)
	c.graphqlHTTP = &http.Client{Transport: &rateLimitTransport{base: srv.Client().Transport}}

	globalRateLimitState.SetLimited(true, time.Now().Add(time.Hour))

	_, err := c.PinnedRepositories(context.Background(), "mayen007")
	if Classify(err).Kind != KindRateLimited {
		t.Errorf("expected rate_limited while state is limited, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected request to be short-circuited, server saw %d calls", calls)
	}
}
