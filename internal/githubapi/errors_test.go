package githubapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v57/github"
)

func respErr(status int) *gh.ErrorResponse {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: status},
	}
}

func TestClassifyStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"forbidden", respErr(http.StatusForbidden), KindRateLimited},
		{"too many requests", respErr(http.StatusTooManyRequests), KindRateLimited},
		{"not found", respErr(http.StatusNotFound), KindNotFound},
		{"unauthorized", respErr(http.StatusUnauthorized), KindUnauthenticated},
		{"server error", respErr(http.StatusInternalServerError), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify(%v).Kind = %q, want %q", tt.err, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestClassifyNetworkError(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://api.github.com", Err: errors.New("connection refused")}

	got := Classify(err)
	if got.Kind != KindNetworkUnreachable {
		t.Errorf("expected network_unreachable, got %q", got.Kind)
	}
}

func TestClassifyRateLimitSentinel(t *testing.T) {
	got := Classify(fmt.Errorf("fetching user: %w", ErrRateLimited))
	if got.Kind != KindRateLimited {
		t.Errorf("expected rate_limited, got %q", got.Kind)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	inner := Classify(respErr(http.StatusNotFound))
	outer := Classify(fmt.Errorf("wrapped: %w", inner))
	if outer.Kind != KindNotFound {
		t.Errorf("expected not_found after rewrapping, got %q", outer.Kind)
	}
}

func TestClassifyUnknown(t *testing.T) {
	got := Classify(errors.New("something odd"))
	if got.Kind != KindUnknown {
		t.Errorf("expected unknown, got %q", got.Kind)
	}
}

func TestErrorMessagesAreHumanReadable(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRateLimited, "API rate limit exceeded. Please try again later."},
		{KindNotFound, "Resource not found. Please check the username."},
		{KindUnauthenticated, "Authentication failed. Please check your GitHub token."},
		{KindNetworkUnreachable, "GitHub is unreachable. Please check your network connection."},
		{KindUnknown, "An error occurred while fetching data from GitHub."},
	}

	for _, tt := range tests {
		err := newError(tt.kind, errors.New("raw transport detail"))
		if err.Error() != tt.want {
			t.Errorf("message for %q = %q, want %q", tt.kind, err.Error(), tt.want)
		}
	}
}

func TestRetryable(t *testing.T) {
	netErr := &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: errors.New("no route to host")}
	if Retryable(netErr) {
		t.Error("expected network errors to be non-retryable")
	}

	if !Retryable(respErr(http.StatusForbidden)) {
		t.Error("expected rate limit errors to be retryable")
	}
	if !Retryable(errors.New("flaky")) {
		t.Error("expected unknown errors to be retryable")
	}
}
