package githubapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v57/github"
)

// Kind classifies a failed GitHub call into the small set of conditions
// the rest of the application cares about.
type Kind string

const (
	KindRateLimited        Kind = "rate_limited"
	KindNotFound           Kind = "not_found"
	KindUnauthenticated    Kind = "unauthenticated"
	KindNetworkUnreachable Kind = "network_unreachable"
	KindUnknown            Kind = "unknown"
)

// message returns the user-facing message for a kind. Consumers see these
// strings, never raw transport errors.
func (k Kind) message() string {
	switch k {
	case KindRateLimited:
		return "API rate limit exceeded. Please try again later."
	case KindNotFound:
		return "Resource not found. Please check the username."
	case KindUnauthenticated:
		return "Authentication failed. Please check your GitHub token."
	case KindNetworkUnreachable:
		return "GitHub is unreachable. Please check your network connection."
	default:
		return "An error occurred while fetching data from GitHub."
	}
}

// Error is a classified GitHub API failure.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.Kind.message()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// Classify maps any error from a GitHub call onto the taxonomy. It is
// idempotent: an already-classified error is returned as is.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, ErrRateLimited) {
		return newError(KindRateLimited, err)
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return newError(KindRateLimited, err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return newError(KindRateLimited, err)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return classifyStatus(respErr.Response.StatusCode, err)
	}

	if isNetworkError(err) {
		return newError(KindNetworkUnreachable, err)
	}

	return newError(KindUnknown, err)
}

// classifyStatus maps an HTTP status code onto the taxonomy.
func classifyStatus(status int, cause error) *Error {
	switch status {
	case http.StatusForbidden, http.StatusTooManyRequests:
		return newError(KindRateLimited, cause)
	case http.StatusNotFound:
		return newError(KindNotFound, cause)
	case http.StatusUnauthorized:
		return newError(KindUnauthenticated, cause)
	default:
		return newError(KindUnknown, cause)
	}
}

// isNetworkError reports whether err is a pure connectivity failure, as
// opposed to a response GitHub actually sent.
func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// Retryable reports whether a failed call is worth retrying. Connectivity
// failures are not: retrying a dead connection only burns the backoff
// window, and the cache fallback handles them better.
func Retryable(err error) bool {
	return Classify(err).Kind != KindNetworkUnreachable
}
