package query

import "time"

// RetryPolicy controls how a failed fetch is retried. Delays grow
// exponentially from BaseDelay and are capped at MaxDelay.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// Retryable filters errors worth retrying. A nil Retryable retries
	// every error.
	Retryable func(error) bool
}

// ShouldRetry reports whether another attempt should follow the given
// failure. attempt is zero-based: 0 means the initial attempt just failed.
func (p RetryPolicy) ShouldRetry(attempt int, err error) bool {
	if attempt >= p.MaxRetries {
		return false
	}
	if p.Retryable != nil && !p.Retryable(err) {
		return false
	}
	return true
}

// Delay returns how long to wait before the retry following attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if p.MaxDelay > 0 && (d > p.MaxDelay || d <= 0) {
		d = p.MaxDelay
	}
	return d
}
