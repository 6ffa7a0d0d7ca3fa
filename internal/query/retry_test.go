package query

import (
	"errors"
	"testing"
	"time"
)

func TestShouldRetry(t *testing.T) {
	p := RetryPolicy{MaxRetries: 2}
	err := errors.New("boom")

	if !p.ShouldRetry(0, err) {
		t.Error("expected retry after first failure")
	}
	if !p.ShouldRetry(1, err) {
		t.Error("expected retry after second failure")
	}
	if p.ShouldRetry(2, err) {
		t.Error("expected no retry once budget is spent")
	}
}

func TestShouldRetryFilter(t *testing.T) {
	fatal := errors.New("fatal")
	p := RetryPolicy{
		MaxRetries: 2,
		Retryable:  func(err error) bool { return !errors.Is(err, fatal) },
	}

	if p.ShouldRetry(0, fatal) {
		t.Error("expected filter to veto retry")
	}
	if !p.ShouldRetry(0, errors.New("transient")) {
		t.Error("expected transient error to be retried")
	}
}

func TestDelay(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 10 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 10 * time.Second},
		{10, 10 * time.Second},
	}
	for _, tt := range tests {
		if got := p.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %s, want %s", tt.attempt, got, tt.want)
		}
	}
}

func TestDelayOverflow(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 30 * time.Second}
	// A shift this large wraps around; the cap must still hold.
	if got := p.Delay(62); got != 30*time.Second {
		t.Errorf("Delay(62) = %s, want cap", got)
	}
}
