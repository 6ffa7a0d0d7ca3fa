package streak

import (
	"testing"
	"time"
)

func day(date string, count int) Day {
	return Day{Date: date, Count: count}
}

func at(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateEmptyInput(t *testing.T) {
	got := calculateAt(nil, at("2025-01-03"))
	if got.Current != 0 || got.Longest != 0 {
		t.Errorf("expected {0 0} for empty input, got %+v", got)
	}
}

func TestCalculateBasicStreak(t *testing.T) {
	days := []Day{
		day("2025-01-03", 2),
		day("2025-01-02", 1),
		day("2025-01-01", 0),
	}

	got := calculateAt(days, at("2025-01-03"))
	if got.Current != 2 {
		t.Errorf("expected current streak 2, got %d", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("expected longest streak 2, got %d", got.Longest)
	}
}

func TestCalculateTodayWithZeroContinues(t *testing.T) {
	// Today has no contributions yet; it still counts toward the current
	// streak but ends the walk.
	days := []Day{
		day("2025-01-03", 0),
		day("2025-01-02", 3),
		day("2025-01-01", 1),
	}

	got := calculateAt(days, at("2025-01-03"))
	if got.Current != 1 {
		t.Errorf("expected current streak 1, got %d", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("expected longest streak 2, got %d", got.Longest)
	}
}

func TestCalculateBrokenStreak(t *testing.T) {
	days := []Day{
		day("2025-01-05", 0),
		day("2025-01-04", 0),
		day("2025-01-03", 4),
		day("2025-01-02", 2),
		day("2025-01-01", 1),
	}

	// Most recent day is not today and has zero contributions.
	got := calculateAt(days, at("2025-01-06"))
	if got.Current != 0 {
		t.Errorf("expected current streak 0, got %d", got.Current)
	}
	if got.Longest != 3 {
		t.Errorf("expected longest streak 3, got %d", got.Longest)
	}
}

func TestCalculateLongestIndependentOfCurrent(t *testing.T) {
	days := []Day{
		day("2025-01-10", 1),
		day("2025-01-09", 0),
		day("2025-01-08", 1),
		day("2025-01-07", 1),
		day("2025-01-06", 1),
		day("2025-01-05", 1),
		day("2025-01-04", 0),
	}

	got := calculateAt(days, at("2025-01-10"))
	if got.Current != 1 {
		t.Errorf("expected current streak 1, got %d", got.Current)
	}
	if got.Longest != 4 {
		t.Errorf("expected longest streak 4, got %d", got.Longest)
	}
}

func TestCalculateUnsortedInput(t *testing.T) {
	days := []Day{
		day("2025-01-01", 1),
		day("2025-01-03", 1),
		day("2025-01-02", 1),
	}

	got := calculateAt(days, at("2025-01-03"))
	if got.Current != 3 {
		t.Errorf("expected current streak 3, got %d", got.Current)
	}
	if got.Longest != 3 {
		t.Errorf("expected longest streak 3, got %d", got.Longest)
	}
}
