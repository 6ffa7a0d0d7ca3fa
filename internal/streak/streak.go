// Package streak computes contribution streaks from a GitHub
// contribution calendar.
package streak

import (
	"slices"
	"strings"
	"time"
)

// Day is a single day of the contribution calendar.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"contributionCount"`
}

// Streaks holds the current and longest runs of consecutive days with
// at least one contribution.
type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// Calculate computes streaks over the given days. The current streak walks
// back from the most recent day; today continues the streak even with zero
// contributions, since the day is still in progress.
func Calculate(days []Day) Streaks {
	return calculateAt(days, time.Now())
}

func calculateAt(days []Day, today time.Time) Streaks {
	if len(days) == 0 {
		return Streaks{}
	}

	// Most recent first. Dates are ISO 8601, so string order is date order.
	sorted := slices.Clone(days)
	slices.SortFunc(sorted, func(a, b Day) int {
		return strings.Compare(b.Date, a.Date)
	})

	todayStr := today.Format("2006-01-02")

	var s Streaks
	counting := true
	run := 0

	for _, d := range sorted {
		if counting {
			if d.Count > 0 || d.Date == todayStr {
				s.Current++
				if d.Count == 0 {
					counting = false
				}
			} else {
				counting = false
			}
		}

		if d.Count > 0 {
			run++
			if run > s.Longest {
				s.Longest = run
			}
		} else {
			run = 0
		}
	}

	return s
}
