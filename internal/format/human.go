package format

import (
	"fmt"
	"time"
)

// FormatAge renders a duration the way the repo table's "updated"
// column shows it: "now", "5m", "2h", "3d", "2w", "3mo".
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}

	days := int(d.Hours() / 24)
	switch {
	case days < 7:
		return fmt.Sprintf("%dd", days)
	case days < 30:
		return fmt.Sprintf("%dw", days/7)
	default:
		return fmt.Sprintf("%dmo", days/30)
	}
}

// FormatCount renders a star or fork count the way GitHub does:
// exact below 1000, then "1.2k" with one decimal, dropping the decimal
// at 10k and switching to "m" at a million.
func FormatCount(n int) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 10_000:
		return trimZero(fmt.Sprintf("%.1fk", float64(n)/1000))
	case n < 1_000_000:
		return fmt.Sprintf("%dk", n/1000)
	default:
		return trimZero(fmt.Sprintf("%.1fm", float64(n)/1_000_000))
	}
}

// trimZero turns "2.0k" into "2k".
func trimZero(s string) string {
	if len(s) >= 3 && s[len(s)-3] == '.' && s[len(s)-2] == '0' {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}
