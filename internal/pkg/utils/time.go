package utils

import (
	"fmt"
	"time"
)

// TimeAgo renders a wallet-log timestamp as a coarse human string
// relative to now, newest entries reading "just now".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case diff < 30*24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / 24 / 30)
		return fmt.Sprintf("%d month%s ago", months, plural(months))
	default:
		years := int(diff.Hours() / 24 / 365)
		return fmt.Sprintf("%d year%s ago", years, plural(years))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
