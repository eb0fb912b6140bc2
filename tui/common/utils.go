package common

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CategoryLabel returns the display name of a category; empty means all.
func CategoryLabel(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "All"
	}
	r := []rune(category)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// TimeLeft describes the time until deadline, e.g. "3d left", "2h left" or
// "ended".
func TimeLeft(deadline, now time.Time) string {
	if deadline.IsZero() {
		return "no deadline"
	}
	d := deadline.Sub(now)
	switch {
	case d <= 0:
		return "ended"
	case d < time.Hour:
		return fmt.Sprintf("%dm left", max(int(d.Minutes()), 1))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh left", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd left", int(d.Hours()/24))
	}
}

// CompactCount renders counters like 999, 1.2k, 3.4m.
func CompactCount(n int) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1000)) + "k"
	default:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "m"
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
