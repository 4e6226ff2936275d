// Package recency turns the API's compact last-seen timestamps into coarse
// relative labels such as "3 days ago".
package recency

import (
	"fmt"
	"time"
)

const (
	Unknown = "Unknown"

	// only the date and time of day are significant, fractions and zone are ignored
	layout    = "20060102T150405"
	layoutLen = len(layout)

	day = 24 * time.Hour
)

// Label formats the time elapsed between lastSeen and now. It never fails:
// anything that cannot be parsed is reported as Unknown.
func Label(lastSeen string, now time.Time) string {
	if len(lastSeen) < layoutLen {
		return Unknown
	}
	seen, err := time.Parse(layout, lastSeen[:layoutLen])
	if err != nil {
		return Unknown
	}

	elapsed := now.UTC().Sub(seen)
	if elapsed < 0 {
		elapsed = 0
	}

	days := int(elapsed / day)
	switch {
	case days >= 30:
		return plural(days/30, "month")
	case days >= 7:
		return plural(days/7, "week")
	case days >= 1:
		return plural(days, "day")
	}

	if hours := int(elapsed / time.Hour); hours > 0 {
		return plural(hours, "hour")
	}
	return plural(int(elapsed/time.Minute), "min")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
