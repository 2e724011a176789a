// ABOUTME: Relative time resolution for search results such as "2 weeks ago"
// ABOUTME: Providers round these values down, so resolved instants are approximate

package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeTimePattern = regexp.MustCompile(`(?i)(\d+)\s*(seconds?|secs?|minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\s+ago`)

// ResolveRelativeTime converts "<n> <unit> ago" into an instant relative to now.
// The second return value is false when the string carries no usable time.
func ResolveRelativeTime(text string, now time.Time) (time.Time, bool) {
	match := relativeTimePattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, false
	}

	unit := strings.ToLower(match[2])
	switch {
	case strings.HasPrefix(unit, "sec"):
		return now.Add(-time.Duration(n) * time.Second), true
	case strings.HasPrefix(unit, "min"):
		return now.Add(-time.Duration(n) * time.Minute), true
	case strings.HasPrefix(unit, "h"):
		return now.Add(-time.Duration(n) * time.Hour), true
	case strings.HasPrefix(unit, "day"):
		return now.AddDate(0, 0, -n), true
	case strings.HasPrefix(unit, "week"):
		return now.AddDate(0, 0, -7*n), true
	case strings.HasPrefix(unit, "month"):
		return now.AddDate(0, -n, 0), true
	case strings.HasPrefix(unit, "year"):
		return now.AddDate(-n, 0, 0), true
	}

	return time.Time{}, false
}
