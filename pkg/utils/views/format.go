// ABOUTME: View count formatting for display
// ABOUTME: Renders counts as 950, 12.3K, 4.5M or 1.2B

package views

import (
	"strconv"
	"strings"
)

// Compact renders a view count with a K/M/B suffix and one decimal at most
func Compact(n int64) string {
	switch {
	case n < 0:
		return "0"
	case n < 1_000:
		return strconv.FormatInt(n, 10)
	case n < 1_000_000:
		return scaled(n, 1_000, "K")
	case n < 1_000_000_000:
		return scaled(n, 1_000_000, "M")
	default:
		return scaled(n, 1_000_000_000, "B")
	}
}

func scaled(n, unit int64, suffix string) string {
	// Truncated, so 999_999 renders as 999.9K
	tenths := n * 10 / unit
	s := strconv.FormatInt(tenths/10, 10) + "." + strconv.FormatInt(tenths%10, 10)
	return strings.TrimSuffix(s, ".0") + suffix
}
