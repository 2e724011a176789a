// ABOUTME: Duration helpers for video lengths shown as clock strings
// ABOUTME: Converts "MM:SS" and "HH:MM:SS" into seconds and back

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ToSeconds converts "SS", "MM:SS" or "HH:MM:SS" into seconds.
// Unreadable input yields 0.
func ToSeconds(clock string) int {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0
	}

	total := 0
	parts := strings.Split(clock, ":")
	if len(parts) > 3 {
		return 0
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatSeconds converts seconds to HH:MM:SS or MM:SS format
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
