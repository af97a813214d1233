package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The snooze grammar deliberately stops at days. Month and year units
// are excluded so "m" is unambiguously minutes.
var offsetPattern = regexp.MustCompile(`^(\d+)\s*(m|min|minute|minutes|h|hr|hour|hours|d|day|days)$`)

// ParseOffset converts a compact duration token ("2h", "30m", "3d",
// "2 hours") to a duration. Returns ok=false for an empty token, an
// unknown unit, or a non-positive magnitude; callers turn that into a
// user-facing message rather than an error.
func ParseOffset(token string) (time.Duration, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}

	matches := offsetPattern.FindStringSubmatch(token)
	if matches == nil {
		return 0, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount <= 0 {
		return 0, false
	}

	switch matches[2][0] {
	case 'm':
		return time.Duration(amount) * time.Minute, true
	case 'h':
		return time.Duration(amount) * time.Hour, true
	case 'd':
		return time.Duration(amount) * 24 * time.Hour, true
	}

	return 0, false
}
