package post

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinScheduleLead is the shortest relative scheduling offset the server
// accepts.
const MinScheduleLead = 5 * time.Minute

// Visibilities lists the accepted values for the visibility option.
var Visibilities = []string{"public", "unlisted", "private", "direct"}

var durationRe = regexp.MustCompile(
	`^(?:(\d+)\s*(?:days?|d))?\s*` +
		`(?:(\d+)\s*(?:hours?|h))?\s*` +
		`(?:(\d+)\s*(?:minutes?|m))?\s*` +
		`(?:(\d+)\s*(?:seconds?|s))?$`)

// ParseDuration converts a duration like "1 day", "2 hours 30 minutes" or
// "90m" into whole seconds.
func ParseDuration(value string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return 0, UsageError{Reason: fmt.Sprintf("invalid duration %q", value)}
	}

	match := durationRe.FindStringSubmatch(normalized)
	if match == nil {
		return 0, UsageError{Reason: fmt.Sprintf("invalid duration %q", value)}
	}

	units := []int{86400, 3600, 60, 1}
	seconds := 0
	for i, unit := range units {
		if match[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			return 0, UsageError{Reason: fmt.Sprintf("invalid duration %q", value)}
		}
		seconds += n * unit
	}

	if seconds == 0 {
		return 0, UsageError{Reason: fmt.Sprintf("invalid duration %q", value)}
	}
	return seconds, nil
}

// ValidateVisibility checks the visibility option against the accepted
// set and returns it normalized.
func ValidateVisibility(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, v := range Visibilities {
		if normalized == v {
			return normalized, nil
		}
	}
	return "", UsageError{Reason: fmt.Sprintf("invalid visibility %q, expected one of: %s", value, strings.Join(Visibilities, ", "))}
}

// ValidateLanguage checks for a two-letter ISO 639-1 code and returns it
// lowercased.
func ValidateLanguage(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) != 2 || normalized[0] < 'a' || normalized[0] > 'z' || normalized[1] < 'a' || normalized[1] > 'z' {
		return "", UsageError{Reason: fmt.Sprintf("invalid language %q, expected a two-letter ISO 639-1 code", value)}
	}
	return normalized, nil
}
