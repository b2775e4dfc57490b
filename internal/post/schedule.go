package post

import "time"

// ResolveScheduledAt computes the scheduled_at value for the request. An
// absolute timestamp wins over a relative offset; with neither set the
// status posts immediately and the result is empty. The relative form is
// now(UTC) plus the offset, truncated to whole seconds.
func ResolveScheduledAt(scheduledAt string, scheduledIn int, now func() time.Time) string {
	if scheduledAt != "" {
		return scheduledAt
	}

	if scheduledIn > 0 {
		at := now().UTC().Add(time.Duration(scheduledIn) * time.Second)
		return at.Truncate(time.Second).Format(time.RFC3339)
	}

	return ""
}
