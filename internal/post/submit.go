package post

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dlax/toot/internal/api"
)

const scheduledTimeFormat = "2006-01-02 15:04:05-0700"

// StatusAPI is the slice of the REST client the submitter needs.
type StatusAPI interface {
	PostStatus(ctx context.Context, params api.StatusParams) (*api.StatusResponse, error)
}

// Submit creates the status and prints the outcome. A post with neither
// text nor media is rejected before any network call.
func Submit(ctx context.Context, client StatusAPI, params api.StatusParams, jsonOut bool, out io.Writer) error {
	if strings.TrimSpace(params.Text) == "" && len(params.MediaIDs) == 0 {
		return UsageError{Reason: "you must specify either text or media to post"}
	}

	resp, err := client.PostStatus(ctx, params)
	if err != nil {
		return err
	}

	if jsonOut {
		fmt.Fprintln(out, string(resp.Raw))
		return nil
	}

	if resp.Status.ScheduledAt != "" {
		at, err := time.Parse(time.RFC3339, resp.Status.ScheduledAt)
		if err != nil {
			return fmt.Errorf("parse scheduled time: %w", err)
		}
		fmt.Fprintf(out, "Toot scheduled for: %s\n", at.Format(scheduledTimeFormat))
		return nil
	}

	fmt.Fprintf(out, "Toot posted: %s\n", resp.Status.URL)
	return nil
}
