package post

import (
	"fmt"
	"time"
)

// UsageError reports an invalid invocation. No network call has been
// made when one is returned.
type UsageError struct {
	Reason string
}

func (e UsageError) Error() string { return e.Reason }

// TimeoutError reports that uploaded media was not processed within the
// shared batch deadline.
type TimeoutError struct {
	Timeout time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("media not processed by server after %d seconds, aborting", int(e.Timeout.Seconds()))
}
