package api

// Attachment is a piece of media known to the server. URL stays empty
// until the server has finished processing the upload.
type Attachment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	PreviewURL  string `json:"preview_url"`
	Description string `json:"description"`
}

// Status is the subset of a created status the CLI cares about. A
// scheduled status carries ScheduledAt instead of a URL.
type Status struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ScheduledAt string `json:"scheduled_at"`
}

// StatusParams is the full field set for one status-creation call.
type StatusParams struct {
	Text        string
	Visibility  string
	MediaIDs    []string
	Sensitive   bool
	SpoilerText string
	InReplyToID string
	Language    string
	ScheduledAt string
	ContentType string

	PollOptions    []string
	PollExpiresIn  int
	PollMultiple   bool
	PollHideTotals bool
}

// StatusResponse pairs the parsed status with the raw response body, so
// --json output can reproduce the server's answer verbatim.
type StatusResponse struct {
	Raw    []byte
	Status Status
}
