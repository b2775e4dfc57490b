package api

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error describes a non-2xx answer from the server.
type Error struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s (HTTP %d)", e.Method, e.URL, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

func newError(resp *resty.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode(),
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
	}

	// The server reports failures as {"error": "..."}.
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Error
	}

	return apiErr
}
