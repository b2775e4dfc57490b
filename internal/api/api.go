// Package api is the REST client for a Mastodon-compatible server. It
// covers exactly the calls the post command needs: media upload, media
// re-fetch, and status creation.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dlax/toot/internal/logutil"
)

const requestTimeout = 30 * time.Second

// Config contains the settings needed to reach the server.
type Config struct {
	Server      string
	AccessToken string
}

// Client talks to one server on behalf of one account.
type Client struct {
	rest *resty.Client
}

// New constructs a client for the given server and token.
func New(cfg Config) *Client {
	rest := resty.New().
		SetBaseURL(cfg.Server).
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("User-Agent", "toot/1")

	return &Client{rest: rest}
}

// UploadMedia sends one file to the media endpoint. Description and
// thumbnail are optional. The server processes uploads asynchronously,
// so the returned attachment may not carry a URL yet.
func (c *Client) UploadMedia(ctx context.Context, file io.Reader, filename, description string, thumbnail io.Reader, thumbnailName string) (*Attachment, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetFileReader("file", filename, file)
	if description != "" {
		req.SetFormData(map[string]string{"description": description})
	}
	if thumbnail != nil {
		req.SetFileReader("thumbnail", thumbnailName, thumbnail)
	}

	var attachment Attachment
	resp, err := req.SetResult(&attachment).Post("/api/v2/media")
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upload media: %w", newError(resp))
	}

	logutil.Debugf("uploaded media: id=%s type=%s", attachment.ID, attachment.Type)
	return &attachment, nil
}

// GetMedia re-fetches an attachment by id. Used to poll for the URL that
// appears once server-side processing finishes.
func (c *Client) GetMedia(ctx context.Context, id string) (*Attachment, error) {
	var attachment Attachment
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&attachment).
		SetPathParam("id", id).
		Get("/api/v1/media/{id}")
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get media: %w", newError(resp))
	}

	return &attachment, nil
}

// PostStatus creates a new status in a single call.
func (c *Client) PostStatus(ctx context.Context, params StatusParams) (*StatusResponse, error) {
	form := url.Values{}
	form.Set("status", params.Text)
	if params.Visibility != "" {
		form.Set("visibility", params.Visibility)
	}
	for _, id := range params.MediaIDs {
		form.Add("media_ids[]", id)
	}
	if params.Sensitive {
		form.Set("sensitive", "true")
	}
	if params.SpoilerText != "" {
		form.Set("spoiler_text", params.SpoilerText)
	}
	if params.InReplyToID != "" {
		form.Set("in_reply_to_id", params.InReplyToID)
	}
	if params.Language != "" {
		form.Set("language", params.Language)
	}
	if params.ScheduledAt != "" {
		form.Set("scheduled_at", params.ScheduledAt)
	}
	if params.ContentType != "" {
		form.Set("content_type", params.ContentType)
	}
	if len(params.PollOptions) > 0 {
		for _, option := range params.PollOptions {
			form.Add("poll[options][]", option)
		}
		form.Set("poll[expires_in]", strconv.Itoa(params.PollExpiresIn))
		if params.PollMultiple {
			form.Set("poll[multiple]", "true")
		}
		if params.PollHideTotals {
			form.Set("poll[hide_totals]", "true")
		}
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post("/api/v1/statuses")
	if err != nil {
		return nil, fmt.Errorf("post status: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("post status: %w", newError(resp))
	}

	result := &StatusResponse{Raw: append([]byte(nil), resp.Body()...)}
	if err := json.Unmarshal(result.Raw, &result.Status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}

	logutil.Debugf("status created: id=%s scheduled=%t", result.Status.ID, result.Status.ScheduledAt != "")
	return result, nil
}
