package post

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dlax/toot/internal/api"
	"github.com/dlax/toot/internal/logutil"
)

const (
	// MaxAttachments is the most files one status may carry.
	MaxAttachments = 4

	processTimeout = 60 * time.Second
	pollInterval   = time.Second
)

// MediaAPI is the slice of the REST client the uploader needs.
type MediaAPI interface {
	UploadMedia(ctx context.Context, file io.Reader, filename, description string, thumbnail io.Reader, thumbnailName string) (*api.Attachment, error)
	GetMedia(ctx context.Context, id string) (*api.Attachment, error)
}

// Uploader pushes local files to the server and waits for processing to
// finish before the attachments are used in a status.
type Uploader struct {
	API MediaAPI
	Out io.Writer

	// Injected so tests can simulate elapsed time without real delays.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// NewUploader builds an uploader backed by the real clock.
func NewUploader(client MediaAPI, out io.Writer) *Uploader {
	return &Uploader{API: client, Out: out, Now: time.Now, Sleep: time.Sleep}
}

// UploadAll uploads every file in order, pairing descriptions and
// thumbnails by position, and returns the attachment ids once all media
// is processed. Missing description or thumbnail entries are absent, not
// an error.
func (u *Uploader) UploadAll(ctx context.Context, files, descriptions, thumbnails []string) ([]string, error) {
	if len(files) > MaxAttachments {
		return nil, UsageError{Reason: fmt.Sprintf("cannot attach more than %d files", MaxAttachments)}
	}

	uploaded := make([]*api.Attachment, 0, len(files))
	for i, path := range files {
		var description string
		if i < len(descriptions) {
			description = strings.TrimSpace(descriptions[i])
		}
		var thumbnail string
		if i < len(thumbnails) {
			thumbnail = thumbnails[i]
		}

		attachment, err := u.uploadOne(ctx, path, description, thumbnail)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, attachment)
	}

	if err := u.waitProcessed(ctx, uploaded); err != nil {
		return nil, err
	}

	ids := make([]string, len(uploaded))
	for i, attachment := range uploaded {
		ids[i] = attachment.ID
	}
	return ids, nil
}

func (u *Uploader) uploadOne(ctx context.Context, path, description, thumbnailPath string) (*api.Attachment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media: %w", err)
	}
	defer file.Close()

	var thumbnail io.Reader
	var thumbnailName string
	if thumbnailPath != "" {
		thumb, err := os.Open(thumbnailPath)
		if err != nil {
			return nil, fmt.Errorf("open thumbnail: %w", err)
		}
		defer thumb.Close()
		thumbnail = thumb
		thumbnailName = filepath.Base(thumbnailPath)
	}

	fmt.Fprintf(u.Out, "Uploading media: %s\n", path)
	attachment, err := u.API.UploadMedia(ctx, file, filepath.Base(path), description, thumbnail, thumbnailName)
	if err != nil {
		return nil, err
	}

	logutil.Debugf("media uploaded: id=%s processed=%t", attachment.ID, attachment.URL != "")
	return attachment, nil
}

// waitProcessed blocks until every attachment reports a URL. The server
// transforms uploads asynchronously and an attachment is unusable until
// then. One deadline, captured before the first wait, bounds the whole
// batch; it is not reset between files.
func (u *Uploader) waitProcessed(ctx context.Context, uploaded []*api.Attachment) error {
	if allProcessed(uploaded) {
		return nil
	}

	start := u.Now()
	fmt.Fprintln(u.Out, "Waiting for media to finish processing...")
	for _, attachment := range uploaded {
		if err := u.waitOne(ctx, attachment, start); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uploader) waitOne(ctx context.Context, attachment *api.Attachment, start time.Time) error {
	if attachment.URL != "" {
		return nil
	}

	current, err := u.API.GetMedia(ctx, attachment.ID)
	if err != nil {
		return err
	}
	for current.URL == "" {
		u.Sleep(pollInterval)
		if u.Now().Sub(start) > processTimeout {
			return TimeoutError{Timeout: processTimeout}
		}
		current, err = u.API.GetMedia(ctx, attachment.ID)
		if err != nil {
			return err
		}
	}

	attachment.URL = current.URL
	return nil
}

func allProcessed(uploaded []*api.Attachment) bool {
	for _, attachment := range uploaded {
		if attachment.URL == "" {
			return false
		}
	}
	return true
}
