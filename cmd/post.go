/*
Copyright © 2025 dlax

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dlax/toot/internal/api"
	"github.com/dlax/toot/internal/compose"
	"github.com/dlax/toot/internal/config"
	"github.com/dlax/toot/internal/logutil"
	"github.com/dlax/toot/internal/post"
)

var (
	mediaFlag          []string
	descriptionFlag    []string
	thumbnailFlag      []string
	visibilityFlag     string
	sensitiveFlag      bool
	spoilerTextFlag    string
	replyToFlag        string
	languageFlag       string
	editorFlag         string
	scheduledAtFlag    string
	scheduledInFlag    string
	contentTypeFlag    string
	pollOptionFlag     []string
	pollExpiresFlag    string
	pollMultipleFlag   bool
	pollHideTotalsFlag bool
	jsonFlag           bool
)

func newPostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post [TEXT]",
		Short: "Post a new status",
		Long: "Post a new status. The text comes from the argument, piped standard " +
			"input, an editor session, or an interactive prompt, in that order.",
		Args: cobra.MaximumNArgs(1),
		RunE: runPost,
		Example: `  toot post "hello world"
  toot post -m photo.jpg -d "A photo" --sensitive
  echo "hello" | toot post
  toot post -e vim --scheduled-in "30 minutes"`,
	}

	cmd.Flags().StringArrayVarP(&mediaFlag, "media", "m", nil, "Path to a media file to attach, repeatable (max 4)")
	cmd.Flags().StringArrayVarP(&descriptionFlag, "description", "d", nil, "Plain-text description of the media for accessibility, one per attachment")
	cmd.Flags().StringArrayVar(&thumbnailFlag, "thumbnail", nil, "Path to an image to serve as media thumbnail, one per attachment")
	cmd.Flags().StringVarP(&visibilityFlag, "visibility", "v", "public", "Post visibility (public, unlisted, private, direct)")
	cmd.Flags().BoolVarP(&sensitiveFlag, "sensitive", "s", false, "Mark status and attached media as sensitive")
	cmd.Flags().StringVarP(&spoilerTextFlag, "spoiler-text", "p", "", "Text shown as a warning before the actual content")
	cmd.Flags().StringVarP(&replyToFlag, "reply-to", "r", "", "ID of the status being replied to")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "ISO 639-1 language code of the status")
	cmd.Flags().StringVarP(&editorFlag, "editor", "e", "", "Editor command used to compose the status (bare -e uses $TOOT_EDITOR or $EDITOR)")
	cmd.Flags().Lookup("editor").NoOptDefVal = config.DefaultEditor()
	cmd.Flags().StringVar(&scheduledAtFlag, "scheduled-at", "", "ISO 8601 datetime at which to schedule the status, at least 5 minutes ahead")
	cmd.Flags().StringVar(&scheduledInFlag, "scheduled-in", "", `Schedule the status after a given amount of time, e.g. "30 minutes" or "1h" (min 5 minutes)`)
	cmd.Flags().StringVarP(&contentTypeFlag, "content-type", "t", "", "MIME type for the status text (not supported on all servers)")
	cmd.Flags().StringArrayVar(&pollOptionFlag, "poll-option", nil, "Possible answer to the poll, repeatable")
	cmd.Flags().StringVar(&pollExpiresFlag, "poll-expires-in", "24h", `Duration the poll stays open, e.g. "1 day"`)
	cmd.Flags().BoolVar(&pollMultipleFlag, "poll-multiple", false, "Allow multiple answers to be selected")
	cmd.Flags().BoolVar(&pollHideTotalsFlag, "poll-hide-totals", false, "Hide vote counts until the poll ends")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw JSON response")
	cmd.Flags().SortFlags = false

	return cmd
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	interactive := false
	if file, ok := cmd.InOrStdin().(*os.File); ok {
		interactive = term.IsTerminal(int(file.Fd()))
	}

	if editorFlag != "" && !interactive {
		return post.UsageError{Reason: "cannot run an editor without an interactive terminal"}
	}
	if len(mediaFlag) > post.MaxAttachments {
		return post.UsageError{Reason: fmt.Sprintf("cannot attach more than %d files", post.MaxAttachments)}
	}

	visibility, err := post.ValidateVisibility(visibilityFlag)
	if err != nil {
		return err
	}

	language := ""
	if languageFlag != "" {
		language, err = post.ValidateLanguage(languageFlag)
		if err != nil {
			return err
		}
	}

	scheduledIn := 0
	if scheduledInFlag != "" {
		scheduledIn, err = post.ParseDuration(scheduledInFlag)
		if err != nil {
			return err
		}
		if time.Duration(scheduledIn)*time.Second < post.MinScheduleLead {
			return post.UsageError{Reason: fmt.Sprintf("scheduled-in must be at least %s", post.MinScheduleLead)}
		}
	}

	pollExpires, err := post.ParseDuration(pollExpiresFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := api.New(api.Config{Server: cfg.Server, AccessToken: cfg.AccessToken})

	// The scratch file from editor or prompt composition goes away on
	// every exit path from here on.
	defer func() {
		if err := compose.DeleteScratch(); err != nil {
			logutil.Errorf("%v", err)
		}
	}()

	uploader := post.NewUploader(client, out)
	mediaIDs, err := uploader.UploadAll(ctx, mediaFlag, descriptionFlag, thumbnailFlag)
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	}
	source := &post.TextSource{
		Stdin:       cmd.InOrStdin(),
		Interactive: interactive,
		Editor:      editorFlag,
		Out:         out,
	}
	text, err = source.Resolve(text, len(mediaFlag))
	if err != nil {
		return err
	}

	params := api.StatusParams{
		Text:           text,
		Visibility:     visibility,
		MediaIDs:       mediaIDs,
		Sensitive:      sensitiveFlag,
		SpoilerText:    spoilerTextFlag,
		InReplyToID:    replyToFlag,
		Language:       language,
		ScheduledAt:    post.ResolveScheduledAt(scheduledAtFlag, scheduledIn, time.Now),
		ContentType:    contentTypeFlag,
		PollOptions:    pollOptionFlag,
		PollExpiresIn:  pollExpires,
		PollMultiple:   pollMultipleFlag,
		PollHideTotals: pollHideTotalsFlag,
	}

	return post.Submit(ctx, client, params, jsonFlag, out)
}
