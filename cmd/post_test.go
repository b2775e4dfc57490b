package cmd

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/dlax/toot/internal/compose"
	"github.com/dlax/toot/internal/post"
)

func runToot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	root := newRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPostRejectsTooManyMedia(t *testing.T) {
	_, err := runToot(t, "", "post", "hi",
		"-m", "a.jpg", "-m", "b.jpg", "-m", "c.jpg", "-m", "d.jpg", "-m", "e.jpg")

	var usageErr post.UsageError
	be.True(t, errors.As(err, &usageErr))
	be.Err(t, err, "more than 4 files")
}

func TestPostRejectsEditorWithoutTerminal(t *testing.T) {
	_, err := runToot(t, "", "post", "--editor=vim")

	var usageErr post.UsageError
	be.True(t, errors.As(err, &usageErr))
	be.Err(t, err, "interactive terminal")
}

func TestPostRejectsInvalidVisibility(t *testing.T) {
	_, err := runToot(t, "", "post", "hi", "--visibility", "friends")
	be.Err(t, err, "invalid visibility")
}

func TestPostRejectsShortScheduleLead(t *testing.T) {
	_, err := runToot(t, "", "post", "hi", "--scheduled-in", "1 minute")
	be.Err(t, err, "at least 5m0s")
}

func TestPostRejectsInvalidLanguage(t *testing.T) {
	_, err := runToot(t, "", "post", "hi", "--language", "english")
	be.Err(t, err, "invalid language")
}

func TestEmptyPostFailsAndCleansScratch(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("TOOT_SERVER", "https://example.social")
	t.Setenv("TOOT_ACCESS_TOKEN", "token")

	be.Err(t, os.WriteFile(compose.ScratchPath(), []byte("stale draft"), 0o600), nil)

	_, err := runToot(t, "", "post")

	var usageErr post.UsageError
	be.True(t, errors.As(err, &usageErr))
	be.Err(t, err, "either text or media")

	_, statErr := os.Stat(compose.ScratchPath())
	be.True(t, os.IsNotExist(statErr))
}

func TestPostSuccessCleansScratch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, r.URL.Path, "/api/v1/statuses")
		be.Err(t, r.ParseForm(), nil)
		be.Equal(t, r.PostForm.Get("status"), "hello world")
		be.Equal(t, r.PostForm.Get("visibility"), "public")

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"1","url":"https://example.social/@me/1"}`)
	}))
	defer server.Close()

	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("TOOT_SERVER", server.URL)
	t.Setenv("TOOT_ACCESS_TOKEN", "token")

	be.Err(t, os.WriteFile(compose.ScratchPath(), []byte("stale draft"), 0o600), nil)

	out, err := runToot(t, "", "post", "hello world")
	be.Err(t, err, nil)
	be.Equal(t, out, "Toot posted: https://example.social/@me/1\n")

	_, statErr := os.Stat(compose.ScratchPath())
	be.True(t, os.IsNotExist(statErr))
}

func TestPostJSONOutput(t *testing.T) {
	raw := `{"id":"2","url":"https://example.social/@me/2","content":"<p>hi</p>"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, raw)
	}))
	defer server.Close()

	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("TOOT_SERVER", server.URL)
	t.Setenv("TOOT_ACCESS_TOKEN", "token")

	out, err := runToot(t, "", "post", "hi", "--json")
	be.Err(t, err, nil)
	be.Equal(t, out, raw+"\n")
}
