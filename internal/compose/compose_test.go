package compose

import (
	"os"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestStripInstructions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "instructions_removed",
			text: "hello world\n\n# Please enter your toot.\n# will be ignored\n",
			want: "hello world",
		},
		{
			name: "plain_text",
			text: "just text\n",
			want: "just text",
		},
		{
			name: "hash_mid_line_kept",
			text: "tagged #golang post\n# a comment\n",
			want: "tagged #golang post",
		},
		{
			name: "only_instructions",
			text: "# nothing here\n# at all\n",
			want: "",
		},
		{
			name: "interior_blank_lines_kept",
			text: "first\n\nsecond\n# trailing\n",
			want: "first\n\nsecond",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, StripInstructions(tt.text), tt.want)
		})
	}
}

func TestMultilineInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two_lines", input: "first\nsecond\n", want: "first\nsecond"},
		{name: "empty", input: "", want: ""},
		{name: "trailing_blanks", input: "text\n\n\n", want: "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MultilineInput(strings.NewReader(tt.input))
			be.Err(t, err, nil)
			be.Equal(t, got, tt.want)
		})
	}
}

func TestDeleteScratch(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	// Missing file is fine.
	be.Err(t, DeleteScratch(), nil)

	be.Err(t, os.WriteFile(ScratchPath(), []byte("draft"), 0o600), nil)
	be.Err(t, DeleteScratch(), nil)

	_, err := os.Stat(ScratchPath())
	be.True(t, os.IsNotExist(err))
}

func TestEditorInputSeedsScratch(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	// "true" leaves the seeded file untouched, so the result is the
	// initial text with the instruction lines stripped.
	got, err := EditorInput("true", "hello from the seed")
	be.Err(t, err, nil)
	be.Equal(t, got, "hello from the seed")
}

func TestEditorInputReusesLeftoverDraft(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	be.Err(t, os.WriteFile(ScratchPath(), []byte("leftover draft\n"), 0o600), nil)

	got, err := EditorInput("true", "fresh seed")
	be.Err(t, err, nil)
	be.Equal(t, got, "leftover draft")
}

func TestEditorInputFailure(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	_, err := EditorInput("false", "text")
	be.Err(t, err, "run editor")
}
