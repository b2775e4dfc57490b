package post

import (
	"fmt"
	"io"
	"strings"

	"github.com/dlax/toot/internal/compose"
)

// TextSource resolves the final status body from the available input
// channels: explicit argument, piped stdin, editor session, or the
// interactive multiline prompt, in that order of precedence.
type TextSource struct {
	Stdin       io.Reader
	Interactive bool
	Editor      string
	Out         io.Writer

	// Overridable in tests; defaults delegate to the compose package.
	EditorFunc func(editor, initial string) (string, error)
	PromptFunc func(in io.Reader) (string, error)
}

// Resolve picks the status text. An editor without an interactive
// terminal must be rejected by the caller before this runs.
func (s *TextSource) Resolve(text string, mediaCount int) (string, error) {
	if text == "" && !s.Interactive {
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), " \t\r\n\v\f")
	}

	if s.Interactive {
		if s.Editor != "" {
			edited, err := s.editorFunc()(s.Editor, text)
			if err != nil {
				return "", err
			}
			text = edited
		} else if text == "" && mediaCount == 0 {
			fmt.Fprintf(s.Out, "Write or paste your toot. Press %s to post it.\n", compose.EOFKey())
			entered, err := s.promptFunc()(s.Stdin)
			if err != nil {
				return "", err
			}
			text = entered
		}
	}

	return text, nil
}

func (s *TextSource) editorFunc() func(string, string) (string, error) {
	if s.EditorFunc != nil {
		return s.EditorFunc
	}
	return compose.EditorInput
}

func (s *TextSource) promptFunc() func(io.Reader) (string, error) {
	if s.PromptFunc != nil {
		return s.PromptFunc
	}
	return compose.MultilineInput
}
