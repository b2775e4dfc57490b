// Package compose handles interactive composition of a status: the
// multiline terminal prompt, external editor sessions, and the scratch
// file shared between them.
package compose

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const scratchName = "toot-status.txt"

const instructions = `

# Please enter your toot. Lines starting with '#' will be ignored, and an
# empty message aborts the post.
`

// EOFKey names the keystroke that ends interactive multiline input.
func EOFKey() string {
	if runtime.GOOS == "windows" {
		return "Ctrl+Z"
	}
	return "Ctrl+D"
}

// ScratchPath returns the location of the scratch file used for editor
// sessions. It is stable across invocations so a draft survives a crash.
func ScratchPath() string {
	return filepath.Join(os.TempDir(), scratchName)
}

// DeleteScratch removes the scratch file. Missing file is not an error.
func DeleteScratch() error {
	err := os.Remove(ScratchPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete scratch file: %w", err)
	}
	return nil
}

// EditorInput runs the editor over the scratch file seeded with the given
// text and returns the edited result. A non-empty leftover draft from a
// previous session takes precedence over the seed.
func EditorInput(editor, initial string) (string, error) {
	path := ScratchPath()

	existing, err := os.ReadFile(path)
	if err != nil || len(bytes.TrimSpace(existing)) == 0 {
		if err := os.WriteFile(path, []byte(initial+instructions), 0o600); err != nil {
			return "", fmt.Errorf("write scratch file: %w", err)
		}
	}

	args := strings.Fields(editor)
	if len(args) == 0 {
		return "", fmt.Errorf("empty editor command")
	}
	args = append(args, path)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %q: %w", editor, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}

	return StripInstructions(string(edited)), nil
}

// StripInstructions drops '#'-prefixed lines and surrounding whitespace.
func StripInstructions(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// MultilineInput reads lines from in until EOF and returns them joined.
func MultilineInput(in io.Reader) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
