package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	minPromptLength = 10
	maxPromptLength = 5000
)

// memoHeading splits the template file into its transcript and memo
// sections. Everything above the heading is the transcription prompt,
// everything below it is the memo prompt.
const memoHeading = "# Memo"

// Templates holds the two prompts for a run.
type Templates struct {
	Transcript string
	Memo       string
}

// LoadFromFile reads a markdown template resource containing a transcription
// section followed by a "# Memo" section.
func LoadFromFile(path string) (*Templates, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %s: %w", path, err)
	}

	parts := strings.SplitN(string(content), memoHeading, 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("prompt file %s has no %q section", path, memoHeading)
	}

	t := &Templates{
		Transcript: strings.TrimSpace(stripHeading(parts[0])),
		Memo:       strings.TrimSpace(parts[1]),
	}

	if err := Validate(t.Transcript); err != nil {
		return nil, fmt.Errorf("transcript prompt in %s: %w", path, err)
	}
	if err := Validate(t.Memo); err != nil {
		return nil, fmt.Errorf("memo prompt in %s: %w", path, err)
	}
	return t, nil
}

// LoadForLanguage loads dir/<lang>.md. Template files are per-language so
// the prompts can be swapped without code changes.
func LoadForLanguage(dir string, lang string) (*Templates, error) {
	return LoadFromFile(filepath.Join(dir, lang+".md"))
}

// Validate checks a prompt for the length policy: non-empty, at least 10
// characters, at most 5000.
func Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("prompt cannot be empty")
	}
	if len(trimmed) < minPromptLength {
		return fmt.Errorf("prompt too short (minimum %d characters)", minPromptLength)
	}
	if len(text) > maxPromptLength {
		return fmt.Errorf("prompt too long (maximum %d characters)", maxPromptLength)
	}
	return nil
}

// stripHeading drops a leading markdown heading line, if any, so the
// section title ("# Transcription", "# Transkriptsioon", ...) is not sent
// to the model.
func stripHeading(s string) string {
	trimmed := strings.TrimLeft(s, "\n\r\t ")
	if !strings.HasPrefix(trimmed, "#") {
		return s
	}
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		return trimmed[idx+1:]
	}
	return ""
}
