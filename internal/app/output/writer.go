package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifacts names the two output files of a run. Both are overwritten
// wholesale each run: last-writer-wins, no append, no merge.
type Artifacts struct {
	TranscriptPath string
	MemoPath       string
}

// DefaultArtifacts places transcript.txt and memo.md in dir.
func DefaultArtifacts(dir string) Artifacts {
	return Artifacts{
		TranscriptPath: filepath.Join(dir, "transcript.txt"),
		MemoPath:       filepath.Join(dir, "memo.md"),
	}
}

func (a Artifacts) WriteTranscript(text string) error {
	return writeAtomic(a.TranscriptPath, text)
}

func (a Artifacts) WriteMemo(text string) error {
	return writeAtomic(a.MemoPath, text)
}

// writeAtomic writes content to a temp file in the destination directory
// and renames it into place, so readers never observe a partial file and an
// aborted run leaves the previous output untouched.
func writeAtomic(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// StripMarkdownFence removes the code fences some models wrap markdown
// output in.
func StripMarkdownFence(s string) string {
	s = strings.ReplaceAll(s, "```markdown", "")
	s = strings.ReplaceAll(s, "```md", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
