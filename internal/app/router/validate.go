package router

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"memomaker/internal/app/model"
)

// Default size policy. A submission outside these bounds never reaches the
// network call.
const (
	DefaultMinFileSize     = 1 << 10   // 1 KB
	DefaultMaxFileSize     = 100 << 20 // 100 MB
	DefaultInlineThreshold = 20 << 20  // 20 MB
)

var supportedExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac"}

var mimeByExtension = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
}

// sniffLen covers every magic-byte pattern we check, including the "ftyp"
// box name at offset 4 in MP4 containers.
const sniffLen = 12

// Validate runs the full pre-flight check on an audio file: existence,
// extension against the supported set, size bounds, and a magic-byte header
// sniff. It always returns a result, never an error.
func (r *Router) Validate(path string) ValidationResult {
	if path == "" {
		return invalid(KindInvalidFormat, "no file path given")
	}

	info, err := os.Stat(path)
	if err != nil {
		return invalid(KindCorruptFile, "cannot read file: %v", err)
	}
	if info.IsDir() {
		return invalid(KindInvalidFormat, "%s is a directory, not an audio file", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !lo.Contains(supportedExtensions, ext) {
		return invalid(KindInvalidFormat, "unsupported file format %q (supported: %s)",
			ext, strings.Join(supportedExtensions, ", "))
	}

	size := info.Size()
	if size < r.cfg.MinFileSize {
		return invalid(KindFileTooSmall, "file too small (%d bytes, minimum %d)", size, r.cfg.MinFileSize)
	}
	if size > r.cfg.MaxFileSize {
		return invalid(KindFileTooLarge, "file too large (%d bytes, maximum %d)", size, r.cfg.MaxFileSize)
	}

	header, err := readHeader(path)
	if err != nil {
		return invalid(KindCorruptFile, "file appears corrupted or unreadable: %v", err)
	}
	if !sniffHeader(ext, header) {
		return invalid(KindCorruptFile, "file header does not match a %s audio stream", ext)
	}

	return valid()
}

// NewSubmission stats and validates the file, returning the submission in
// its post-validation state. On rejection the submission is terminal and
// must not be submitted.
func (r *Router) NewSubmission(path string) (*model.AudioSubmission, ValidationResult) {
	sub := &model.AudioSubmission{
		Path:  path,
		State: model.StateValidating,
	}

	res := r.Validate(path)
	if !res.OK {
		sub.State = model.StateRejected
		return sub, res
	}

	info, err := os.Stat(path)
	if err != nil {
		sub.State = model.StateRejected
		return sub, invalid(KindCorruptFile, "cannot read file: %v", err)
	}

	sub.SizeBytes = info.Size()
	sub.MimeType = mimeByExtension[strings.ToLower(filepath.Ext(path))]
	sub.State = model.StateRouted
	r.notify(MilestoneValidationComplete)
	return sub, res
}

func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// sniffHeader checks the file's leading bytes against the magic numbers of
// the format its extension claims. A mismatch means the extension lies
// about the content (e.g. a renamed .txt), which validation reports as
// CorruptFile rather than InvalidFormat.
func sniffHeader(ext string, header []byte) bool {
	if len(header) < sniffLen {
		return false
	}

	switch ext {
	case ".mp3":
		// ID3v2 tag or a raw MPEG frame sync.
		return bytes.HasPrefix(header, []byte("ID3")) || isMPEGFrameSync(header)
	case ".wav":
		return bytes.HasPrefix(header, []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE"))
	case ".ogg":
		return bytes.HasPrefix(header, []byte("OggS"))
	case ".flac":
		return bytes.HasPrefix(header, []byte("fLaC"))
	case ".m4a":
		// MP4 container: size box then "ftyp" at offset 4.
		return bytes.Equal(header[4:8], []byte("ftyp"))
	case ".aac":
		// ADTS frame sync, ADIF header, or a leading ID3v2 tag.
		return isADTSFrameSync(header) ||
			bytes.HasPrefix(header, []byte("ADIF")) ||
			bytes.HasPrefix(header, []byte("ID3"))
	default:
		return false
	}
}

func isMPEGFrameSync(header []byte) bool {
	return header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

func isADTSFrameSync(header []byte) bool {
	return header[0] == 0xFF && header[1]&0xF0 == 0xF0
}
