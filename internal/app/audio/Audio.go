package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"deepgram-transcriber/internal/app/api/provider"
)

// MaxUploadBytes is the largest audio file accepted for transcription (100 MB)
const MaxUploadBytes int64 = 100 * 1024 * 1024

var (
	ErrFileTooLarge      = errors.New("File size too large. Please upload a file smaller than 100MB.")
	ErrUnsupportedFormat = errors.New("Unsupported file type. Please upload a wav, mp3 or ogg file.")
	ErrEmptyFile         = errors.New("Uploaded file is empty.")
)

// AcceptedFormats lists the upload formats in the order shown to users
var AcceptedFormats = []provider.AudioFormat{provider.FormatWAV, provider.FormatMP3, provider.FormatOGG}

// ValidateUpload checks an upload against the accepted formats and the size
// limit before anything is staged or sent. A max of zero or less means
// MaxUploadBytes.
func ValidateUpload(filename string, size int64, max int64) (provider.AudioFormat, error) {
	if max <= 0 {
		max = MaxUploadBytes
	}

	format := provider.GetAudioFormatFromFilename(filename)
	if !lo.Contains(AcceptedFormats, format) {
		return "", fmt.Errorf("%w (got %q)", ErrUnsupportedFormat, strings.TrimPrefix(filepath.Ext(filename), "."))
	}

	if size > max {
		return "", ErrFileTooLarge
	}
	if size == 0 {
		return "", ErrEmptyFile
	}

	return format, nil
}

// AcceptAttribute renders the formats for an HTML file input
func AcceptAttribute() string {
	exts := lo.Map(AcceptedFormats, func(f provider.AudioFormat, _ int) string {
		return "." + string(f)
	})
	return strings.Join(exts, ",")
}
