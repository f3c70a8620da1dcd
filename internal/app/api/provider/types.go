package provider

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV AudioFormat = "wav"
	FormatMP3 AudioFormat = "mp3"
	FormatOGG AudioFormat = "ogg"
)

// MIMEType returns the content type sent upstream for the format
func (f AudioFormat) MIMEType() string {
	switch f {
	case FormatWAV:
		return "audio/wav"
	case FormatMP3:
		return "audio/mpeg"
	case FormatOGG:
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}

// ProviderType defines the type of transcription provider
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// TranscriptionOptions are the recognition options sent with every request
type TranscriptionOptions struct {
	Model       string `json:"model" yaml:"model"`
	Language    string `json:"language" yaml:"language"`
	SmartFormat bool   `json:"smart_format" yaml:"smart_format"`
	Punctuate   bool   `json:"punctuate" yaml:"punctuate"`
	Diarize     bool   `json:"diarize" yaml:"diarize"`
}

// TranscriptionRequest represents one upload sent for transcription.
// Either Audio or InputFilePath must be set; Audio wins when both are.
type TranscriptionRequest struct {
	InputFilePath string               `json:"input_file_path,omitempty"`
	Audio         []byte               `json:"-"`
	Format        AudioFormat          `json:"format,omitempty"`
	Options       TranscriptionOptions `json:"options"`
}

// TranscriptionResponse represents the response from a transcription provider
type TranscriptionResponse struct {
	// Raw is the serialized provider response, untouched
	Raw string `json:"-"`

	RequestID string  `json:"request_id,omitempty"`
	Duration  float64 `json:"duration,omitempty"` // audio duration in seconds

	ProviderMetadata map[string]interface{} `json:"provider_metadata,omitempty"`

	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
	Language       string        `json:"language,omitempty"`
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Type        ProviderType `json:"type"`
	Version     string       `json:"version,omitempty"`

	SupportedFormats   []AudioFormat `json:"supported_formats"`
	SupportedLanguages []string      `json:"supported_languages,omitempty"` // Empty means all languages
	MaxFileSizeMB      int           `json:"max_file_size_mb,omitempty"`    // 0 means no limit

	SupportsWordLevel   bool `json:"supports_word_level"`
	SupportsDiarization bool `json:"supports_diarization"`
	SupportsStreaming   bool `json:"supports_streaming"`

	RequiresInternet bool `json:"requires_internet"`
	RequiresAPIKey   bool `json:"requires_api_key"`

	DefaultModel    string   `json:"default_model,omitempty"`
	AvailableModels []string `json:"available_models,omitempty"`

	ConnectTimeoutSec int `json:"connect_timeout_sec,omitempty"`
	RequestTimeoutSec int `json:"request_timeout_sec,omitempty"`
}

// Error codes carried by TranscriptionError
const (
	CodeInvalidInput         = "invalid_input"
	CodeFileNotFound         = "file_not_found"
	CodeFileReadError        = "file_read_error"
	CodeRequestCreation      = "request_creation_error"
	CodeNetworkError         = "network_error"
	CodeTimeout              = "timeout"
	CodeAuthenticationFailed = "authentication_failed"
	CodeForbidden            = "forbidden"
	CodeRateLimitExceeded    = "rate_limit_exceeded"
	CodeFileTooLarge         = "file_too_large"
	CodeUnsupportedMedia     = "unsupported_media"
	CodeInvalidRequest       = "invalid_request"
	CodeServerError          = "server_error"
	CodeResponseReadError    = "response_read_error"
	CodeUnknown              = "unknown_error"
)

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	StatusCode  int      `json:"status_code,omitempty"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// AsTranscriptionError unwraps err into a *TranscriptionError if it holds one
func AsTranscriptionError(err error) (*TranscriptionError, bool) {
	var tErr *TranscriptionError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// IsValidAudioFormat checks if the given format is supported
func IsValidAudioFormat(format string) bool {
	switch AudioFormat(strings.ToLower(format)) {
	case FormatWAV, FormatMP3, FormatOGG:
		return true
	default:
		return false
	}
}

// GetAudioFormatFromFilename extracts audio format from filename
func GetAudioFormatFromFilename(filename string) AudioFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !IsValidAudioFormat(ext) {
		return ""
	}
	return AudioFormat(ext)
}
