package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/app/model"
)

// Transcription statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// TranscriptionErrorInfo describes why a transcription failed
type TranscriptionErrorInfo struct {
	Kind    string `json:"kind" example:"empty_response"`
	Message string `json:"message" example:"Error: Empty response from Deepgram API."`
}

// TranscriptionResponse represents one processed upload in API responses
type TranscriptionResponse struct {
	RequestID        string                  `json:"request_id,omitempty" example:"c3a8f1d2-5a8e-4b8f-9a44-7f0d9d1c2e11"`
	Status           string                  `json:"status" example:"completed"`
	FileName         string                  `json:"file_name" example:"interview.mp3"`
	FileSize         int64                   `json:"file_size" example:"482133"`
	Format           string                  `json:"format" example:"mp3"`
	FileHash         string                  `json:"file_hash,omitempty"`
	Model            string                  `json:"model,omitempty" example:"nova-2"`
	Language         string                  `json:"language,omitempty" example:"hi"`
	Duration         float64                 `json:"duration,omitempty" example:"12.48"`
	Transcript       string                  `json:"transcript"`
	WordCount        int                     `json:"word_count"`
	Error            *TranscriptionErrorInfo `json:"error,omitempty"`
	ProcessingTimeMs int64                   `json:"processing_time_ms"`
	CreatedAt        time.Time               `json:"created_at"`
}

// Failed reports whether the upload produced no transcript
func (r *TranscriptionResponse) Failed() bool {
	return r.Status == StatusFailed
}

// DownloadRequest carries a transcript back for download
type DownloadRequest struct {
	Transcript string `json:"transcript" form:"transcript" binding:"required"`
}

// Validate rejects transcripts that are not valid UTF-8 or only whitespace
func (r *DownloadRequest) Validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errors.NewValidationError("Invalid download request", map[string]string{
			"transcript": "is required",
		})
	}
	if !utf8.ValidString(r.Transcript) {
		return errors.NewValidationError("Invalid download request", map[string]string{
			"transcript": "must be valid UTF-8",
		})
	}
	return nil
}

// ToTranscriptionResponse converts a conversion result to its response DTO
func ToTranscriptionResponse(t *model.Transcription, file model.FileInfo, format string, processing time.Duration) TranscriptionResponse {
	resp := TranscriptionResponse{
		RequestID:        t.RequestID,
		Status:           StatusCompleted,
		FileName:         file.Name,
		FileSize:         file.Size,
		Format:           format,
		FileHash:         file.Hash,
		Model:            t.Model,
		Language:         t.Language,
		Duration:         t.AudioDuration,
		Transcript:       t.Transcription,
		WordCount:        t.WordCount,
		ProcessingTimeMs: processing.Milliseconds(),
		CreatedAt:        t.LastConversionTime,
	}

	if t.ErrorMessage != "" {
		resp.Status = StatusFailed
		resp.Transcript = ""
		resp.WordCount = 0
	}

	return resp
}
