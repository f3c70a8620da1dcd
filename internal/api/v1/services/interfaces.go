package services

import (
	"context"
	"io"

	"deepgram-transcriber/internal/api/v1/dto"
)

// TranscriptionService turns one uploaded audio file into a transcript
type TranscriptionService interface {
	// Transcribe validates, stages and transcribes body. Upload rejections
	// return a nil response. Provider and extraction failures return both a
	// failed response and the error.
	Transcribe(ctx context.Context, filename string, size int64, body io.Reader) (*dto.TranscriptionResponse, error)
}

// ProviderService defines the interface for provider operations
type ProviderService interface {
	ListProviders(ctx context.Context) ([]dto.ProviderResponse, error)
	GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error)
	GetProviderStatus(ctx context.Context, id string) (*dto.ProviderStatusResponse, error)
	GetProviderStats(ctx context.Context, id string) (*dto.ProviderStatsResponse, error)
}
