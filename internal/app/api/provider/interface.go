package provider

import (
	"context"
	"time"
)

// TranscriptionProvider sends audio to a speech-to-text backend and hands
// back its raw response
type TranscriptionProvider interface {
	// TranscriptWithOptions performs one blocking transcription call
	TranscriptWithOptions(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error)

	// Provider metadata and capabilities
	GetProviderInfo() ProviderInfo

	// Configuration validation and health checks
	ValidateConfiguration() error
	HealthCheck(ctx context.Context) error
}

// ProviderRegistry manages named transcription providers
type ProviderRegistry interface {
	RegisterProvider(name string, provider TranscriptionProvider) error
	GetProvider(name string) (TranscriptionProvider, error)
	ListProviders() []string
	GetDefaultProvider() (TranscriptionProvider, error)
	SetDefaultProvider(name string) error
	DefaultProviderName() string
	HealthCheckAll(ctx context.Context) map[string]error
}

// ProviderMetrics records per-provider performance and usage
type ProviderMetrics interface {
	RecordSuccess(provider string, latency time.Duration, audioLengthSec float64)
	RecordFailure(provider string, errorType string)
	GetProviderMetrics(provider string) ProviderStats
}

// ProviderStats contains statistics for a specific provider
type ProviderStats struct {
	Provider            string           `json:"provider"`
	TotalRequests       int64            `json:"total_requests"`
	SuccessfulRequests  int64            `json:"successful_requests"`
	FailedRequests      int64            `json:"failed_requests"`
	SuccessRate         float64          `json:"success_rate"`
	AverageLatencyMs    float64          `json:"average_latency_ms"`
	TotalAudioProcessed float64          `json:"total_audio_processed_sec"`
	LastUsed            int64            `json:"last_used_timestamp"`
	IsHealthy           bool             `json:"is_healthy"`
	ErrorBreakdown      map[string]int64 `json:"error_breakdown"`
}
