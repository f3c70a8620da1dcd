package dto

import (
	"time"

	"deepgram-transcriber/internal/app/api/provider"
)

// ProviderResponse represents a provider in API responses
type ProviderResponse struct {
	ID               string               `json:"id" example:"deepgram"`
	Name             string               `json:"name" example:"Deepgram"`
	Description      string               `json:"description"`
	Type             string               `json:"type" example:"remote"`
	Available        bool                 `json:"available"`
	HealthStatus     string               `json:"health_status" example:"healthy"`
	SupportedFormats []string             `json:"supported_formats"`
	RequiresAPIKey   bool                 `json:"requires_api_key"`
	IsDefault        bool                 `json:"is_default"`
	Capabilities     ProviderCapabilities `json:"capabilities"`
}

// ProviderListResponse is the body of GET /providers
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Default   string             `json:"default" example:"deepgram"`
}

// ProviderCapabilities represents provider capabilities
type ProviderCapabilities struct {
	SupportsStreaming   bool     `json:"supports_streaming"`
	SupportsWordLevel   bool     `json:"supports_word_level"`
	SupportsDiarization bool     `json:"supports_diarization"`
	SupportsLanguages   []string `json:"supports_languages"`
	SupportsModels      []string `json:"supports_models"`
	MaxFileSizeMB       int      `json:"max_file_size_mb"`
	ConnectTimeoutSec   int      `json:"connect_timeout_sec"`
	RequestTimeoutSec   int      `json:"request_timeout_sec"`
}

// ProviderStatusResponse represents provider status information
type ProviderStatusResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

// ProviderStatsResponse represents provider usage statistics since start
type ProviderStatsResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	TotalRequests       int64            `json:"total_requests"`
	SuccessfulRequests  int64            `json:"successful_requests"`
	FailedRequests      int64            `json:"failed_requests"`
	AverageResponseTime float64          `json:"average_response_time_ms"`
	TotalAudioDuration  float64          `json:"total_audio_duration_sec"`
	SuccessRate         float64          `json:"success_rate"`
	ErrorBreakdown      map[string]int64 `json:"error_breakdown,omitempty"`
	LastUsed            *time.Time       `json:"last_used,omitempty"`
}

// ToProviderResponse converts provider info to response DTO
func ToProviderResponse(info provider.ProviderInfo, healthStatus string, isDefault bool) ProviderResponse {
	formats := make([]string, len(info.SupportedFormats))
	for i, f := range info.SupportedFormats {
		formats[i] = string(f)
	}

	description := info.DisplayName
	if info.Type == provider.ProviderTypeLocal {
		description += " (local)"
	} else if info.Type == provider.ProviderTypeRemote {
		description += " (remote API)"
	}

	models := info.AvailableModels
	if len(models) == 0 && info.DefaultModel != "" {
		models = []string{info.DefaultModel}
	}

	return ProviderResponse{
		ID:               info.Name,
		Name:             info.DisplayName,
		Description:      description,
		Type:             string(info.Type),
		Available:        healthStatus == "healthy",
		HealthStatus:     healthStatus,
		SupportedFormats: formats,
		RequiresAPIKey:   info.RequiresAPIKey,
		IsDefault:        isDefault,
		Capabilities: ProviderCapabilities{
			SupportsStreaming:   info.SupportsStreaming,
			SupportsWordLevel:   info.SupportsWordLevel,
			SupportsDiarization: info.SupportsDiarization,
			SupportsLanguages:   info.SupportedLanguages,
			SupportsModels:      models,
			MaxFileSizeMB:       info.MaxFileSizeMB,
			ConnectTimeoutSec:   info.ConnectTimeoutSec,
			RequestTimeoutSec:   info.RequestTimeoutSec,
		},
	}
}

// ToProviderStatsResponse converts collected metrics to response DTO
func ToProviderStatsResponse(id, name string, stats provider.ProviderStats) ProviderStatsResponse {
	resp := ProviderStatsResponse{
		ID:                  id,
		Name:                name,
		TotalRequests:       stats.TotalRequests,
		SuccessfulRequests:  stats.SuccessfulRequests,
		FailedRequests:      stats.FailedRequests,
		AverageResponseTime: stats.AverageLatencyMs,
		TotalAudioDuration:  stats.TotalAudioProcessed,
		SuccessRate:         stats.SuccessRate,
		ErrorBreakdown:      stats.ErrorBreakdown,
	}
	if stats.LastUsed > 0 {
		lastUsed := time.Unix(stats.LastUsed, 0).UTC()
		resp.LastUsed = &lastUsed
	}
	return resp
}
