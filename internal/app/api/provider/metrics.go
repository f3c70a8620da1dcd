package provider

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultProviderMetrics implements ProviderMetrics. It keeps an in-memory
// summary per provider and mirrors every event into Prometheus collectors.
type DefaultProviderMetrics struct {
	mu            sync.RWMutex
	providerStats map[string]*ProviderStats

	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	audioSeconds  *prometheus.CounterVec
	failuresByErr *prometheus.CounterVec
}

// NewProviderMetrics creates a new provider metrics instance. A nil
// registerer keeps the collectors unregistered.
func NewProviderMetrics(reg prometheus.Registerer) *DefaultProviderMetrics {
	factory := promauto.With(reg)

	return &DefaultProviderMetrics{
		providerStats: make(map[string]*ProviderStats),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transcriber",
			Name:      "provider_requests_total",
			Help:      "Transcription requests sent to a provider, by outcome.",
		}, []string{"provider", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transcriber",
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of successful provider calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"provider"}),
		audioSeconds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transcriber",
			Name:      "audio_processed_seconds_total",
			Help:      "Seconds of audio transcribed.",
		}, []string{"provider"}),
		failuresByErr: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transcriber",
			Name:      "provider_failures_total",
			Help:      "Failed provider calls by error code.",
		}, []string{"provider", "error_type"}),
	}
}

// RecordSuccess records a successful transcription
func (m *DefaultProviderMetrics) RecordSuccess(provider string, latency time.Duration, audioLengthSec float64) {
	m.requests.WithLabelValues(provider, "success").Inc()
	m.latency.WithLabelValues(provider).Observe(latency.Seconds())
	if audioLengthSec > 0 {
		m.audioSeconds.WithLabelValues(provider).Add(audioLengthSec)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	latencyMs := float64(latency.Milliseconds())
	stats := m.getOrCreateStats(provider)
	stats.TotalRequests++
	stats.SuccessfulRequests++
	stats.TotalAudioProcessed += audioLengthSec
	stats.LastUsed = time.Now().Unix()
	stats.IsHealthy = true

	// Weighted average favoring recent results
	if stats.AverageLatencyMs == 0 {
		stats.AverageLatencyMs = latencyMs
	} else {
		stats.AverageLatencyMs = (stats.AverageLatencyMs * 0.8) + (latencyMs * 0.2)
	}

	stats.SuccessRate = float64(stats.SuccessfulRequests) / float64(stats.TotalRequests)
}

// RecordFailure records a failed transcription
func (m *DefaultProviderMetrics) RecordFailure(provider string, errorType string) {
	m.requests.WithLabelValues(provider, "failure").Inc()
	m.failuresByErr.WithLabelValues(provider, errorType).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.getOrCreateStats(provider)
	stats.TotalRequests++
	stats.FailedRequests++
	stats.LastUsed = time.Now().Unix()
	stats.ErrorBreakdown[errorType]++
	stats.SuccessRate = float64(stats.SuccessfulRequests) / float64(stats.TotalRequests)

	// Mark as unhealthy if failure rate is too high
	if stats.TotalRequests >= 10 && stats.SuccessRate < 0.5 {
		stats.IsHealthy = false
	}
}

// GetProviderMetrics returns a copy of the metrics for a specific provider
func (m *DefaultProviderMetrics) GetProviderMetrics(provider string) ProviderStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats, ok := m.providerStats[provider]
	if !ok {
		return ProviderStats{Provider: provider, IsHealthy: true, ErrorBreakdown: map[string]int64{}}
	}

	breakdown := make(map[string]int64, len(stats.ErrorBreakdown))
	for k, v := range stats.ErrorBreakdown {
		breakdown[k] = v
	}

	copied := *stats
	copied.ErrorBreakdown = breakdown
	return copied
}

// getOrCreateStats must be called with m.mu held for writing
func (m *DefaultProviderMetrics) getOrCreateStats(provider string) *ProviderStats {
	stats, ok := m.providerStats[provider]
	if !ok {
		stats = &ProviderStats{
			Provider:       provider,
			IsHealthy:      true,
			ErrorBreakdown: make(map[string]int64),
		}
		m.providerStats[provider] = stats
	}
	return stats
}
