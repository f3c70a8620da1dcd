package services

import (
	"context"
	"time"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/app/api/provider"
)

// ProviderServiceImpl implements ProviderService
type ProviderServiceImpl struct {
	registry provider.ProviderRegistry
	metrics  provider.ProviderMetrics
}

// NewProviderService creates a new provider service
func NewProviderService(registry provider.ProviderRegistry, metrics provider.ProviderMetrics) ProviderService {
	return &ProviderServiceImpl{
		registry: registry,
		metrics:  metrics,
	}
}

// ListProviders lists all registered providers. Health checks run
// concurrently through the registry.
func (s *ProviderServiceImpl) ListProviders(ctx context.Context) ([]dto.ProviderResponse, error) {
	health := s.registry.HealthCheckAll(ctx)
	defaultName := s.registry.DefaultProviderName()

	names := s.registry.ListProviders()
	responses := make([]dto.ProviderResponse, 0, len(names))
	for _, name := range names {
		p, err := s.registry.GetProvider(name)
		if err != nil {
			continue
		}
		responses = append(responses, dto.ToProviderResponse(p.GetProviderInfo(), statusOf(health[name]), defaultName == name))
	}

	return responses, nil
}

// GetProvider gets detailed information about a specific provider
func (s *ProviderServiceImpl) GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	id, p, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToProviderResponse(p.GetProviderInfo(), statusOf(s.checkHealth(ctx, p)), s.registry.DefaultProviderName() == id)
	return &resp, nil
}

// GetProviderStatus gets the health status of a provider
func (s *ProviderServiceImpl) GetProviderStatus(ctx context.Context, id string) (*dto.ProviderStatusResponse, error) {
	id, p, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	healthErr := s.checkHealth(ctx, p)

	resp := &dto.ProviderStatusResponse{
		ID:           id,
		Name:         p.GetProviderInfo().DisplayName,
		Status:       statusOf(healthErr),
		ResponseTime: time.Since(start).Milliseconds(),
		CheckedAt:    time.Now(),
	}
	if healthErr != nil {
		resp.ErrorMessage = healthErr.Error()
	}
	return resp, nil
}

// GetProviderStats reports usage since the process started
func (s *ProviderServiceImpl) GetProviderStats(ctx context.Context, id string) (*dto.ProviderStatsResponse, error) {
	id, p, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	var stats provider.ProviderStats
	if s.metrics != nil {
		stats = s.metrics.GetProviderMetrics(id)
	}

	resp := dto.ToProviderStatsResponse(id, p.GetProviderInfo().DisplayName, stats)
	return &resp, nil
}

// DefaultProviderAlias names the configured default provider in lookups
const DefaultProviderAlias = "default"

// resolve maps id, or the default alias, to a registered provider
func (s *ProviderServiceImpl) resolve(id string) (string, provider.TranscriptionProvider, error) {
	if id == DefaultProviderAlias {
		id = s.registry.DefaultProviderName()
	}
	p, err := s.registry.GetProvider(id)
	if err != nil {
		return "", nil, errors.NewNotFoundError("provider")
	}
	return id, p, nil
}

func (s *ProviderServiceImpl) checkHealth(ctx context.Context, p provider.TranscriptionProvider) error {
	ctx, cancel := context.WithTimeout(ctx, provider.HealthCheckTimeout)
	defer cancel()
	return p.HealthCheck(ctx)
}

func statusOf(healthErr error) string {
	if healthErr != nil {
		return "unhealthy"
	}
	return "healthy"
}
