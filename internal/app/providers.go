package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"deepgram-transcriber/internal/api/server"
	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/config"
	"deepgram-transcriber/internal/app/converter"

	// Registers the deepgram provider factory
	_ "deepgram-transcriber/internal/app/api/deepgram"
)

// ConfigPath locates the providers YAML file. A missing file falls back to
// the built-in Deepgram defaults.
type ConfigPath string

func provideProvidersConfig(path ConfigPath) (*config.ProvidersConfig, error) {
	return config.LoadOrDefault(string(path))
}

func providePrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideProviderMetrics(reg *prometheus.Registry) provider.ProviderMetrics {
	return provider.NewProviderMetrics(reg)
}

// provideProviderRegistry creates every enabled provider through its
// registered factory
func provideProviderRegistry(cfg *config.ProvidersConfig, logger *slog.Logger) (provider.ProviderRegistry, error) {
	registry := provider.NewProviderRegistry()

	for name, providerConfig := range cfg.Providers {
		if !providerConfig.Enabled {
			continue
		}

		factoryConfig := providerConfig.FactoryConfig()
		factoryConfig["logger"] = logger

		p, err := provider.CreateProvider(providerConfig.Type, factoryConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider %s: %w", name, err)
		}
		if err := registry.RegisterProvider(name, p); err != nil {
			return nil, fmt.Errorf("failed to register provider %s: %w", name, err)
		}

		logger.Debug("Registered provider", "name", name, "type", providerConfig.Type)
	}

	if err := registry.SetDefaultProvider(cfg.DefaultProvider); err != nil {
		return nil, err
	}

	return registry, nil
}

func provideDefaultProvider(registry provider.ProviderRegistry) (provider.TranscriptionProvider, error) {
	return registry.GetDefaultProvider()
}

func provideTranscriptionService(conv *converter.Converter, cfg *config.ProvidersConfig, logger *slog.Logger) services.TranscriptionService {
	return services.NewTranscriptionService(conv, cfg.Upload.Dir, cfg.Upload.MaxBytes(), logger)
}

func provideServerOptions(
	transcription services.TranscriptionService,
	providers services.ProviderService,
	defaultProvider provider.TranscriptionProvider,
	reg *prometheus.Registry,
	cfg *config.ProvidersConfig,
) server.Options {
	return server.Options{
		TranscriptionService: transcription,
		ProviderService:      providers,
		Registry:             reg,
		MaxUploadBytes:       cfg.Upload.MaxBytes(),
		Model:                defaultProvider.GetProviderInfo().DefaultModel,
	}
}
