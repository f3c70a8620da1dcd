//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"deepgram-transcriber/internal/api/server"
	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/internal/app/converter"
	envconfig "deepgram-transcriber/internal/config"
)

var providerSet = wire.NewSet(
	provideProvidersConfig,
	providePrometheusRegistry,
	provideProviderMetrics,
	provideProviderRegistry,
	provideDefaultProvider,
	converter.NewConverter,
)

func InitializeServer(configPath ConfigPath, logger *slog.Logger) (*server.Server, error) {
	wire.Build(
		providerSet,
		envconfig.GetServerConfig,
		provideTranscriptionService,
		services.NewProviderService,
		provideServerOptions,
		server.NewServer,
	)
	return &server.Server{}, nil
}

func InitializeConverter(configPath ConfigPath, logger *slog.Logger) (*converter.Converter, error) {
	wire.Build(providerSet)
	return &converter.Converter{}, nil
}

func InitializeProgressAwareConverter(configPath ConfigPath, progress converter.ProgressConfig, logger *slog.Logger) (*converter.ProgressAwareConverter, error) {
	wire.Build(providerSet, converter.NewProgressAwareConverter)
	return &converter.ProgressAwareConverter{}, nil
}
