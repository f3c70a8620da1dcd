package app

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/app/config"
	"deepgram-transcriber/internal/app/testutil"
)

func TestProvideProviderRegistry(t *testing.T) {
	cfg := config.CreateDefaultConfig()
	dg := cfg.Providers["deepgram"]
	dg.Auth = map[string]interface{}{"api_key": "test-key"}
	cfg.Providers["deepgram"] = dg

	logger, logs := testutil.NewCaptureLogger()
	registry, err := provideProviderRegistry(cfg, logger)
	require.NoError(t, err)
	assert.True(t, logs.Has("Registered provider"))
	assert.Equal(t, []string{"deepgram"}, registry.ListProviders())

	p, err := provideDefaultProvider(registry)
	require.NoError(t, err)
	assert.Equal(t, "deepgram", p.GetProviderInfo().Name)
}

func TestProvideProviderRegistry_MissingKey(t *testing.T) {
	cfg := config.CreateDefaultConfig()
	dg := cfg.Providers["deepgram"]
	dg.Auth = map[string]interface{}{"api_key": ""}
	cfg.Providers["deepgram"] = dg

	_, err := provideProviderRegistry(cfg, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestProvideServerOptions(t *testing.T) {
	cfg := config.CreateDefaultConfig()
	cfg.Upload.MaxSizeMB = 5
	mocks := testutil.NewMockServices(t)
	p := testutil.NewMockProvider(t)

	opts := provideServerOptions(mocks.TranscriptionService, mocks.ProviderService, p, providePrometheusRegistry(), cfg)
	assert.Equal(t, int64(5*1024*1024), opts.MaxUploadBytes)
	assert.NotNil(t, opts.Registry)
	assert.Equal(t, "nova-2", opts.Model)
}

func TestInitializeConverter(t *testing.T) {
	t.Setenv("DEEPGRAM_API_KEY", "env-key")

	conv, err := InitializeConverter(ConfigPath(filepath.Join(t.TempDir(), "absent.yaml")), slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, conv)
}

func TestInitializeServer(t *testing.T) {
	t.Setenv("DEEPGRAM_API_KEY", "env-key")
	t.Setenv("PORT", "18080")

	srv, err := InitializeServer(ConfigPath(filepath.Join(t.TempDir(), "absent.yaml")), slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, srv.Router())
}
