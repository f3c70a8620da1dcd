package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider implements TranscriptionProvider for registry tests
type stubProvider struct {
	name            string
	validateErr     error
	healthCheckFunc func(context.Context) error
}

func (s *stubProvider) TranscriptWithOptions(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error) {
	return &TranscriptionResponse{
		Raw:            `{"results":{"channels":[{"alternatives":[{"words":[{"word":"stub"}]}]}]}}`,
		ProcessingTime: 100 * time.Millisecond,
		ModelUsed:      "stub-model",
	}, nil
}

func (s *stubProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:             s.name,
		DisplayName:      "Stub Provider",
		Type:             ProviderTypeLocal,
		SupportedFormats: []AudioFormat{FormatWAV, FormatMP3, FormatOGG},
	}
}

func (s *stubProvider) ValidateConfiguration() error {
	return s.validateErr
}

func (s *stubProvider) HealthCheck(ctx context.Context) error {
	if s.healthCheckFunc != nil {
		return s.healthCheckFunc(ctx)
	}
	return nil
}

func TestProviderRegistry_RegisterProvider(t *testing.T) {
	tests := []struct {
		name          string
		providerName  string
		provider      TranscriptionProvider
		errorContains string
	}{
		{
			name:         "valid provider",
			providerName: "stub",
			provider:     &stubProvider{name: "stub"},
		},
		{
			name:          "empty name",
			providerName:  "",
			provider:      &stubProvider{name: "stub"},
			errorContains: "name cannot be empty",
		},
		{
			name:          "nil provider",
			providerName:  "stub",
			provider:      nil,
			errorContains: "cannot be nil",
		},
		{
			name:          "invalid configuration",
			providerName:  "stub",
			provider:      &stubProvider{name: "stub", validateErr: errors.New("missing api key")},
			errorContains: "provider validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewProviderRegistry()
			err := registry.RegisterProvider(tt.providerName, tt.provider)
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProviderRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewProviderRegistry()
	require.NoError(t, registry.RegisterProvider("stub", &stubProvider{name: "stub"}))

	err := registry.RegisterProvider("stub", &stubProvider{name: "stub"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestProviderRegistry_DefaultProvider(t *testing.T) {
	registry := NewProviderRegistry()

	_, err := registry.GetDefaultProvider()
	assert.ErrorIs(t, err, ErrNoDefaultProvider)
	assert.Empty(t, registry.DefaultProviderName())

	require.NoError(t, registry.RegisterProvider("first", &stubProvider{name: "first"}))
	require.NoError(t, registry.RegisterProvider("second", &stubProvider{name: "second"}))

	def, err := registry.GetDefaultProvider()
	require.NoError(t, err)
	assert.Equal(t, "first", def.GetProviderInfo().Name)

	require.NoError(t, registry.SetDefaultProvider("second"))
	def, err = registry.GetDefaultProvider()
	require.NoError(t, err)
	assert.Equal(t, "second", def.GetProviderInfo().Name)

	assert.Equal(t, "second", registry.DefaultProviderName())

	assert.ErrorIs(t, registry.SetDefaultProvider("missing"), ErrProviderNotFound)
	assert.Equal(t, []string{"first", "second"}, registry.ListProviders())
}

func TestProviderRegistry_HealthCheckAll(t *testing.T) {
	registry := NewProviderRegistry()
	require.NoError(t, registry.RegisterProvider("healthy", &stubProvider{name: "healthy"}))
	require.NoError(t, registry.RegisterProvider("broken", &stubProvider{
		name: "broken",
		healthCheckFunc: func(context.Context) error {
			return errors.New("unreachable")
		},
	}))

	results := registry.HealthCheckAll(context.Background())
	require.Len(t, results, 2)
	assert.NoError(t, results["healthy"])
	assert.EqualError(t, results["broken"], "unreachable")
}

func TestProviderRegistry_HealthCheckAllBoundsEachCheck(t *testing.T) {
	registry := NewProviderRegistry()
	require.NoError(t, registry.RegisterProvider("slow", &stubProvider{
		name: "slow",
		healthCheckFunc: func(ctx context.Context) error {
			deadline, ok := ctx.Deadline()
			if !ok || time.Until(deadline) > HealthCheckTimeout {
				return errors.New("unbounded check")
			}
			return nil
		},
	}))

	results := registry.HealthCheckAll(context.Background())
	assert.NoError(t, results["slow"])
}

func TestProviderRegistry_GetProviderNotFound(t *testing.T) {
	registry := NewProviderRegistry()
	_, err := registry.GetProvider("deepgram")
	assert.ErrorIs(t, err, ErrProviderNotFound)
	assert.Contains(t, err.Error(), `"deepgram"`)
}

func TestCreateProvider(t *testing.T) {
	RegisterProvider("stub-test", func(config map[string]interface{}) (TranscriptionProvider, error) {
		name, _ := config["name"].(string)
		return &stubProvider{name: name}, nil
	})

	p, err := CreateProvider("stub-test", map[string]interface{}{"name": "configured"})
	require.NoError(t, err)
	assert.Equal(t, "configured", p.GetProviderInfo().Name)
	assert.Contains(t, ListRegisteredProviders(), "stub-test")

	_, err = CreateProvider("not-registered", nil)
	assert.Error(t, err)
}

func TestGetAudioFormatFromFilename(t *testing.T) {
	tests := map[string]AudioFormat{
		"speech.wav":     FormatWAV,
		"SPEECH.MP3":     FormatMP3,
		"voice.note.ogg": FormatOGG,
		"clip.flac":      "",
		"noext":          "",
	}
	for filename, want := range tests {
		assert.Equal(t, want, GetAudioFormatFromFilename(filename), filename)
	}
	assert.Equal(t, "audio/mpeg", FormatMP3.MIMEType())
}
