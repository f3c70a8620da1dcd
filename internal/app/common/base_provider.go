package common

import "deepgram-transcriber/internal/app/api/provider"

// BaseProvider provides common implementation for all providers
type BaseProvider struct {
	Name                string
	DisplayName         string
	Type                provider.ProviderType
	Version             string
	SupportedFormats    []provider.AudioFormat
	SupportedLanguages  []string
	MaxFileSizeMB       int
	SupportsWordLevel   bool
	SupportsDiarization bool
	SupportsStreaming   bool
	RequiresInternet    bool
	RequiresAPIKey      bool
	DefaultModel        string
	AvailableModels     []string
}

// NewBaseProvider creates a new base provider
func NewBaseProvider(name, displayName string, providerType provider.ProviderType, version string) BaseProvider {
	return BaseProvider{
		Name:             name,
		DisplayName:      displayName,
		Type:             providerType,
		Version:          version,
		SupportedFormats: []provider.AudioFormat{provider.FormatWAV, provider.FormatMP3},
	}
}

// GetProviderInfo returns provider information
func (b BaseProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                b.Name,
		DisplayName:         b.DisplayName,
		Type:                b.Type,
		Version:             b.Version,
		SupportedFormats:    b.SupportedFormats,
		SupportedLanguages:  b.SupportedLanguages,
		MaxFileSizeMB:       b.MaxFileSizeMB,
		SupportsWordLevel:   b.SupportsWordLevel,
		SupportsDiarization: b.SupportsDiarization,
		SupportsStreaming:   b.SupportsStreaming,
		RequiresInternet:    b.RequiresInternet,
		RequiresAPIKey:      b.RequiresAPIKey,
		DefaultModel:        b.DefaultModel,
		AvailableModels:     b.AvailableModels,
	}
}

// SupportsFormat reports whether the provider accepts the given format
func (b BaseProvider) SupportsFormat(format provider.AudioFormat) bool {
	for _, f := range b.SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// AddSupportedFormat adds a supported audio format
func (b *BaseProvider) AddSupportedFormat(format provider.AudioFormat) {
	if !b.SupportsFormat(format) {
		b.SupportedFormats = append(b.SupportedFormats, format)
	}
}
