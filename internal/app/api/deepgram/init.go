package deepgram

import (
	"fmt"
	"log/slog"
	"time"

	"deepgram-transcriber/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(ProviderName, createDeepgramProvider)
}

func createDeepgramProvider(config map[string]interface{}) (provider.TranscriptionProvider, error) {
	settings, ok := config["settings"].(map[string]interface{})
	if !ok {
		settings = make(map[string]interface{})
	}

	auth, ok := config["auth"].(map[string]interface{})
	if !ok {
		auth = make(map[string]interface{})
	}

	apiKey, _ := auth["api_key"].(string)
	if apiKey == "" {
		return nil, fmt.Errorf("deepgram provider requires 'api_key' in auth configuration")
	}

	logger, _ := config["logger"].(*slog.Logger)

	return NewClientFromSettings(settings, apiKey, logger), nil
}

// NewClientFromSettings creates a client from generic settings
func NewClientFromSettings(settings map[string]interface{}, apiKey string, logger *slog.Logger) *Client {
	cfg := DefaultConfig(apiKey)

	if baseURL, ok := settings["base_url"].(string); ok && baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model, ok := settings["model"].(string); ok && model != "" {
		cfg.Options.Model = model
	}
	if language, ok := settings["language"].(string); ok && language != "" {
		cfg.Options.Language = language
	}
	if v, ok := settings["smart_format"].(bool); ok {
		cfg.Options.SmartFormat = v
	}
	if v, ok := settings["punctuate"].(bool); ok {
		cfg.Options.Punctuate = v
	}
	if v, ok := settings["diarize"].(bool); ok {
		cfg.Options.Diarize = v
	}
	if v, ok := settings["connect_timeout"].(time.Duration); ok && v > 0 {
		cfg.ConnectTimeout = v
	}
	if v, ok := settings["request_timeout"].(time.Duration); ok && v > 0 {
		cfg.RequestTimeout = v
	}

	return NewClient(cfg, logger)
}
