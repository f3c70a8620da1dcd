package config

import "time"

// Provider default configuration constants
const (
	// Timeout defaults
	DefaultDeepgramConnectTimeout = 10 * time.Second
	DefaultDeepgramRequestTimeout = 300 * time.Second
	DefaultHTTPTimeout            = 120 * time.Second

	// Network defaults
	DefaultHTTPHost = "0.0.0.0"
	DefaultHTTPPort = "8080"

	// Server timeouts leave room for the slowest provider call
	DefaultReadTimeout  = 60 * time.Second
	DefaultWriteTimeout = DefaultDeepgramRequestTimeout + 30*time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// Upload defaults
	DefaultMaxUploadMB = 100

	// Model defaults
	DefaultDeepgramModel    = "nova-2"
	DefaultDeepgramLanguage = "hi"
)

// ProviderDefaults holds all default configurations for providers
type ProviderDefaults struct {
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// GetProviderDefaults returns default configuration for a given provider type
func GetProviderDefaults(providerType string) ProviderDefaults {
	switch providerType {
	case "deepgram":
		return ProviderDefaults{
			ConnectTimeout: DefaultDeepgramConnectTimeout,
			RequestTimeout: DefaultDeepgramRequestTimeout,
		}
	default:
		// Return sensible defaults for unknown providers
		return ProviderDefaults{
			ConnectTimeout: 10 * time.Second,
			RequestTimeout: DefaultHTTPTimeout,
		}
	}
}
