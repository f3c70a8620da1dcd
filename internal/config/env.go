package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DeepgramAPIKeyEnv names the variable holding the Deepgram credential
const DeepgramAPIKeyEnv = "DEEPGRAM_API_KEY"

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Deepgram string
}

// LoadEnv loads environment variables from the first .env file found and
// returns its path, or "" when none exists. Variables already set in the
// process environment win over the file.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Look for .env file, but don't fail if not found (environment variables might be set system-wide)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// An unset key is not an error here; see RequireAPIKeys.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Deepgram: strings.TrimSpace(os.Getenv(DeepgramAPIKeyEnv)),
	}

	if apiKeys.Deepgram != "" {
		if err := ValidateAPIKey(apiKeys.Deepgram, "Deepgram"); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", DeepgramAPIKeyEnv, err)
		}
	}

	return apiKeys, nil
}

// RequireAPIKeys fails when the Deepgram key is missing; every transcription needs it
func RequireAPIKeys(apiKeys *APIKeys) error {
	if apiKeys == nil || apiKeys.Deepgram == "" {
		return fmt.Errorf("transcription requires a Deepgram API key - please set %s in environment or .env file", DeepgramAPIKeyEnv)
	}
	return nil
}

// InitializeConfig loads environment and validates configuration
// This is the main entry point for configuration loading
func InitializeConfig() (*APIKeys, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
