package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "deepgram-transcriber/internal/app/errors"
	envconfig "deepgram-transcriber/internal/config"
)

// ProvidersConfig represents the complete provider configuration file
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider" validate:"required"`
	Providers       map[string]ProviderConfig `yaml:"providers" validate:"required,min=1,dive"`
	Upload          UploadConfig              `yaml:"upload"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	Type        string                 `yaml:"type" validate:"required,oneof=deepgram"`
	Enabled     bool                   `yaml:"enabled"`
	Auth        map[string]interface{} `yaml:"auth,omitempty"`
	Settings    map[string]interface{} `yaml:"settings,omitempty"`
	Performance PerformanceConfig      `yaml:"performance,omitempty"`
}

// PerformanceConfig holds the network timeouts of a provider
type PerformanceConfig struct {
	ConnectTimeoutSec int `yaml:"connect_timeout_sec,omitempty" validate:"gte=0,lte=600"`
	RequestTimeoutSec int `yaml:"request_timeout_sec,omitempty" validate:"gte=0,lte=1800"`
}

// UploadConfig limits what the upload boundary accepts
type UploadConfig struct {
	MaxSizeMB int    `yaml:"max_size_mb" validate:"gte=1,lte=2048"`
	Dir       string `yaml:"dir,omitempty"`
}

// MaxBytes returns the upload limit in bytes
func (u UploadConfig) MaxBytes() int64 {
	return int64(u.MaxSizeMB) * 1024 * 1024
}

var validate = validator.New()

// LoadProvidersConfig loads provider configuration from a YAML file
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, apperrors.Wrapf(apperrors.ErrFileNotFound, "config file %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseProvidersConfig(data)
}

// ParseProvidersConfig parses, defaults and validates YAML configuration
func ParseProvidersConfig(data []byte) (*ProvidersConfig, error) {
	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	return &config, nil
}

// SaveProvidersConfig saves provider configuration to a YAML file
func SaveProvidersConfig(config *ProvidersConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return apperrors.Wrap(apperrors.ErrFileWriteFailed, err.Error())
	}

	return nil
}

// expandEnvironmentVariables replaces ${VAR} string values in auth and settings
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for _, provider := range c.Providers {
		expandMap(provider.Auth)
		expandMap(provider.Settings)
	}
	c.Upload.Dir = os.ExpandEnv(c.Upload.Dir)
}

func expandMap(m map[string]interface{}) {
	for key, value := range m {
		if strValue, ok := value.(string); ok {
			if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
				envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
				m[key] = os.Getenv(envVar)
			}
		}
	}
}

// setDefaults fills unset timeouts and limits
func (c *ProvidersConfig) setDefaults() {
	if c.DefaultProvider == "" && len(c.Providers) > 0 {
		if _, ok := c.Providers["deepgram"]; ok {
			c.DefaultProvider = "deepgram"
		}
	}

	for name, provider := range c.Providers {
		defaults := envconfig.GetProviderDefaults(provider.Type)
		if provider.Performance.ConnectTimeoutSec == 0 {
			provider.Performance.ConnectTimeoutSec = int(defaults.ConnectTimeout / time.Second)
		}
		if provider.Performance.RequestTimeoutSec == 0 {
			provider.Performance.RequestTimeoutSec = int(defaults.RequestTimeout / time.Second)
		}
		c.Providers[name] = provider
	}

	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = envconfig.DefaultMaxUploadMB
	}
}

// Validate validates the configuration
func (c *ProvidersConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	provider, exists := c.Providers[c.DefaultProvider]
	if !exists {
		return apperrors.InvalidField("default_provider", fmt.Sprintf("provider '%s' does not exist", c.DefaultProvider))
	}
	if !provider.Enabled {
		return apperrors.Wrapf(apperrors.ErrProviderDisabled, "default provider '%s'", c.DefaultProvider)
	}
	if provider.Performance.ConnectTimeoutSec > provider.Performance.RequestTimeoutSec {
		return apperrors.InvalidField("performance.connect_timeout_sec", "must not exceed request_timeout_sec")
	}

	return nil
}

// FactoryConfig returns the map handed to provider.CreateProvider. Secret
// values stay in the returned map only.
func (p ProviderConfig) FactoryConfig() map[string]interface{} {
	settings := make(map[string]interface{}, len(p.Settings)+2)
	for k, v := range p.Settings {
		settings[k] = v
	}
	settings["connect_timeout"] = time.Duration(p.Performance.ConnectTimeoutSec) * time.Second
	settings["request_timeout"] = time.Duration(p.Performance.RequestTimeoutSec) * time.Second

	auth := make(map[string]interface{}, len(p.Auth))
	for k, v := range p.Auth {
		auth[k] = v
	}

	return map[string]interface{}{
		"auth":     auth,
		"settings": settings,
	}
}

// GetDefaultConfigPath returns TRANSCRIBER_CONFIG_PATH, or
// ~/.deepgram-transcriber/providers.yaml
func GetDefaultConfigPath() string {
	if path := os.Getenv("TRANSCRIBER_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}

	return filepath.Join(home, ".deepgram-transcriber", "providers.yaml")
}

// LoadOrDefault loads configPath when it exists and falls back to
// CreateDefaultConfig otherwise, so that a bare DEEPGRAM_API_KEY suffices
func LoadOrDefault(configPath string) (*ProvidersConfig, error) {
	if configPath != "" {
		if _, err := os.Stat(os.ExpandEnv(configPath)); err == nil {
			return LoadProvidersConfig(configPath)
		}
	}

	config := CreateDefaultConfig()
	config.expandEnvironmentVariables()
	config.setDefaults()
	return config, nil
}

// CreateDefaultConfig creates a configuration reproducing the fixed
// Deepgram request options
func CreateDefaultConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultProvider: "deepgram",
		Providers: map[string]ProviderConfig{
			"deepgram": {
				Type:    "deepgram",
				Enabled: true,
				Auth: map[string]interface{}{
					"api_key": "${" + envconfig.DeepgramAPIKeyEnv + "}",
				},
				Settings: map[string]interface{}{
					"model":        envconfig.DefaultDeepgramModel,
					"language":     envconfig.DefaultDeepgramLanguage,
					"smart_format": true,
					"punctuate":    true,
					"diarize":      true,
				},
				Performance: PerformanceConfig{
					ConnectTimeoutSec: int(envconfig.DefaultDeepgramConnectTimeout / time.Second),
					RequestTimeoutSec: int(envconfig.DefaultDeepgramRequestTimeout / time.Second),
				},
			},
		},
		Upload: UploadConfig{
			MaxSizeMB: envconfig.DefaultMaxUploadMB,
		},
	}
}
