package config

import (
	"fmt"
	"net"
	"os"
	"time"
)

// ServerConfig holds the HTTP server settings read from the environment
type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetServerConfig returns server configuration from environment or defaults
func GetServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Host:        getEnvOrDefault("HOST", DefaultHTTPHost),
		Port:        getEnvOrDefault("PORT", DefaultHTTPPort),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
	}

	var err error
	if cfg.ReadTimeout, err = getDurationOrDefault("READ_TIMEOUT", DefaultReadTimeout); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getDurationOrDefault("WRITE_TIMEOUT", DefaultWriteTimeout); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getDurationOrDefault("IDLE_TIMEOUT", DefaultIdleTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the port and timeouts
func (c *ServerConfig) Validate() error {
	if err := ValidatePort(c.Port, "HTTP"); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"read":  c.ReadTimeout,
		"write": c.WriteTimeout,
		"idle":  c.IdleTimeout,
	} {
		if err := ValidateTimeout(d, name); err != nil {
			return err
		}
	}
	return nil
}

// Addr returns host:port
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProduction reports whether ENVIRONMENT is production
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationOrDefault parses a Go duration such as "90s" from the environment
func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
