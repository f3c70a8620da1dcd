package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	apperrors "deepgram-transcriber/internal/app/errors"
)

// MaxTimeout caps every configured timeout
const MaxTimeout = 30 * time.Minute

// minAPIKeyLength holds the shortest credential each provider issues
var minAPIKeyLength = map[string]int{
	"Deepgram": 32,
}

// ValidateTimeout accepts durations in (0, MaxTimeout]
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 || timeout > MaxTimeout {
		return apperrors.OutOfRange(name+" timeout", "0s", MaxTimeout)
	}
	return nil
}

// ValidateAPIKey rejects empty keys, keys with whitespace and keys shorter
// than the provider issues. Errors match ErrMissingAPIKey or ErrInvalidAPIKey.
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return apperrors.Wrapf(apperrors.ErrMissingAPIKey, "%s", keyType)
	}
	if strings.IndexFunc(apiKey, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %s API key contains whitespace", apperrors.ErrInvalidAPIKey, keyType)
	}
	if min, ok := minAPIKeyLength[keyType]; ok && len(apiKey) < min {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidAPIKey, apperrors.TooShort(keyType+" API key", min))
	}
	return nil
}

// ValidateURL requires an http or https URL
func ValidateURL(url string, name string) error {
	if url == "" {
		return apperrors.RequiredField(name + " URL")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return apperrors.InvalidFormat(name+" URL", "http:// or https:// prefix")
	}
	return nil
}

// ValidatePort accepts 1-65535
func ValidatePort(port string, name string) error {
	if port == "" {
		return apperrors.RequiredField(name + " port")
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return apperrors.InvalidFormat(name+" port", "a number")
	}
	if n < 1 || n > 65535 {
		return apperrors.OutOfRange(name+" port", 1, 65535)
	}
	return nil
}
