package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))

	err := Wrapf(ErrFileNotFound, "config file %s", "/tmp/providers.yaml")
	assert.EqualError(t, err, "config file /tmp/providers.yaml: file not found")
	assert.True(t, stderrors.Is(err, ErrFileNotFound))
	assert.False(t, stderrors.Is(err, ErrFileWriteFailed))
}

func TestIsComparesMessages(t *testing.T) {
	assert.True(t, stderrors.Is(New("provider is disabled"), ErrProviderDisabled))
	assert.False(t, stderrors.Is(stderrors.New("provider is disabled"), ErrProviderDisabled))
}

func TestFieldHelpers(t *testing.T) {
	assert.EqualError(t, RequiredField("HTTP port"), "HTTP port is required")
	assert.EqualError(t, InvalidField("default_provider", "provider 'x' does not exist"),
		"default_provider is invalid: provider 'x' does not exist")
	assert.EqualError(t, InvalidFormat("base URL", "http:// or https:// prefix"),
		"base URL format invalid: expected http:// or https:// prefix")
	assert.EqualError(t, TooShort("Deepgram API key", 32), "Deepgram API key too short (minimum 32 characters)")
	assert.EqualError(t, OutOfRange("HTTP port", 1, 65535), "HTTP port out of range (must be between 1 and 65535)")
}
