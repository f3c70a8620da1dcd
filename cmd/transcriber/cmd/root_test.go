package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^v\d+\.\d+\.\d+\n$`, out)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	t.Setenv("DEEPGRAM_API_KEY", "0123456789abcdef0123456789abcdef01234567")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "default provider deepgram")
}

func TestTranscribeCommand_RejectsBeforeCallingDeepgram(t *testing.T) {
	t.Setenv("DEEPGRAM_API_KEY", "0123456789abcdef0123456789abcdef01234567")
	dir := t.TempDir()

	_, err := execute(t, "transcribe", filepath.Join(dir, "notes.txt"), "--config", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)

	_, err = execute(t, "transcribe", filepath.Join(dir, "a.wav"), "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported export format")

	_, err = execute(t, "transcribe", filepath.Join(dir, "a.wav"), "--format", "xlsx")
	assert.ErrorContains(t, err, "requires --output")
}
