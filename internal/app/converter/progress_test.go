package converter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/testutil"
	"deepgram-transcriber/internal/app/testutil/fixtures"
)

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestShouldShowProgress_Forced(t *testing.T) {
	assert.True(t, ShouldShowProgress(true))
}

func TestProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(ProgressConfig{Enabled: false})
	s := pm.CreateSpinner("Transcribing")

	assert.NotPanics(t, func() {
		s.Done()
		s.Fail()
		pm.Wait()
		pm.Shutdown()
	})
}

func TestProgressAwareConverter_ConvertWithProgress(t *testing.T) {
	p := testutil.NewMockProvider(t)
	p.On("TranscriptWithOptions", mock.Anything, mock.Anything).
		Return(&provider.TranscriptionResponse{Raw: fixtures.SampleDeepgramResponse}, nil)

	var out bytes.Buffer
	pac := NewProgressAwareConverter(NewConverter(p, nil, nil), ProgressConfig{Enabled: true, Writer: &out})

	result, err := pac.ConvertWithProgress(context.Background(), Source{Path: "/tmp/a.wav", FileName: "a.wav"})
	require.NoError(t, err)
	assert.Equal(t, fixtures.SampleTranscript, result.Transcription)
	assert.Contains(t, out.String(), "Transcribing a.wav")
	assert.Contains(t, out.String(), "✓")
	assert.NotContains(t, out.String(), "0s0s")
}

func TestProgressAwareConverter_Failure(t *testing.T) {
	p := testutil.NewMockProvider(t)
	p.On("TranscriptWithOptions", mock.Anything, mock.Anything).
		Return(nil, &provider.TranscriptionError{Code: provider.CodeTimeout, Provider: "deepgram", Message: "request timed out"})

	var out bytes.Buffer
	pac := NewProgressAwareConverter(NewConverter(p, nil, nil), ProgressConfig{Enabled: true, Writer: &out})

	result, err := pac.ConvertWithProgress(context.Background(), Source{Path: "/tmp/a.wav", FileName: "a.wav"})
	require.Error(t, err)
	assert.Equal(t, "deepgram: request timed out", result.ErrorMessage)
	assert.Contains(t, out.String(), "Transcribing a.wav")
	assert.Contains(t, out.String(), "✗")
	assert.NotContains(t, out.String(), "✓")
}
