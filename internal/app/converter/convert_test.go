package converter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/testutil"
	"deepgram-transcriber/internal/app/testutil/fixtures"
	"deepgram-transcriber/internal/app/transcript"
)

func TestConverter_Convert(t *testing.T) {
	p := testutil.NewMockProvider(t)
	metrics := provider.NewProviderMetrics(nil)
	logger, logs := testutil.NewCaptureLogger()

	p.On("TranscriptWithOptions", mock.Anything, mock.MatchedBy(func(r *provider.TranscriptionRequest) bool {
		return r.InputFilePath == "/tmp/staged.wav" && r.Format == provider.FormatWAV && r.Options.Language == "hi"
	})).Return(&provider.TranscriptionResponse{
		Raw:            fixtures.SampleDeepgramResponse,
		RequestID:      "sample-request-id",
		Duration:       2.5,
		ModelUsed:      "nova-2",
		ProcessingTime: 120 * time.Millisecond,
	}, nil)

	c := NewConverter(p, metrics, logger)
	result, err := c.Convert(context.Background(), Source{
		Path:     "/tmp/staged.wav",
		FileName: "greeting.wav",
		Format:   provider.FormatWAV,
		Options:  provider.TranscriptionOptions{Model: "nova-2", Language: "hi"},
	})
	require.NoError(t, err)
	p.AssertExpectations(t)

	assert.Equal(t, fixtures.SampleTranscript, result.Transcription)
	assert.Equal(t, "greeting.wav", result.FileName)
	assert.Equal(t, "sample-request-id", result.RequestID)
	assert.Equal(t, "nova-2", result.Model)
	assert.Equal(t, "hi", result.Language)
	assert.InDelta(t, 2.5, result.AudioDuration, 0.0001)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, 4, result.WordCount)
	require.Len(t, result.Words, 4)
	assert.Equal(t, "हैं?", result.Words[3].PunctuatedWord)
	require.NotNil(t, result.Words[0].Speaker)
	assert.Equal(t, 0, *result.Words[0].Speaker)

	stats := metrics.GetProviderMetrics("deepgram")
	assert.Equal(t, int64(1), stats.SuccessfulRequests)
	assert.True(t, logs.Has("Transcription completed"))
}

func TestConverter_Convert_CountsEmptyTokens(t *testing.T) {
	p := testutil.NewMockProvider(t)
	p.On("TranscriptWithOptions", mock.Anything, mock.Anything).Return(&provider.TranscriptionResponse{
		Raw: `{"results":{"channels":[{"alternatives":[{"words":[{"word":"a"},{"word":""},{"word":"b"}]}]}]}}`,
	}, nil)

	result, err := NewConverter(p, nil, nil).Convert(context.Background(), Source{Path: "/tmp/a.wav", FileName: "a.wav"})
	require.NoError(t, err)
	assert.Equal(t, "a  b", result.Transcription)
	assert.Equal(t, 3, result.WordCount)
}

func TestConverter_Convert_ProviderError(t *testing.T) {
	p := testutil.NewMockProvider(t)
	metrics := provider.NewProviderMetrics(nil)

	providerErr := &provider.TranscriptionError{
		Code:       provider.CodeAuthenticationFailed,
		Message:    "authentication failed: Invalid credentials.",
		Provider:   "deepgram",
		StatusCode: 401,
	}
	p.On("TranscriptWithOptions", mock.Anything, mock.Anything).Return(nil, providerErr)

	result, err := NewConverter(p, metrics, nil).Convert(context.Background(), Source{Path: "/tmp/x.mp3", FileName: "x.mp3"})
	require.Error(t, err)
	assert.Same(t, providerErr, err)
	assert.Equal(t, providerErr.Error(), result.ErrorMessage)
	assert.Empty(t, result.Transcription)

	stats := metrics.GetProviderMetrics("deepgram")
	assert.Equal(t, int64(1), stats.FailedRequests)
	assert.Equal(t, int64(1), stats.ErrorBreakdown[provider.CodeAuthenticationFailed])
}

func TestConverter_Convert_ExtractError(t *testing.T) {
	p := testutil.NewMockProvider(t)
	p.On("TranscriptWithOptions", mock.Anything, mock.Anything).
		Return(&provider.TranscriptionResponse{Raw: `{"results":{"channels":[]}}`, RequestID: "r-1"}, nil)

	result, err := NewConverter(p, nil, nil).Convert(context.Background(), Source{Path: "/tmp/x.ogg", FileName: "x.ogg"})
	require.Error(t, err)

	eErr, ok := transcript.AsExtractError(err)
	require.True(t, ok)
	assert.Equal(t, transcript.KindInvalidStructure, eErr.Kind)
	assert.Equal(t, transcript.MsgInvalidStructure, result.ErrorMessage)
	assert.Equal(t, "r-1", result.RequestID)
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, provider.CodeTimeout, FailureKind(&provider.TranscriptionError{Code: provider.CodeTimeout}))
	assert.Equal(t, "empty_response", FailureKind(&transcript.ExtractError{Kind: transcript.KindEmptyResponse}))
	assert.Equal(t, "*errors.errorString", FailureKind(assert.AnError))
}
