package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/model"
	"deepgram-transcriber/internal/app/transcript"
)

// Converter runs one audio file through a provider and the transcript
// extractor. It holds no per-call state and is safe for concurrent use.
type Converter struct {
	provider provider.TranscriptionProvider
	metrics  provider.ProviderMetrics
	logger   *slog.Logger
}

func NewConverter(p provider.TranscriptionProvider, metrics provider.ProviderMetrics, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		provider: p,
		metrics:  metrics,
		logger:   logger,
	}
}

// Source describes the audio handed to Convert
type Source struct {
	Path     string
	FileName string
	Format   provider.AudioFormat
	Options  provider.TranscriptionOptions
}

// Convert transcribes the file at src.Path. On failure the returned
// Transcription still carries the error message, so callers that only render
// text can display it. The error is a *provider.TranscriptionError or a
// *transcript.ExtractError.
func (c *Converter) Convert(ctx context.Context, src Source) (*model.Transcription, error) {
	providerName := c.provider.GetProviderInfo().Name
	result := &model.Transcription{
		FileName:           src.FileName,
		LastConversionTime: time.Now(),
	}

	c.logger.Info("Processing file", "file", src.FileName, "provider", providerName)

	resp, err := c.provider.TranscriptWithOptions(ctx, &provider.TranscriptionRequest{
		InputFilePath: src.Path,
		Format:        src.Format,
		Options:       src.Options,
	})
	if err != nil {
		c.recordFailure(providerName, err)
		result.ErrorMessage = err.Error()
		c.logger.Warn("Transcription error", "file", src.FileName, "error", err)
		return result, err
	}

	result.RequestID = resp.RequestID
	result.Model = resp.ModelUsed
	result.Language = resp.Language
	if result.Language == "" {
		result.Language = src.Options.Language
	}
	result.AudioDuration = resp.Duration

	text, err := transcript.Extract(resp.Raw)
	if err != nil {
		c.recordFailure(providerName, err)
		result.ErrorMessage = err.Error()
		c.logger.Warn("Transcript extraction failed", "file", src.FileName, "request_id", resp.RequestID, "error", err)
		return result, err
	}

	result.Transcription = text
	result.WordCount, _ = transcript.WordCount(resp.Raw)
	result.Words = wordsOf(resp.Raw)
	if c.metrics != nil {
		c.metrics.RecordSuccess(providerName, resp.ProcessingTime, resp.Duration)
	}

	c.logger.Info("Transcription completed",
		"file", src.FileName,
		"request_id", resp.RequestID,
		"duration_sec", resp.Duration,
		"processing_ms", resp.ProcessingTime.Milliseconds(),
	)
	return result, nil
}

func (c *Converter) recordFailure(providerName string, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordFailure(providerName, FailureKind(err))
}

// FailureKind names err for metrics labels
func FailureKind(err error) string {
	if tErr, ok := provider.AsTranscriptionError(err); ok {
		return tErr.Code
	}
	if eErr, ok := transcript.AsExtractError(err); ok {
		return string(eErr.Kind)
	}
	return fmt.Sprintf("%T", err)
}

// wordsOf decodes the word timings of the first alternative. Extraction has
// already validated the shape, so a decode failure only drops the timings.
func wordsOf(raw string) []model.DeepgramWord {
	var parsed model.DeepgramResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	alt, ok := parsed.FirstAlternative()
	if !ok {
		return nil
	}
	return alt.Words
}
