package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/app/audio"
	"deepgram-transcriber/internal/app/converter"
	"deepgram-transcriber/internal/app/util/files"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	converter *converter.Converter
	uploadDir string
	maxBytes  int64
	logger    *slog.Logger
}

// NewTranscriptionService creates a new transcription service. Uploads are
// staged under uploadDir (os.TempDir() when empty) and limited to maxBytes
// (audio.MaxUploadBytes when zero).
func NewTranscriptionService(conv *converter.Converter, uploadDir string, maxBytes int64, logger *slog.Logger) TranscriptionService {
	if maxBytes <= 0 {
		maxBytes = audio.MaxUploadBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TranscriptionServiceImpl{
		converter: conv,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// Transcribe implements TranscriptionService
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, filename string, size int64, body io.Reader) (*dto.TranscriptionResponse, error) {
	format, err := audio.ValidateUpload(filename, size, s.maxBytes)
	if err != nil {
		s.logger.Info("Upload rejected", "file", filename, "size", size, "error", err)
		return nil, errors.FromUploadError(err)
	}

	// Read one byte past the limit so a lying size is still caught
	staged, err := files.StageUpload(s.uploadDir, io.LimitReader(body, s.maxBytes+1), filename)
	if err != nil {
		s.logger.Error("Failed to stage upload", "file", filename, "error", err)
		return nil, errors.NewInternalError("Failed to store upload")
	}
	defer func() {
		if err := staged.Cleanup(); err != nil {
			s.logger.Warn("Failed to remove staged upload", "path", staged.Path, "error", err)
		}
	}()

	if staged.Info.Size > s.maxBytes {
		return nil, errors.FromUploadError(audio.ErrFileTooLarge)
	}
	if staged.Info.Size == 0 {
		return nil, errors.FromUploadError(audio.ErrEmptyFile)
	}

	start := time.Now()
	result, convErr := s.converter.Convert(ctx, converter.Source{
		Path:     staged.Path,
		FileName: staged.Info.Name,
		Format:   format,
	})
	resp := dto.ToTranscriptionResponse(result, staged.Info, string(format), time.Since(start))

	if convErr != nil {
		resp.Error = &dto.TranscriptionErrorInfo{
			Kind:    converter.FailureKind(convErr),
			Message: convErr.Error(),
		}
		return &resp, convErr
	}

	return &resp, nil
}
