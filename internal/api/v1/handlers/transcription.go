package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/middleware"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/internal/app/audio"
	"deepgram-transcriber/internal/app/converter/export"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Create handles POST /api/v1/transcriptions
// Transcribes an uploaded audio file synchronously
//
// @Summary Transcribe an audio file
// @Description Uploads a wav, mp3 or ogg file (at most 100MB), sends it to Deepgram and returns the transcript. Provider failures return the failed transcription with its error.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscriptionResponse "Transcript"
// @Failure 400 {object} errors.APIError "Empty file"
// @Failure 413 {object} errors.APIError "File too large"
// @Failure 415 {object} errors.APIError "Unsupported file type"
// @Failure 422 {object} errors.APIError "No file uploaded"
// @Failure 502 {object} dto.TranscriptionResponse "Deepgram request or response failed"
// @Failure 504 {object} dto.TranscriptionResponse "Deepgram timed out"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			middleware.HandleError(c, errors.FromUploadError(audio.ErrFileTooLarge))
			return
		}
		middleware.HandleError(c, errors.NewValidationError("No file uploaded", map[string]string{
			"file": "is required",
		}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read uploaded file"))
		return
	}
	defer file.Close()

	response, err := h.service.Transcribe(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if response != nil {
			c.JSON(errors.FromError(err).HTTPStatus(), response)
			return
		}
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Download handles POST /api/v1/transcriptions/download
// Returns a transcript as a plain text attachment
//
// @Summary Download a transcript
// @Description Returns the posted transcript as transcription.txt
// @Tags transcriptions
// @Accept json
// @Produce plain
// @Param request body dto.DownloadRequest true "Transcript to download"
// @Success 200 {string} string "transcription.txt"
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /transcriptions/download [post]
func (h *TranscriptionHandler) Download(c *gin.Context) {
	var req dto.DownloadRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", export.DownloadDisposition())
	c.Data(http.StatusOK, export.DownloadContentType, []byte(req.Transcript))
}
