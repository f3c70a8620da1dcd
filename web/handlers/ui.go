package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/middleware"
	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/internal/app/audio"
	"deepgram-transcriber/internal/app/converter/export"
)

const indexTemplate = "index.html"

// PageConfig holds the fixed values shown on the upload page
type PageConfig struct {
	MaxUploadBytes int64
	Model          string
}

type pageData struct {
	Accept     string
	MaxSizeMB  int64
	Model      string
	Error      string
	FileName   string
	Transcript string
	Duration   float64
	RequestID  string
}

// UIHandler serves the HTML upload form
type UIHandler struct {
	service services.TranscriptionService
	page    PageConfig
	logger  *slog.Logger
}

// NewUIHandler creates a handler for the upload page
func NewUIHandler(service services.TranscriptionService, page PageConfig, logger *slog.Logger) *UIHandler {
	if page.MaxUploadBytes <= 0 {
		page.MaxUploadBytes = audio.MaxUploadBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UIHandler{service: service, page: page, logger: logger}
}

func (h *UIHandler) newPage() pageData {
	return pageData{
		Accept:    audio.AcceptAttribute(),
		MaxSizeMB: h.page.MaxUploadBytes / (1024 * 1024),
		Model:     h.page.Model,
	}
}

// Index handles GET /
func (h *UIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, h.newPage())
}

// Transcribe handles POST /transcribe and renders the transcript, or the
// reason the upload failed, into the page
func (h *UIHandler) Transcribe(c *gin.Context) {
	page := h.newPage()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.page.MaxUploadBytes+middleware.MultipartSlack)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			page.Error = audio.ErrFileTooLarge.Error()
			c.HTML(http.StatusRequestEntityTooLarge, indexTemplate, page)
			return
		}
		page.Error = "Please choose an audio file to upload."
		c.HTML(http.StatusBadRequest, indexTemplate, page)
		return
	}
	page.FileName = fileHeader.Filename

	file, err := fileHeader.Open()
	if err != nil {
		page.Error = "Failed to read uploaded file."
		c.HTML(http.StatusBadRequest, indexTemplate, page)
		return
	}
	defer file.Close()

	resp, err := h.service.Transcribe(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		apiErr := errors.FromError(err)
		page.Error = apiErr.Message
		if resp != nil && resp.Error != nil {
			page.Error = resp.Error.Message
		}
		if apiErr.Kind == errors.KindInternal {
			h.logger.Error("Transcription failed", "file", fileHeader.Filename, "error", err)
		}
		c.HTML(apiErr.HTTPStatus(), indexTemplate, page)
		return
	}

	page.Transcript = resp.Transcript
	page.Duration = resp.Duration
	page.RequestID = resp.RequestID
	c.HTML(http.StatusOK, indexTemplate, page)
}

// Download handles POST /download and returns the posted transcript as
// transcription.txt
func (h *UIHandler) Download(c *gin.Context) {
	transcript := c.PostForm("transcript")
	if strings.TrimSpace(transcript) == "" {
		page := h.newPage()
		page.Error = "Nothing to download yet. Transcribe a file first."
		c.HTML(http.StatusBadRequest, indexTemplate, page)
		return
	}

	c.Header("Content-Disposition", export.DownloadDisposition())
	c.Data(http.StatusOK, export.DownloadContentType, []byte(transcript))
}
