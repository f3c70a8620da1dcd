package web

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/testutil"
	"deepgram-transcriber/internal/app/testutil/fixtures"
	"deepgram-transcriber/internal/app/transcript"
	"deepgram-transcriber/web/handlers"
)

func setupRouter(t *testing.T, maxUpload int64) (*gin.Engine, *testutil.MockServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ms := testutil.NewMockServices(t)
	logger, _ := testutil.NewCaptureLogger()
	Register(router, ms.TranscriptionService, handlers.PageConfig{MaxUploadBytes: maxUpload, Model: "nova-2"}, logger)
	return router, ms
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestIndex(t *testing.T) {
	router, _ := setupRouter(t, 0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `accept=".wav,.mp3,.ogg"`)
	assert.Contains(t, body, "up to 100MB")
	assert.NotContains(t, body, "<textarea")
}

func TestStaticAssets(t *testing.T) {
	router, _ := setupRouter(t, 0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "textarea")
}

func TestTranscribe_Success(t *testing.T) {
	router, ms := setupRouter(t, 0)
	ms.TranscriptionService.On("Transcribe", mock.Anything, "greeting.ogg", int64(4), []byte("OggS")).
		Return(&dto.TranscriptionResponse{
			Status:     dto.StatusCompleted,
			RequestID:  "sample-request-id",
			Duration:   2.5,
			Transcript: fixtures.SampleTranscript,
		}, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "greeting.ogg", []byte("OggS")))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<textarea id="transcript" rows="12" readonly>`+fixtures.SampleTranscript+`</textarea>`)
	assert.Contains(t, body, `action="/download"`)
	assert.Contains(t, body, "2.50s")
	assert.NotContains(t, body, `role="alert"`)
}

func TestTranscribe_Errors(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    []byte
		maxUpload  int64
		setupMocks func(*testutil.MockServices)
		wantStatus int
		wantText   string
	}{
		{
			name:     "unsupported type",
			filename: "notes.pdf",
			content:  []byte("%PDF"),
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("Transcribe", mock.Anything, "notes.pdf", mock.Anything, mock.Anything).
					Return(nil, &errors.APIError{
						Kind:    errors.KindUnsupportedMedia,
						Message: "Unsupported file type. Please upload a wav, mp3 or ogg file.",
					}).Once()
			},
			wantStatus: http.StatusUnsupportedMediaType,
			wantText:   "Unsupported file type. Please upload a wav, mp3 or ogg file.",
		},
		{
			name:       "body over the limit",
			filename:   "long.wav",
			content:    bytes.Repeat([]byte("x"), 2<<20),
			maxUpload:  1 << 10,
			setupMocks: func(ms *testutil.MockServices) {},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantText:   "File size too large. Please upload a file smaller than 100MB.",
		},
		{
			name:     "empty deepgram response",
			filename: "greeting.wav",
			content:  []byte("RIFF"),
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("Transcribe", mock.Anything, "greeting.wav", mock.Anything, mock.Anything).
					Return(&dto.TranscriptionResponse{
						Status: dto.StatusFailed,
						Error: &dto.TranscriptionErrorInfo{
							Kind:    string(transcript.KindEmptyResponse),
							Message: transcript.MsgEmptyResponse,
						},
					}, &transcript.ExtractError{Kind: transcript.KindEmptyResponse, Message: transcript.MsgEmptyResponse}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantText:   transcript.MsgEmptyResponse,
		},
		{
			name:     "authentication failure",
			filename: "greeting.mp3",
			content:  []byte("ID3"),
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("Transcribe", mock.Anything, "greeting.mp3", mock.Anything, mock.Anything).
					Return(nil, &provider.TranscriptionError{Code: provider.CodeAuthenticationFailed, Message: "Invalid API key", Provider: "deepgram"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantText:   "deepgram: Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ms := setupRouter(t, tt.maxUpload)
			tt.setupMocks(ms)

			req := uploadRequest(t, tt.filename, tt.content)
			req.ContentLength = -1
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `role="alert"`)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.NotContains(t, rec.Body.String(), "<textarea")
		})
	}
}

func TestTranscribe_NoFile(t *testing.T) {
	router, _ := setupRouter(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please choose an audio file")
}

func TestDownload(t *testing.T) {
	router, _ := setupRouter(t, 0)

	form := url.Values{"transcript": {fixtures.SampleTranscript}}
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=transcription.txt", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, fixtures.SampleTranscript, rec.Body.String())

	t.Run("empty transcript", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader("transcript="))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nothing to download yet")
	})
}
