package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/app/testutil"
	"deepgram-transcriber/internal/config"
)

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		Environment:  "test",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
	}
}

func newTestServer(t *testing.T) (*Server, *testutil.MockServices) {
	t.Helper()
	ms := testutil.NewMockServices(t)
	logger, _ := testutil.NewCaptureLogger()
	srv := NewServer(testConfig(), Options{
		TranscriptionService: ms.TranscriptionService,
		ProviderService:      ms.ProviderService,
		Registry:             prometheus.NewRegistry(),
		MaxUploadBytes:       1 << 10,
		Model:                "nova-2",
	}, logger)
	return srv, ms
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv, ms := newTestServer(t)
	ms.ProviderService.On("GetProvider", mock.Anything, "deepgram").
		Return(&dto.ProviderResponse{ID: "deepgram"}, nil).Once()

	health := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"healthy"`)
	assert.NotEmpty(t, health.Header().Get("X-Request-ID"))

	info := get(t, srv, "/api")
	assert.Equal(t, http.StatusOK, info.Code)
	assert.Contains(t, info.Body.String(), "/api/v1/transcriptions")

	providerResp := get(t, srv, "/api/v1/providers/deepgram")
	assert.Equal(t, http.StatusOK, providerResp.Code)

	page := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "nova-2")

	docs := get(t, srv, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, docs.Code)
	assert.Contains(t, docs.Body.String(), "/transcriptions/download")

	metrics := get(t, srv, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `transcriber_http_requests_total{method="GET",route="/api/v1/providers/:id",status="200"} 1`)
}

func TestServer_RejectsOversizedAPIUpload(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", strings.NewReader(strings.Repeat("x", 2<<20)))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "payload_too_large")
}

func TestServer_StartShutdown(t *testing.T) {
	srv, _ := newTestServer(t)
	require.NoError(t, srv.Start())

	resp, err := http.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, err = http.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
	assert.Error(t, err)
}
