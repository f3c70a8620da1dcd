package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"

	"deepgram-transcriber/internal/app/api/provider"
)

// MockProvider is a testify/mock implementation of provider.TranscriptionProvider.
// GetProviderInfo and ValidateConfiguration are not mocked: they return Info
// and ValidateErr so that registries can be built without extra expectations.
type MockProvider struct {
	mock.Mock
	Info        provider.ProviderInfo
	ValidateErr error
}

func NewMockProvider(t *testing.T) *MockProvider {
	m := &MockProvider{
		Info: provider.ProviderInfo{
			Name:             "deepgram",
			DisplayName:      "Deepgram",
			Type:             provider.ProviderTypeRemote,
			SupportedFormats: []provider.AudioFormat{provider.FormatWAV, provider.FormatMP3, provider.FormatOGG},
			DefaultModel:     "nova-2",
			RequiresAPIKey:   true,
		},
	}
	m.Test(t)
	return m
}

func (m *MockProvider) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.TranscriptionResponse), args.Error(1)
}

func (m *MockProvider) GetProviderInfo() provider.ProviderInfo {
	return m.Info
}

func (m *MockProvider) ValidateConfiguration() error {
	return m.ValidateErr
}

func (m *MockProvider) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// FakeDeepgramServer answers every request with a fixed status and body
type FakeDeepgramServer struct {
	*httptest.Server
	calls int32
}

// NewFakeDeepgramServer starts a server that is closed when the test ends
func NewFakeDeepgramServer(t *testing.T, status int, body string) *FakeDeepgramServer {
	t.Helper()
	f := &FakeDeepgramServer{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// Calls reports how many requests reached the server
func (f *FakeDeepgramServer) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}
