package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"deepgram-transcriber/internal/api/v1/dto"
)

// MockServices bundles the service mocks a handler test needs
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	ProviderService      *MockProviderService
}

// NewMockServices creates service mocks bound to t
func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		TranscriptionService: &MockTranscriptionService{},
		ProviderService:      &MockProviderService{},
	}
	ms.TranscriptionService.Test(t)
	ms.ProviderService.Test(t)
	t.Cleanup(func() {
		ms.TranscriptionService.AssertExpectations(t)
		ms.ProviderService.AssertExpectations(t)
	})
	return ms
}

// MockTranscriptionService mocks services.TranscriptionService. The body is
// drained and its contents passed to Called so tests can match on them.
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, filename string, size int64, body io.Reader) (*dto.TranscriptionResponse, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	args := m.Called(ctx, filename, size, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

// MockProviderService mocks services.ProviderService
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) ListProviders(ctx context.Context) ([]dto.ProviderResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProviderResponse), args.Error(1)
}

func (m *MockProviderService) GetProvider(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderResponse), args.Error(1)
}

func (m *MockProviderService) GetProviderStatus(ctx context.Context, id string) (*dto.ProviderStatusResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderStatusResponse), args.Error(1)
}

func (m *MockProviderService) GetProviderStats(ctx context.Context, id string) (*dto.ProviderStatsResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProviderStatsResponse), args.Error(1)
}
