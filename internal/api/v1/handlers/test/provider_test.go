package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/api/v1/routes"
	"deepgram-transcriber/internal/app/testutil"
)

func TestProviderRoutes(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "list providers",
			path: "/api/v1/providers",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListProviders", mock.Anything).
					Return([]dto.ProviderResponse{{ID: "deepgram", Name: "Deepgram", IsDefault: true}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				providers := body["providers"].([]interface{})
				require.Len(t, providers, 1)
				assert.Equal(t, "deepgram", providers[0].(map[string]interface{})["id"])
				assert.Equal(t, "deepgram", body["default"])
			},
		},
		{
			name:           "malformed provider id",
			path:           "/api/v1/providers/Deep%20gram",
			setupMocks:     func(*testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Provider ID is malformed", body["message"])
			},
		},
		{
			name: "get provider",
			path: "/api/v1/providers/deepgram",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProvider", mock.Anything, "deepgram").
					Return(&dto.ProviderResponse{
						ID:           "deepgram",
						HealthStatus: "healthy",
						Capabilities: dto.ProviderCapabilities{SupportsModels: []string{"nova-2"}},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "healthy", body["health_status"])
				caps := body["capabilities"].(map[string]interface{})
				assert.Equal(t, []interface{}{"nova-2"}, caps["supports_models"])
			},
		},
		{
			name: "unknown provider",
			path: "/api/v1/providers/whisper",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProvider", mock.Anything, "whisper").
					Return(nil, errors.NewNotFoundError("provider")).Once()
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
				assert.Equal(t, "provider not found", body["message"])
			},
		},
		{
			name: "provider status",
			path: "/api/v1/providers/deepgram/status",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProviderStatus", mock.Anything, "deepgram").
					Return(&dto.ProviderStatusResponse{ID: "deepgram", Status: "unhealthy", ErrorMessage: "deepgram: Invalid API key", CheckedAt: time.Now()}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "unhealthy", body["status"])
				assert.Equal(t, "deepgram: Invalid API key", body["error_message"])
			},
		},
		{
			name: "provider stats",
			path: "/api/v1/providers/deepgram/stats",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("GetProviderStats", mock.Anything, "deepgram").
					Return(&dto.ProviderStatsResponse{ID: "deepgram", TotalRequests: 3, SuccessRate: 2.0 / 3.0}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(3), body["total_requests"])
				assert.InDelta(t, 0.667, body["success_rate"], 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			routes.RegisterRoutes(router.Group("/api/v1"), &routes.ServiceContainer{
				TranscriptionService: mockServices.TranscriptionService,
				ProviderService:      mockServices.ProviderService,
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
			tt.validateBody(t, responseBody)
		})
	}
}
