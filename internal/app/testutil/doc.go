// Package testutil provides testing utilities for the deepgram-transcriber application.
//
// This package contains three main components:
//
// 1. Mock Provider (mock_provider.go):
//   - MockProvider: testify/mock implementation of provider.TranscriptionProvider
//   - NewFakeDeepgramServer: httptest server answering /listen with a canned body
//
// 2. Mock Services (mock_services.go):
//   - MockTranscriptionService and MockProviderService for handler tests
//
// 3. Log Capture (mock_logger.go):
//   - CaptureHandler: a slog.Handler that records entries for assertions
//
// Canned Deepgram payloads live in the fixtures subpackage so that low-level
// packages can use them without importing the service layer.
//
// # Usage Examples
//
// ## Mock Usage
//
//	func TestConvert(t *testing.T) {
//	    p := testutil.NewMockProvider(t)
//	    p.On("TranscriptWithOptions", mock.Anything, mock.Anything).
//	        Return(&provider.TranscriptionResponse{Raw: fixtures.SampleDeepgramResponse}, nil)
//
//	    c := converter.NewConverter(p, nil, nil)
//	    // ... test assertions
//	}
//
// ## Capturing Logs
//
//	func TestDebugDump(t *testing.T) {
//	    logger, logs := testutil.NewCaptureLogger()
//	    client := deepgram.NewClient(cfg, logger)
//	    // ...
//	    assert.True(t, logs.Has("Full API response"))
//	}
//
// # Thread Safety
//
// All mocks and the capture handler are safe for use from parallel tests.
package testutil
