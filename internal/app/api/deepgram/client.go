package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/common"
	"deepgram-transcriber/internal/app/model"
	envconfig "deepgram-transcriber/internal/config"
)

const (
	ProviderName = "deepgram"

	DefaultBaseURL        = "https://api.deepgram.com/v1"
	DefaultModel          = "nova-2"
	DefaultLanguage       = "hi"
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 300 * time.Second
)

// Config represents configuration for the Deepgram pre-recorded API client
type Config struct {
	APIKey         string
	BaseURL        string
	Options        provider.TranscriptionOptions
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	UserAgent      string
}

// DefaultOptions are the recognition options every upload is sent with
func DefaultOptions() provider.TranscriptionOptions {
	return provider.TranscriptionOptions{
		Model:       DefaultModel,
		Language:    DefaultLanguage,
		SmartFormat: true,
		Punctuate:   true,
		Diarize:     true,
	}
}

// DefaultConfig returns a configuration using the given credential
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:         apiKey,
		BaseURL:        DefaultBaseURL,
		Options:        DefaultOptions(),
		ConnectTimeout: DefaultConnectTimeout,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Client implements provider.TranscriptionProvider for Deepgram
type Client struct {
	common.BaseProvider
	config Config
	client *http.Client
	logger *slog.Logger
}

// errorBody is the JSON error envelope returned by Deepgram on non-2xx
type errorBody struct {
	ErrCode   string `json:"err_code"`
	ErrMsg    string `json:"err_msg"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// NewClient creates a new Deepgram client
func NewClient(config Config, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Options.Model == "" {
		config.Options.Model = DefaultModel
	}
	if config.Options.Language == "" {
		config.Options.Language = DefaultLanguage
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = "deepgram-transcriber/1.0"
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Short connect timeout, long overall timeout: remote processing of
	// long files is slow
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   config.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: config.ConnectTimeout,
		IdleConnTimeout:     90 * time.Second,
	}

	baseProvider := common.NewBaseProvider(
		ProviderName,
		"Deepgram Speech-to-Text",
		provider.ProviderTypeRemote,
		"1.0.0",
	)
	baseProvider.AddSupportedFormat(provider.FormatOGG)
	baseProvider.SupportsWordLevel = true
	baseProvider.SupportsDiarization = true
	baseProvider.RequiresInternet = true
	baseProvider.RequiresAPIKey = true
	baseProvider.DefaultModel = DefaultModel
	baseProvider.AvailableModels = []string{"nova-2", "nova-2-general", "nova-3", "enhanced", "base"}

	return &Client{
		BaseProvider: baseProvider,
		config:       config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.RequestTimeout,
		},
		logger: logger.With("provider", ProviderName),
	}
}

// TranscriptWithOptions sends the audio to /listen and returns the raw JSON
// response. Every failure comes back as a *provider.TranscriptionError.
func (c *Client) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request == nil {
		return nil, c.newError(provider.CodeInvalidInput, "transcription request is required", false)
	}

	audio, err := c.loadAudio(request)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.createHTTPRequest(ctx, request, audio)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Sending audio to Deepgram",
		"bytes", len(audio),
		"model", httpReq.URL.Query().Get("model"),
		"language", httpReq.URL.Query().Get("language"),
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.newError(provider.CodeResponseReadError, fmt.Sprintf("failed to read API response: %v", err), true)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleHTTPError(resp.StatusCode, body)
	}

	raw := string(body)
	c.logger.Debug("Full API response", "response", raw)

	opts := c.resolveOptions(request)
	response := &provider.TranscriptionResponse{
		Raw:            raw,
		ProcessingTime: time.Since(startTime),
		ModelUsed:      opts.Model,
		Language:       opts.Language,
		ProviderMetadata: map[string]interface{}{
			"audio_bytes": len(audio),
			"status_code": resp.StatusCode,
		},
	}

	// Metadata is informational only; the extractor decides whether the
	// body is usable
	var parsed model.DeepgramResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if duration, ok := parsed.Duration(); ok {
			response.Duration = duration
			response.RequestID = parsed.Metadata.RequestID
			c.logger.Debug("Processed duration", "duration_sec", duration, "request_id", response.RequestID)
		} else {
			c.logger.Debug("Duration not found in API response")
		}
	}

	return response, nil
}

// loadAudio returns the audio payload, reading it from disk when needed
func (c *Client) loadAudio(request *provider.TranscriptionRequest) ([]byte, error) {
	audio := request.Audio
	if audio == nil {
		if request.InputFilePath == "" {
			return nil, c.newError(provider.CodeInvalidInput, "audio payload or input file path is required", false)
		}

		data, err := os.ReadFile(request.InputFilePath)
		if errors.Is(err, os.ErrNotExist) {
			return nil, c.newError(provider.CodeFileNotFound, fmt.Sprintf("input file not found: %s", request.InputFilePath), false)
		}
		if err != nil {
			return nil, c.newError(provider.CodeFileReadError, fmt.Sprintf("failed to read audio file: %v", err), false)
		}
		audio = data
	}

	if len(audio) == 0 {
		return nil, c.newError(provider.CodeInvalidInput, "audio payload is empty", false)
	}
	return audio, nil
}

// createHTTPRequest creates the HTTP request for the Deepgram listen API
func (c *Client) createHTTPRequest(ctx context.Context, request *provider.TranscriptionRequest, audio []byte) (*http.Request, error) {
	opts := c.resolveOptions(request)

	query := url.Values{}
	query.Set("model", opts.Model)
	query.Set("language", opts.Language)
	query.Set("smart_format", strconv.FormatBool(opts.SmartFormat))
	query.Set("punctuate", strconv.FormatBool(opts.Punctuate))
	query.Set("diarize", strconv.FormatBool(opts.Diarize))

	endpoint := fmt.Sprintf("%s/listen?%s", c.config.BaseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, c.newError(provider.CodeRequestCreation, fmt.Sprintf("failed to create HTTP request: %v", err), false)
	}

	contentType := request.Format.MIMEType()
	if request.Format == "" {
		contentType = http.DetectContentType(audio)
	}

	req.Header.Set("Authorization", "Token "+c.config.APIKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	return req, nil
}

// resolveOptions fills unset request options from the client configuration
func (c *Client) resolveOptions(request *provider.TranscriptionRequest) provider.TranscriptionOptions {
	opts := request.Options
	if opts.Model == "" {
		opts = c.config.Options
	}
	if opts.Language == "" {
		opts.Language = c.config.Options.Language
	}
	return opts
}

// classifyTransportError maps a failed round trip to a TranscriptionError
func (c *Client) classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &provider.TranscriptionError{
			Code:        provider.CodeTimeout,
			Message:     fmt.Sprintf("Deepgram API call timed out: %v", err),
			Provider:    ProviderName,
			Retryable:   true,
			Suggestions: []string{"Try a shorter audio file", "Check your network connection"},
		}
	}
	if errors.Is(err, context.Canceled) {
		return c.newError(provider.CodeNetworkError, "request was canceled", false)
	}
	return c.newError(provider.CodeNetworkError, fmt.Sprintf("failed to call Deepgram API: %v", err), true)
}

// handleHTTPError handles HTTP error responses
func (c *Client) handleHTTPError(statusCode int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.ErrMsg != "":
			detail = envelope.ErrMsg
		case envelope.Message != "":
			detail = envelope.Message
		}
	}

	tErr := &provider.TranscriptionError{
		Provider:   ProviderName,
		StatusCode: statusCode,
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		tErr.Code = provider.CodeAuthenticationFailed
		tErr.Message = "Deepgram API key is invalid or missing"
		tErr.Suggestions = []string{"Check your DEEPGRAM_API_KEY environment variable"}
	case statusCode == http.StatusForbidden:
		tErr.Code = provider.CodeForbidden
		tErr.Message = fmt.Sprintf("Deepgram API key lacks permission: %s", detail)
	case statusCode == http.StatusPaymentRequired:
		tErr.Code = provider.CodeForbidden
		tErr.Message = "Deepgram project has insufficient credits"
	case statusCode == http.StatusTooManyRequests:
		tErr.Code = provider.CodeRateLimitExceeded
		tErr.Message = "Deepgram API rate limit exceeded"
		tErr.Retryable = true
		tErr.Suggestions = []string{"Wait a moment and try again"}
	case statusCode == http.StatusRequestEntityTooLarge:
		tErr.Code = provider.CodeFileTooLarge
		tErr.Message = "Audio file is too large"
		tErr.Suggestions = []string{"Reduce file size"}
	case statusCode == http.StatusUnsupportedMediaType:
		tErr.Code = provider.CodeUnsupportedMedia
		tErr.Message = fmt.Sprintf("Audio format not supported: %s", detail)
	case statusCode == http.StatusBadRequest:
		tErr.Code = provider.CodeInvalidRequest
		tErr.Message = fmt.Sprintf("Invalid request: %s", detail)
	case statusCode >= 500:
		tErr.Code = provider.CodeServerError
		tErr.Message = fmt.Sprintf("Deepgram server error (HTTP %d)", statusCode)
		tErr.Retryable = true
	default:
		tErr.Code = provider.CodeUnknown
		tErr.Message = fmt.Sprintf("Unexpected HTTP status %d: %s", statusCode, detail)
	}

	c.logger.Warn("Deepgram API returned an error",
		"status", statusCode,
		"code", tErr.Code,
		"request_id", envelope.RequestID,
	)
	return tErr
}

func (c *Client) newError(code, message string, retryable bool) *provider.TranscriptionError {
	return &provider.TranscriptionError{
		Code:      code,
		Message:   message,
		Provider:  ProviderName,
		Retryable: retryable,
	}
}

// GetProviderInfo extends the base info with the configured limits
func (c *Client) GetProviderInfo() provider.ProviderInfo {
	info := c.BaseProvider.GetProviderInfo()
	info.DefaultModel = c.config.Options.Model
	info.SupportedLanguages = []string{c.config.Options.Language}
	info.ConnectTimeoutSec = int(c.config.ConnectTimeout.Seconds())
	info.RequestTimeoutSec = int(c.config.RequestTimeout.Seconds())
	return info
}

// ValidateConfiguration validates the provider configuration
func (c *Client) ValidateConfiguration() error {
	if c.config.APIKey == "" {
		return fmt.Errorf("Deepgram API key is required")
	}
	if strings.ContainsAny(c.config.APIKey, " \t\r\n") {
		return fmt.Errorf("Deepgram API key must not contain whitespace")
	}

	if err := envconfig.ValidateURL(c.config.BaseURL, "base"); err != nil {
		return err
	}
	u, err := url.Parse(c.config.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("base URL %q is invalid", c.config.BaseURL)
	}

	if c.config.ConnectTimeout < 0 || c.config.RequestTimeout < 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.config.ConnectTimeout > c.config.RequestTimeout {
		return fmt.Errorf("connect timeout must not exceed request timeout")
	}

	return nil
}

// HealthCheck verifies the API key against the projects endpoint
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/projects", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("Deepgram API health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("Deepgram API authentication failed")
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("Deepgram API unavailable (HTTP %d)", resp.StatusCode)
	}

	return nil
}
