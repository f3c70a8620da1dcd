package errors

import (
	"errors"
	"fmt"
	"net/http"

	"deepgram-transcriber/internal/app/api/provider"
	"deepgram-transcriber/internal/app/audio"
	"deepgram-transcriber/internal/app/transcript"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindForbidden          ErrorKind = "forbidden"
	KindConflict           ErrorKind = "conflict"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
	KindPayloadTooLarge    ErrorKind = "payload_too_large"
	KindUnsupportedMedia   ErrorKind = "unsupported_media_type"
	KindBadGateway         ErrorKind = "bad_gateway"
	KindGatewayTimeout     ErrorKind = "gateway_timeout"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindBadGateway:
		return http.StatusBadGateway
	case KindGatewayTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return &APIError{
		Kind:    KindUnauthorized,
		Message: message,
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *APIError {
	return &APIError{
		Kind:    KindForbidden,
		Message: message,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// WrapError wraps an existing error with API error context
func WrapError(err error, kind ErrorKind, message string) *APIError {
	if err == nil {
		return nil
	}

	apiErr := &APIError{
		Kind:    kind,
		Message: message,
	}

	// If the original error is already an APIError, preserve details
	if origAPIErr, ok := err.(*APIError); ok {
		if origAPIErr.Details != nil {
			apiErr.Details = origAPIErr.Details
		}
		if origAPIErr.Code != "" {
			apiErr.Code = origAPIErr.Code
		}
	}

	return apiErr
}

// FromUploadError maps an upload rejection to its API error. The message is
// the one shown to the user.
func FromUploadError(err error) *APIError {
	switch {
	case errors.Is(err, audio.ErrFileTooLarge):
		return &APIError{Kind: KindPayloadTooLarge, Message: audio.ErrFileTooLarge.Error(), Code: "file_too_large"}
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return &APIError{Kind: KindUnsupportedMedia, Message: audio.ErrUnsupportedFormat.Error(), Code: "unsupported_format"}
	case errors.Is(err, audio.ErrEmptyFile):
		return &APIError{Kind: KindBadRequest, Message: audio.ErrEmptyFile.Error(), Code: "empty_file"}
	default:
		return nil
	}
}

// FromTranscriptionError maps a provider failure to a gateway error
func FromTranscriptionError(tErr *provider.TranscriptionError) *APIError {
	apiErr := &APIError{
		Kind:    KindBadGateway,
		Message: tErr.Error(),
		Code:    tErr.Code,
	}

	switch tErr.Code {
	case provider.CodeTimeout:
		apiErr.Kind = KindGatewayTimeout
	case provider.CodeFileTooLarge:
		apiErr.Kind = KindPayloadTooLarge
	case provider.CodeInvalidInput:
		apiErr.Kind = KindBadRequest
	case provider.CodeFileNotFound, provider.CodeFileReadError, provider.CodeRequestCreation:
		apiErr.Kind = KindInternal
	}

	if len(tErr.Suggestions) > 0 {
		apiErr.Details = map[string]string{"suggestion": tErr.Suggestions[0]}
	}
	return apiErr
}

// FromExtractError maps an unusable provider response to a gateway error
func FromExtractError(eErr *transcript.ExtractError) *APIError {
	return &APIError{
		Kind:    KindBadGateway,
		Message: eErr.Message,
		Code:    string(eErr.Kind),
	}
}

// FromError picks the most specific mapping for err, falling back to an
// internal error that hides the cause
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if uploadErr := FromUploadError(err); uploadErr != nil {
		return uploadErr
	}
	if tErr, ok := provider.AsTranscriptionError(err); ok {
		return FromTranscriptionError(tErr)
	}
	if eErr, ok := transcript.AsExtractError(err); ok {
		return FromExtractError(eErr)
	}
	return NewInternalError("Internal server error")
}
