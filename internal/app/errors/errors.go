// Package errors holds the sentinel errors and message helpers shared by
// configuration loading and validation.
package errors

import (
	"fmt"
)

var (
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidAPIKey = New("invalid API key format")
	ErrInvalidConfig = New("invalid configuration")

	ErrProviderDisabled = New("provider is disabled")

	ErrFileNotFound    = New("file not found")
	ErrFileWriteFailed = New("file write failed")
)

// Error is a message with an optional cause. Two Errors match under
// errors.Is when their messages are equal.
type Error struct {
	message string
	cause   error
}

func New(message string) *Error {
	return &Error{message: message}
}

func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{message: message, cause: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{message: fmt.Sprintf(format, args...), cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.message == t.message
}

// Field helpers

func RequiredField(field string) error {
	return Newf("%s is required", field)
}

func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}

func InvalidFormat(field string, expected string) error {
	return Newf("%s format invalid: expected %s", field, expected)
}

func TooShort(field string, minLength int) error {
	return Newf("%s too short (minimum %d characters)", field, minLength)
}

func OutOfRange(field string, min, max interface{}) error {
	return Newf("%s out of range (must be between %v and %v)", field, min, max)
}
