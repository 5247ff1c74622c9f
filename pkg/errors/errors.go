// Package errors provides structured error types for metroroute.
//
// Coded errors let the CLI, the interactive loop and the HTTP API react to
// the same failure the same way:
//   - The loop prints [UserMessage] and keeps going
//   - One-shot commands print it and exit 1
//   - The API maps [Code] to an HTTP status
//
// # Error Codes
//
//   - UNKNOWN_STATION: a station name did not resolve
//   - TRIVIAL_QUERY: source and destination are the same station
//   - NO_ROUTE: the destination is unreachable from the source
//   - INVALID_*: malformed input, configuration or network data
//   - INTERNAL_ERROR: anything unexpected
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownStation, "Source station doesn't exist!")
//	if errors.Is(err, errors.ErrCodeUnknownStation) {
//	    // recoverable, report and continue
//	}
//
//	err = errors.Wrap(errors.ErrCodeNoRoute, network.ErrNoRoute, "No route between %s and %s.", a, b)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Query errors
	ErrCodeUnknownStation Code = "UNKNOWN_STATION"
	ErrCodeTrivialQuery   Code = "TRIVIAL_QUERY"
	ErrCodeNoRoute        Code = "NO_ROUTE"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidNetwork Code = "INVALID_NETWORK"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Recoverable reports whether err is a per-query failure after which an
// interactive session should simply continue.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnknownStation, ErrCodeTrivialQuery, ErrCodeNoRoute, ErrCodeInvalidInput:
		return true
	}
	return false
}
