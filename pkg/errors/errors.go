// Package errors provides structured error types for the chartstyle engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The style resolution engine fails loudly instead of rendering with guessed
// defaults. Each configuration mistake has its own code:
//   - DUPLICATE_COLUMN_KEY: two columns share a key
//   - UNKNOWN_PALETTE: a palette name is not registered
//   - MISSING_COLUMN_STYLE: a static style table has no entry for a column
//   - STYLE_CALLBACK: a style callback failed or returned a malformed bundle
//   - UNKNOWN_COLUMN: a key is not configured on the allocator
//   - INVALID_*: input validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColor, "invalid color: %s", s)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Style resolution errors
	ErrCodeDuplicateColumnKey Code = "DUPLICATE_COLUMN_KEY"
	ErrCodeUnknownPalette     Code = "UNKNOWN_PALETTE"
	ErrCodeMissingColumnStyle Code = "MISSING_COLUMN_STYLE"
	ErrCodeStyleCallback      Code = "STYLE_CALLBACK"
	ErrCodeUnknownColumn      Code = "UNKNOWN_COLUMN"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidColumn  Code = "INVALID_COLUMN"
	ErrCodeInvalidPalette Code = "INVALID_PALETTE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// DuplicateColumnKey reports two column specs sharing key.
func DuplicateColumnKey(key string) *Error {
	return New(ErrCodeDuplicateColumnKey, "duplicate column key %q", key)
}

// UnknownPalette reports a palette name missing from the registry.
func UnknownPalette(name string) *Error {
	return New(ErrCodeUnknownPalette, "unknown palette %q", name)
}

// MissingColumnStyle reports a static style table without an entry for key.
func MissingColumnStyle(key string) *Error {
	return New(ErrCodeMissingColumnStyle, "no style defined for column %q", key)
}

// StyleCallback wraps a failure raised by a style callback for key.
func StyleCallback(key string, cause error) *Error {
	return Wrap(ErrCodeStyleCallback, cause, "style callback failed for column %q", key)
}

// UnknownColumn reports a column key that is not configured.
func UnknownColumn(key string) *Error {
	return New(ErrCodeUnknownColumn, "unknown column %q", key)
}
