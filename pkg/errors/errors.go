// Package errors provides structured error types for anomiadeck.
//
// Every failure that reaches the user carries a machine-readable code so the
// CLI can name the failing stage in a single line:
//   - INVALID_*: the input (category file, layout, config, text) is unusable
//   - EMPTY_*: nothing to tag cards with
//   - RESOURCE_LOAD: a symbol image or font could not be read or decoded
//   - WRITE_FAILED: the generated deck could not be persisted
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "margin %d too large for width %d", m, w)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // Handle layout error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeResourceLoad, origErr, "decode symbol %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"

	// Empty inputs
	ErrCodeEmptyCategories Code = "EMPTY_CATEGORIES"
	ErrCodeEmptySymbolSet  Code = "EMPTY_SYMBOL_SET"

	// Resource errors
	ErrCodeResourceLoad Code = "RESOURCE_LOAD"
	ErrCodeWriteFailed  Code = "WRITE_FAILED"

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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
