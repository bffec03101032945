/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeUnavailable indicates an external collaborator (cluster API,
	// oc CLI, snapshot store) is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

// StructuredError provides structured error information for better
// observability. It includes an error code for programmatic handling, a
// human-readable message, the underlying cause, and optional context for
// debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Wrap creates a StructuredError around an existing error.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from an error chain, returning
// ErrCodeInternal when no StructuredError is present.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
