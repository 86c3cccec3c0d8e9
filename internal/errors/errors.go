package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/laughmeter/internal/logger"
)

// ErrorCode classifies an application error.
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrConflict     ErrorCode = "CONFLICT"
	ErrInternal     ErrorCode = "INTERNAL"
)

// AppError is a structured error with a code and optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidInput creates an error for rejected user input.
func NewInvalidInput(format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates an error for a missing record.
func NewNotFound(kind, id string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found: %s", kind, id)}
}

// NewConflict creates an error for a state conflict, e.g. restoring a live entry.
func NewConflict(format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// NewInternal wraps an unexpected failure.
func NewInternal(msg string, err error) *AppError {
	return &AppError{Code: ErrInternal, Message: msg, Err: err}
}

// Is reports whether err, or anything it wraps, is an AppError with code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
