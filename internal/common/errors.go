// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Service errors.
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error is transient: the same request may
// succeed if repeated later.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Check for retryable error type
	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}

// Severity classifies a failed operation for the layer that owns user
// feedback.
type Severity int

const (
	// SeverityNone means the operation succeeded.
	SeverityNone Severity = iota
	// SeverityRetriable means the failure is transient; repeating the same
	// request later may succeed.
	SeverityRetriable
	// SeverityFatal means the request itself was rejected; repeating it
	// unchanged will fail again.
	SeverityFatal
)

// Classify maps an error to its severity.
func Classify(err error) Severity {
	if err == nil {
		return SeverityNone
	}
	if IsRetryable(err) {
		return SeverityRetriable
	}
	return SeverityFatal
}

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityRetriable:
		return "retriable"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
