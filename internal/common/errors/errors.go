// Package errors provides standardized error handling for the HTTP API.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	ErrCodeJobValidationFailed  ErrorCode = "JOB_VALIDATION_FAILED"
	ErrCodeInvalidFilterFormat  ErrorCode = "INVALID_FILTER_FORMAT"
	ErrCodeSearchQueryFailed    ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeIndexNotFound        ErrorCode = "INDEX_NOT_FOUND"

	ErrCodeApplicationValidationFailed ErrorCode = "APPLICATION_VALIDATION_FAILED"
	ErrCodeApplicationNotFound         ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeDuplicateApplication        ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeInvalidStatusTransition     ErrorCode = "INVALID_STATUS_TRANSITION"

	ErrCodeSignupValidationFailed ErrorCode = "SIGNUP_VALIDATION_FAILED"

	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeForbiddenRole      ErrorCode = "FORBIDDEN_ROLE"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	ErrCodeSessionExpired     ErrorCode = "SESSION_EXPIRED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError carrying the underlying error as details.
func Wrap(code ErrorCode, message string, err error) *StandardError {
	se := New(code, message)
	if err != nil {
		se.Details = err.Error()
	}
	return se
}

// WithMetadata attaches structured context to the error.
func (e *StandardError) WithMetadata(meta map[string]interface{}) *StandardError {
	e.Metadata = meta
	return e
}
