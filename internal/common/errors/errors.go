// Package errors provides standardized error handling for the generation and
// deployment pipeline.
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
	ErrCodeDeployTokenMissing ErrorCode = "DEPLOY_TOKEN_MISSING"
	ErrCodeSiteCreateFailed   ErrorCode = "SITE_CREATE_FAILED"
	ErrCodeDeployCreateFailed ErrorCode = "DEPLOY_CREATE_FAILED"
	ErrCodeFileUploadFailed   ErrorCode = "FILE_UPLOAD_FAILED"
	ErrCodeDeployTimedOut     ErrorCode = "DEPLOY_TIMED_OUT"
	ErrCodeDeployFailed       ErrorCode = "DEPLOY_FAILED"

	ErrCodeProfileNotFound         ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"
	ErrCodeProfileStoreFailed      ErrorCode = "PROFILE_STORE_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewDeployTokenMissingError is returned before any network call is made.
func NewDeployTokenMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDeployTokenMissing,
		Message:   "Netlify API token is not configured",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSiteCreateFailedError creates a retryable site-creation error.
func NewSiteCreateFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSiteCreateFailed,
		Message:   "Failed to create site",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeployCreateFailedError creates a retryable deploy-creation error.
func NewDeployCreateFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeployCreateFailed,
		Message:   "Failed to create deploy",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileUploadFailedError creates a retryable file-upload error.
func NewFileUploadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileUploadFailed,
		Message:   "Failed to upload file",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeployTimedOutError reports that polling exhausted its attempt budget.
// Distinct from the remote error state so callers can tell the two apart.
func NewDeployTimedOutError(attempts int) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeployTimedOut,
		Message:   "Deploy timed out",
		Details:   fmt.Sprintf("attempts: %d", attempts),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeployFailedError reports an explicit remote error state.
func NewDeployFailedError(deployID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeployFailed,
		Message:   "Deploy failed",
		Details:   fmt.Sprintf("deployId: %s", deployID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError creates a non-retryable lookup error.
func NewProfileNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "Profile not found",
		Details:   fmt.Sprintf("profileId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError creates a non-retryable validation error.
func NewProfileValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "Business profile failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileStoreFailedError creates a retryable database error.
func NewProfileStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileStoreFailed,
		Message:   "Database error during profile operation",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Failed to send notification",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Helpers
// ==========================

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf returns the error code, or INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	return AsStandardError(err).Code
}
