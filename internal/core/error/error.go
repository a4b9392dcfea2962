package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
	// RequiredFieldsMessage is shown when the help request misses a required field.
	RequiredFieldsMessage = "Please fill in required fields"
	// InvalidInputMessage is shown when a field carries a value outside its allowed set.
	InvalidInputMessage = "Some fields have invalid values"
	// SubmissionFailedMessage is shown when the help request could not be delivered.
	SubmissionFailedMessage = "Error submitting request. Please try again."
	// ConversationNotFoundMessage is returned for unknown or expired sessions.
	ConversationNotFoundMessage = "conversation not found"
)

// ErrRequiredFieldMissing marks validation failures on required fields.
var ErrRequiredFieldMissing = errors.New("required field missing")

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
	Fields  []string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// RequiredFields reports missing required fields. The submission must not be attempted.
func RequiredFields(fields ...string) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrRequiredFieldMissing, fields),
		Status:  http.StatusBadRequest,
		Message: RequiredFieldsMessage,
		Fields:  fields,
	}
}

// InvalidInput reports fields whose values are not accepted.
func InvalidInput(err error, fields ...string) *AppError {
	return &AppError{
		Err:     err,
		Status:  http.StatusBadRequest,
		Message: InvalidInputMessage,
		Fields:  fields,
	}
}

// NotFound reports an unknown conversation.
func NotFound(err error) *AppError {
	return New(err, http.StatusNotFound, ConversationNotFoundMessage)
}

// SubmissionFailed reports a delivery transport failure. Form contents stay with the caller for retry.
func SubmissionFailed(err error) *AppError {
	return New(err, http.StatusBadGateway, SubmissionFailedMessage)
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or 500 for foreign errors.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-safe message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}
