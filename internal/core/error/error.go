package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal error"
	// TransportErrorMessage describes connectivity failures towards the API.
	TransportErrorMessage = "service unreachable"
	// RejectedMessage is used when the API answers 2xx with status=false and no message.
	RejectedMessage = "request rejected"
)

var (
	// ErrTransport marks connectivity failures (DNS, refused, reset, timeout).
	ErrTransport = errors.New("transport failure")
	// ErrUnauthorized marks 401/403 answers.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks 404 answers and missing store keys.
	ErrNotFound = errors.New("not found")
	// ErrRejected marks 2xx answers whose envelope carries status=false.
	ErrRejected = errors.New("rejected")
	// ErrClient marks the remaining 4xx answers.
	ErrClient = errors.New("client error")
	// ErrServer marks 5xx answers.
	ErrServer = errors.New("server error")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
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

// WrapTransport wraps a connectivity failure so callers can match ErrTransport.
func WrapTransport(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrTransport, err),
		Status:  http.StatusServiceUnavailable,
		Message: TransportErrorMessage,
	}
}

// StatusOf extracts the HTTP status carried by err, or 0 when err is not an AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
