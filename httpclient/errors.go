package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies transport-level errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeRequest indicates the request could not be built or signed.
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a structured transport error. HTTP-level failures are not
// represented here; they are the classifier's concern.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewRequestError creates a request-build error.
func NewRequestError(msg string, err error) *Error {
	return &Error{Code: ErrCodeRequest, Message: msg, Err: err}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsRequest checks if an error is a request-build error.
func IsRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRequest
}
