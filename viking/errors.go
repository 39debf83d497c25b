package viking

import (
	"errors"
	"fmt"

	"github.com/mobilevikings/viking-go/httpclient"
)

// ErrorCode classifies API errors.
type ErrorCode int

const (
	// ErrCodeInvalidConsumer indicates the consumer key or secret is not
	// accepted by the API.
	ErrCodeInvalidConsumer ErrorCode = iota
	// ErrCodeRequestTokenExpired indicates the request token is no longer
	// valid; fetch a new one.
	ErrCodeRequestTokenExpired
	// ErrCodeAccessDenied indicates the user did not grant access.
	ErrCodeAccessDenied
	// ErrCodeInvalidVerifier indicates the verification code was not
	// accepted.
	ErrCodeInvalidVerifier
	// ErrCodeAccessTokenExpired indicates the access token was revoked or
	// has expired; the authorization flow must be repeated.
	ErrCodeAccessTokenExpired
	// ErrCodeServerResponse indicates the server returned a response the
	// client could not interpret, e.g. a malformed token body.
	ErrCodeServerResponse
	// ErrCodePrecondition indicates a client-side precondition failed,
	// e.g. fetching an access token without a verified request token.
	ErrCodePrecondition
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidConsumer:
		return "invalid_consumer"
	case ErrCodeRequestTokenExpired:
		return "request_token_expired"
	case ErrCodeAccessDenied:
		return "access_denied"
	case ErrCodeInvalidVerifier:
		return "invalid_verifier"
	case ErrCodeAccessTokenExpired:
		return "access_token_expired"
	case ErrCodeServerResponse:
		return "server_response"
	case ErrCodePrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// Error is a structured API error. Errors raised from an HTTP response
// carry the triggering status code, headers, and body for inspection.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for client-side errors).
	StatusCode int
	// Headers are the response headers (nil for client-side errors).
	Headers map[string]string
	// Body is the raw response body (nil for client-side errors).
	Body []byte
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("viking: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("viking: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newResponseError creates an error carrying the triggering response.
func newResponseError(code ErrorCode, resp *httpclient.Response, msg string) *Error {
	return &Error{
		Code:       code,
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Message:    msg,
	}
}

// NewServerResponseError creates a server-response error for a response the
// client could not interpret.
func NewServerResponseError(resp *httpclient.Response, cause error) *Error {
	e := newResponseError(ErrCodeServerResponse, resp, "uninterpretable server response")
	if cause != nil {
		e.Message = cause.Error()
		e.Err = cause
	}
	return e
}

// NewPreconditionError creates a client-side precondition error.
func NewPreconditionError(msg string) *Error {
	return &Error{Code: ErrCodePrecondition, Message: msg}
}

// IsInvalidConsumer checks if an error is an invalid-consumer error.
func IsInvalidConsumer(err error) bool {
	return hasCode(err, ErrCodeInvalidConsumer)
}

// IsRequestTokenExpired checks if an error is a request-token-expired error.
func IsRequestTokenExpired(err error) bool {
	return hasCode(err, ErrCodeRequestTokenExpired)
}

// IsAccessDenied checks if an error is an access-denied error.
func IsAccessDenied(err error) bool {
	return hasCode(err, ErrCodeAccessDenied)
}

// IsInvalidVerifier checks if an error is an invalid-verifier error.
func IsInvalidVerifier(err error) bool {
	return hasCode(err, ErrCodeInvalidVerifier)
}

// IsAccessTokenExpired checks if an error is an access-token-expired error.
func IsAccessTokenExpired(err error) bool {
	return hasCode(err, ErrCodeAccessTokenExpired)
}

// IsServerResponse checks if an error is a server-response error.
func IsServerResponse(err error) bool {
	return hasCode(err, ErrCodeServerResponse)
}

// IsPrecondition checks if an error is a precondition error.
func IsPrecondition(err error) bool {
	return hasCode(err, ErrCodePrecondition)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
