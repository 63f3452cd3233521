package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/kbukum/netlayer/errors"
)

// ErrorCode classifies request executor failures.
type ErrorCode int

const (
	// ErrCodeURLConstruction indicates the endpoint did not form a valid URL.
	ErrCodeURLConstruction ErrorCode = iota
	// ErrCodeRequest indicates the HTTP request could not be created (e.g. unsupported method).
	ErrCodeRequest
	// ErrCodeTransport indicates a network-level failure (refused, DNS, reset, body read).
	ErrCodeTransport
	// ErrCodeTimeout indicates the request deadline passed or its context was cancelled.
	ErrCodeTimeout
	// ErrCodeMissingResponse indicates the transport returned no error but no response or body.
	ErrCodeMissingResponse
	// ErrCodeDecode indicates the body could not be decoded into the target type.
	ErrCodeDecode
	// ErrCodeStatus indicates a non-2xx status when strict status handling is on.
	ErrCodeStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeURLConstruction:
		return "url_construction"
	case ErrCodeRequest:
		return "request"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeMissingResponse:
		return "missing_response"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Error is a structured executor error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code, 0 unless Code is ErrCodeStatus or ErrCodeDecode.
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the response body for status and decode failures (may be nil).
	Body []byte
	// Err is the underlying error, usually an *errors.AppError.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewURLConstructionError wraps a BuildURL failure.
func NewURLConstructionError(err error) *Error {
	return &Error{
		Code:    ErrCodeURLConstruction,
		Message: messageOf(err),
		Err:     err,
	}
}

// NewRequestError creates an error for a request that could not be built.
func NewRequestError(err error) *Error {
	return &Error{
		Code:    ErrCodeRequest,
		Message: err.Error(),
		Err:     apperrors.InvalidInput("request", err.Error()).WithCause(err),
	}
}

// NewTransportError creates a network-level error for host.
func NewTransportError(host string, err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     apperrors.ConnectionFailed(host, err),
	}
}

// NewTimeoutError creates a timeout or cancellation error.
func NewTimeoutError(operation string, err error) *Error {
	return &Error{
		Code:    ErrCodeTimeout,
		Message: err.Error(),
		Err:     apperrors.Timeout(operation, err),
	}
}

// NewMissingResponseError creates an error for a transport that returned
// neither an error nor the named part ("response" or "body").
func NewMissingResponseError(what string) *Error {
	appErr := apperrors.MissingResponse(what)
	return &Error{
		Code:    ErrCodeMissingResponse,
		Message: appErr.Message,
		Err:     appErr,
	}
}

// NewDecodeError creates an error for a body that does not decode into target.
func NewDecodeError(target string, statusCode int, body []byte, err error) *Error {
	return &Error{
		Code:       ErrCodeDecode,
		StatusCode: statusCode,
		Message:    err.Error(),
		Body:       body,
		Err:        apperrors.DecodeFailed(target, err),
	}
}

// NewStatusError creates an error for a non-2xx response.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeStatus,
		Message:    http.StatusText(statusCode),
		Body:       body,
		Err: apperrors.New(apperrors.ErrCodeUnexpectedStatus, fmt.Sprintf("HTTP %d", statusCode)).
			WithDetail("status_code", statusCode),
	}
}

// CodeOf returns the classification of err and whether err is an *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

func hasCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsURLConstruction checks if an error is a URL construction error.
func IsURLConstruction(err error) bool { return hasCode(err, ErrCodeURLConstruction) }

// IsRequest checks if an error is a request construction error.
func IsRequest(err error) bool { return hasCode(err, ErrCodeRequest) }

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool { return hasCode(err, ErrCodeTransport) }

// IsTimeout checks if an error is a timeout or cancellation error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsMissingResponse checks if an error is a missing response error.
func IsMissingResponse(err error) bool { return hasCode(err, ErrCodeMissingResponse) }

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool { return hasCode(err, ErrCodeDecode) }

// IsStatus checks if an error is a non-2xx status error.
func IsStatus(err error) bool { return hasCode(err, ErrCodeStatus) }

func messageOf(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
