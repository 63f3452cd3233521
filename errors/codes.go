package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection/Availability errors (retryable)
const (
	// ErrCodeConnectionFailed indicates the transport could not reach the host.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out or was cancelled.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Request construction errors
const (
	// ErrCodeURLConstruction indicates an endpoint could not be assembled into a valid URL.
	ErrCodeURLConstruction ErrorCode = "URL_CONSTRUCTION_FAILED"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Response errors
const (
	// ErrCodeMissingResponse indicates the transport returned neither an error nor a body.
	ErrCodeMissingResponse ErrorCode = "MISSING_RESPONSE"
	// ErrCodeDecodeFailed indicates the response body did not match the target type.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeUnexpectedStatus indicates a non-2xx status under strict status handling.
	ErrCodeUnexpectedStatus ErrorCode = "UNEXPECTED_STATUS"
)

// ErrCodeInternal indicates an unexpected internal failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeMissingResponse:  true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
