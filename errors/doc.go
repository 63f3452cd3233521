// Package errors provides the unified error type used across netlayer.
// AppError carries a machine-readable code, a human-readable message,
// retryable detection and an optional cause, so failures coming from URL
// construction, transport, decoding or validation can be inspected the same way.
package errors
