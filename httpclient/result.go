package httpclient

import (
	apperrors "github.com/kbukum/netlayer/errors"
)

// Result is the outcome of one request: either a decoded value or an error,
// never both.
type Result[T any] struct {
	value T
	err   error
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed Result. A nil err is replaced with an internal
// error so the result is never mistaken for a success.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = apperrors.Internal(nil)
	}
	return Result[T]{err: err}
}

// Ok reports whether the request succeeded.
func (r Result[T]) Ok() bool { return r.err == nil }

// Value returns the decoded value; the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and error as a pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }
