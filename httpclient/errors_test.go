package httpclient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kbukum/netlayer/endpoint"
	apperrors "github.com/kbukum/netlayer/errors"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeURLConstruction, "url_construction"},
		{ErrCodeRequest, "request"},
		{ErrCodeTransport, "transport"},
		{ErrCodeTimeout, "timeout"},
		{ErrCodeMissingResponse, "missing_response"},
		{ErrCodeDecode, "decode"},
		{ErrCodeStatus, "status"},
		{ErrorCode(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.code.String(); got != tc.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := NewStatusError(404, []byte("nope"))
	if got := err.Error(); got != "httpclient: status (HTTP 404): Not Found" {
		t.Errorf("unexpected message %q", got)
	}

	err = NewMissingResponseError("body")
	if got := err.Error(); got != "httpclient: missing_response: "+err.Message {
		t.Errorf("unexpected message %q", got)
	}
}

func TestError_Classification(t *testing.T) {
	_, urlErr := endpoint.BuildURL(endpoint.Get(endpoint.HTTPS, "", "/"))

	tests := []struct {
		name    string
		err     error
		is      func(error) bool
		appCode apperrors.ErrorCode
	}{
		{"url", NewURLConstructionError(urlErr), IsURLConstruction, apperrors.ErrCodeURLConstruction},
		{"request", NewRequestError(fmt.Errorf("bad method")), IsRequest, apperrors.ErrCodeInvalidInput},
		{"transport", NewTransportError("example.com", fmt.Errorf("refused")), IsTransport, apperrors.ErrCodeConnectionFailed},
		{"timeout", NewTimeoutError("request", context.DeadlineExceeded), IsTimeout, apperrors.ErrCodeTimeout},
		{"missing", NewMissingResponseError("response"), IsMissingResponse, apperrors.ErrCodeMissingResponse},
		{"decode", NewDecodeError("T", 200, []byte("x"), fmt.Errorf("syntax")), IsDecode, apperrors.ErrCodeDecodeFailed},
		{"status", NewStatusError(500, nil), IsStatus, apperrors.ErrCodeUnexpectedStatus},
	}

	predicates := []func(error) bool{IsURLConstruction, IsRequest, IsTransport, IsTimeout, IsMissingResponse, IsDecode, IsStatus}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.is(tc.err) {
				t.Errorf("expected predicate to match %v", tc.err)
			}
			matches := 0
			for _, p := range predicates {
				if p(tc.err) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("expected exactly one predicate to match, got %d", matches)
			}
			if !apperrors.HasCode(tc.err, tc.appCode) {
				t.Errorf("expected AppError code %s in chain of %v", tc.appCode, tc.err)
			}

			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !tc.is(wrapped) {
				t.Error("predicate must see through wrapping")
			}
		})
	}
}

func TestError_UnwrapsToCause(t *testing.T) {
	err := NewTimeoutError("request", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected context.DeadlineExceeded in chain")
	}

	cause := fmt.Errorf("invalid character")
	decodeErr := NewDecodeError("main.user", 200, []byte("not-json"), cause)
	if !errors.Is(decodeErr, cause) {
		t.Error("expected decode cause in chain")
	}
	if decodeErr.StatusCode != 200 || string(decodeErr.Body) != "not-json" {
		t.Errorf("decode error lost response data: %+v", decodeErr)
	}
}

func TestError_Retryable(t *testing.T) {
	if appErr, ok := apperrors.AsAppError(NewTransportError("h", fmt.Errorf("reset"))); !ok || !appErr.Retryable {
		t.Error("transport failures should be marked retryable")
	}
	if appErr, ok := apperrors.AsAppError(NewDecodeError("T", 200, nil, fmt.Errorf("x"))); !ok || appErr.Retryable {
		t.Error("decode failures should not be retryable")
	}
}

func TestCodeOf(t *testing.T) {
	if _, ok := CodeOf(fmt.Errorf("plain")); ok {
		t.Error("plain errors have no code")
	}
	if _, ok := CodeOf(nil); ok {
		t.Error("nil has no code")
	}
	code, ok := CodeOf(NewStatusError(502, nil))
	if !ok || code != ErrCodeStatus {
		t.Errorf("expected status code, got %v %v", code, ok)
	}
}
