package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/netlayer/errors"
)

type target struct {
	Scheme string  `mapstructure:"scheme" validate:"required,oneof=http https"`
	Host   string  `mapstructure:"host" validate:"required"`
	Path   string  `mapstructure:"path" validate:"omitempty,startswith=/"`
	Items  []param `mapstructure:"query" validate:"dive"`
	Plain  string  `validate:"omitempty,max=3"`
}

type param struct {
	Name string `mapstructure:"name" validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(target{Scheme: "https", Host: "api.example.com", Path: "/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	err := Validate(target{
		Scheme: "ftp",
		Path:   "v1",
		Items:  []param{{Name: "ok"}, {}},
		Plain:  "toolong",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	got := make(map[string]string, len(fields))
	for _, f := range fields {
		got[f.Field] = f.Message
	}

	want := map[string]string{
		"scheme":        "must be one of: http https",
		"host":          "is required",
		"path":          "must start with /",
		"query[1].name": "is required",
		"plain":         "must be at most 3",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %q: expected %q, got %q", field, msg, got[field])
		}
	}
}

func TestValidator_Chain(t *testing.T) {
	v := New().
		Required("name", "  ").
		OneOf("method", "POST", []string{"GET", "DELETE"}).
		OneOf("scheme", "", []string{"http"}).
		Custom(false, "value", "must not contain '='")

	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(v.Errors()), v.Errors())
	}

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	for _, part := range []string{"name: is required", "method: must be one of: GET, DELETE", "value: must not contain '='"} {
		if !strings.Contains(appErr.Message, part) {
			t.Errorf("message %q missing %q", appErr.Message, part)
		}
	}
}

func TestValidator_NoErrors(t *testing.T) {
	v := New().Required("name", "x").OneOf("method", "GET", []string{"GET"}).Custom(true, "v", "")
	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
	if v.Validate() != nil {
		t.Error("expected nil AppError")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Host":          "host",
		"QueryParams":   "query_params",
		"MaxBodyBytes":  "max_body_bytes",
		"already_snake": "already_snake",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
