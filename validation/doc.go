// Package validation provides input validation utilities for netlayer.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as
// *errors.AppError with per-field details.
//
// # Struct Tag Validation
//
//	type EndpointConfig struct {
//	    Host   string `validate:"required"`
//	    Method string `validate:"required,oneof=GET DELETE"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).OneOf("scheme", scheme, []string{"http", "https"})
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
