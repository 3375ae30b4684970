// Package validation provides struct validation built on
// go-playground/validator.
//
// Config structs declare constraints with `validate` tags and call
// validation.Validate:
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//
//	if err := validation.Validate(cfg); err != nil { ... }
//
// Validation failures are returned as *validation.Error with one
// FieldError per offending field.
package validation
