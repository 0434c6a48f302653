// Package validation provides input validation helpers.
//
// Struct validation uses go-playground/validator tags:
//
//	type Config struct {
//		Providers []string `json:"providers" validate:"required,min=1"`
//	}
//	if err := validation.Validate(cfg); err != nil { ... }
//
// The fluent Validator covers ad-hoc field checks where a struct tag
// does not fit.
package validation
