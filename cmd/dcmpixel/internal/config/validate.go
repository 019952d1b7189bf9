package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a single field-level validation failure.
type Error struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every Error a GlobalConfig validation pass produced,
// following the Errors/Error pairing fhir/validation wraps
// go-playground/validator in.
type Errors struct {
	errs []*Error
}

func (e *Errors) add(field, message string) {
	e.errs = append(e.errs, &Error{Field: field, Message: message})
}

// HasErrors reports whether any field failed validation.
func (e *Errors) HasErrors() bool { return len(e.errs) > 0 }

// Error implements the error interface.
func (e *Errors) Error() string {
	parts := make([]string, len(e.errs))
	for i, err := range e.errs {
		parts[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

var validate = validator.New()

// Validate checks cfg's `validate:"..."` struct tags, returning an *Errors
// aggregate (nil if cfg is valid).
func Validate(cfg *GlobalConfig) error {
	if err := validate.Struct(cfg); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return &Error{Field: "GlobalConfig", Message: err.Error()}
		}
		errs := &Errors{}
		for _, fe := range verrs {
			errs.add(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()))
		}
		return errs
	}
	return nil
}
