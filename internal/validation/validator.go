// Package validation schema-checks request payloads before they reach the
// service layer. Checks are fail-fast: only the first violated rule is reported.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error describes the first rule a payload violated.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Errorf builds a validation Error for field.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Struct validates s and returns an *Error for the first violation, or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation: %w", err)
	}
	return describe(verrs[0])
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func describe(fe validator.FieldError) *Error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return Errorf(field, "%s is required", field)
	case "min":
		return Errorf(field, "%s must be at least %s characters", field, fe.Param())
	case "max":
		return Errorf(field, "%s must be at most %s characters", field, fe.Param())
	default:
		return Errorf(field, "%s is invalid", field)
	}
}
