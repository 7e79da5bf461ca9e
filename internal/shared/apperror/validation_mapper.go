package apperror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// salary_euros -> salary euros -> Salary Euros
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldErrors maps a json field name to a human readable message.
type FieldErrors map[string]string

// NewValidationError builds a 422 error from already formatted field messages.
func NewValidationError(fields FieldErrors) *AppError {
	return ErrValidation.WithDetails(fields)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ErrInvalidInput
	}

	fields := make(FieldErrors, len(errs))
	for _, e := range errs {
		// Simpan pesan pertama per field saja
		if _, exists := fields[e.Field()]; exists {
			continue
		}
		fields[e.Field()] = fieldMessage(e)
	}

	return NewValidationError(fields)
}

func fieldMessage(e validator.FieldError) string {
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, e.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
