package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a request binding error into an
// ErrorDetail. Field-level rule failures are reported per field;
// anything else is treated as a malformed request body.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}

	validationErrors := NewValidationErrors()
	for _, fieldError := range fieldErrors {
		validationErrors.AddError(fieldError.Field(), formatValidationError(fieldError))
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
		WithDetails(validationErrors.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "alphanum":
		return e.Field() + " must contain only letters and digits"
	case "modulecode":
		return e.Field() + " must contain only uppercase letters and digits"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
