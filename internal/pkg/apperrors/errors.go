package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student with this username or email already exists")
)

// Module errors
var (
	ErrModuleNotFound      = errors.New("module not found")
	ErrModuleAlreadyExists = errors.New("module with this code already exists")
)

// Grading errors
var (
	ErrNotRegistered   = errors.New("student is not registered in the module")
	ErrNoGradeRecorded = errors.New("no grade available for the module")
)

// NotRegisteredError reports a grading operation against a module the
// student never registered for. ModuleName carries the module's
// display name so callers can react without parsing the message.
type NotRegisteredError struct {
	ModuleName string
}

// Error implements the error interface
func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("student is not registered in the module: %s", e.ModuleName)
}

// Unwrap makes errors.Is(err, ErrNotRegistered) hold
func (e *NotRegisteredError) Unwrap() error {
	return ErrNotRegistered
}

// NewNotRegisteredError creates a NotRegisteredError for the named module
func NewNotRegisteredError(moduleName string) error {
	return &NotRegisteredError{ModuleName: moduleName}
}

// NoGradeRecordedError reports a grade lookup for a module the student
// is registered on but holds no grade for.
type NoGradeRecordedError struct {
	ModuleName string
}

// Error implements the error interface
func (e *NoGradeRecordedError) Error() string {
	return fmt.Sprintf("no grade available for module: %s", e.ModuleName)
}

// Unwrap makes errors.Is(err, ErrNoGradeRecorded) hold
func (e *NoGradeRecordedError) Unwrap() error {
	return ErrNoGradeRecorded
}

// NewNoGradeRecordedError creates a NoGradeRecordedError for the named module
func NewNoGradeRecordedError(moduleName string) error {
	return &NoGradeRecordedError{ModuleName: moduleName}
}

// Is reports whether err matches target or any error in errList.
// Convenience over errors.Is for grouped sentinel dispatch.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
