package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Navigation resolution errors. Each names the entity that could not be
// resolved so transport can render a distinct, user-displayable state.
// All three unwrap to ErrNotFound.
var (
	ErrDashboardNotFound = fmt.Errorf("dashboard: %w", ErrNotFound)
	ErrWorkspaceNotFound = fmt.Errorf("workspace: %w", ErrNotFound)
	ErrMenuItemNotFound  = fmt.Errorf("menu item: %w", ErrNotFound)
)

// Module loading errors. ErrModuleNotFound means no module is registered
// (or discoverable) for a target name; ErrModuleLoad means a registered
// loader failed or returned malformed output.
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrModuleLoad     = errors.New("module load failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
