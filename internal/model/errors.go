package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Submission errors
	ErrSubmissionNotFound = errors.New("submission not found")
)

// ValidationError reports the first invalid field of a submission request
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NewMissingFieldError creates a ValidationError for an absent or empty field
func NewMissingFieldError(field string) error {
	return &ValidationError{Field: field}
}

// NewInvalidFieldError creates a ValidationError with a reason
func NewInvalidFieldError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
