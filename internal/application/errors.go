package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidDepth = errors.New("invalid depth")
	ErrNotUnit      = errors.New("not a tracked unit")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidDepth for failures on the depth field
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDepth && e.Field == "depth"
}

// WriteError is returned when the timestamp writer fails for a unit
type WriteError struct {
	Unit string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to mark %s accessed: %v", e.Unit, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
