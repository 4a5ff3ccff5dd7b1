package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"accesstrack/internal/application"
	"accesstrack/internal/ports"
)

// LastAccessedResult contains the journaled access time of a unit
type LastAccessedResult struct {
	Unit       string
	LastAccess time.Time
}

// LastAccessedCommand looks up when a unit was last marked accessed
type LastAccessedCommand struct {
	tracker ports.AccessTracker
	journal ports.AccessJournal
	Unit    string
}

// NewLastAccessedCommand creates a new LastAccessedCommand
func NewLastAccessedCommand(tracker ports.AccessTracker, journal ports.AccessJournal, unit string) *LastAccessedCommand {
	return &LastAccessedCommand{
		tracker: tracker,
		journal: journal,
		Unit:    unit,
	}
}

// Validate checks that the path is a tracked unit
func (c *LastAccessedCommand) Validate() error {
	return validateUnit(c.tracker, c.Unit)
}

// Execute runs the lookup
func (c *LastAccessedCommand) Execute(ctx context.Context) (*LastAccessedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	unit, err := filepath.Abs(c.Unit)
	if err != nil {
		return nil, err
	}

	t, ok, err := c.journal.LastAccessTime(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal for %s: %w", unit, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", unit, application.ErrNotFound)
	}

	return &LastAccessedResult{Unit: unit, LastAccess: t}, nil
}

// ForgetResult contains the result of a forget operation
type ForgetResult struct {
	Unit    string
	Message string
}

// ForgetCommand drops the journal entry of a unit
type ForgetCommand struct {
	tracker ports.AccessTracker
	journal ports.AccessJournal
	Unit    string
}

// NewForgetCommand creates a new ForgetCommand
func NewForgetCommand(tracker ports.AccessTracker, journal ports.AccessJournal, unit string) *ForgetCommand {
	return &ForgetCommand{
		tracker: tracker,
		journal: journal,
		Unit:    unit,
	}
}

// Validate checks that the path is a tracked unit
func (c *ForgetCommand) Validate() error {
	return validateUnit(c.tracker, c.Unit)
}

// Execute runs the forget command
func (c *ForgetCommand) Execute(ctx context.Context) (*ForgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	unit, err := filepath.Abs(c.Unit)
	if err != nil {
		return nil, err
	}

	if err := c.journal.DeleteLastAccessTime(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to forget %s: %w", unit, err)
	}

	return &ForgetResult{
		Unit:    unit,
		Message: fmt.Sprintf("Forgot %s", unit),
	}, nil
}

func validateUnit(tracker ports.AccessTracker, unit string) error {
	if err := application.ValidateRequired("unit", unit); err != nil {
		return err
	}
	if !tracker.IsUnit(unit) {
		return &application.ValidationError{
			Field:   "unit",
			Message: fmt.Sprintf("%s: %v", unit, application.ErrNotUnit),
		}
	}
	return nil
}
