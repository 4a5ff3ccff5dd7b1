package commands

import (
	"context"

	"accesstrack/internal/application"
	"accesstrack/internal/ports"
)

// ResolveUnitsCommand maps files to their tracked units without writing
type ResolveUnitsCommand struct {
	tracker ports.AccessTracker
	Files   []string
}

// NewResolveUnitsCommand creates a new ResolveUnitsCommand
func NewResolveUnitsCommand(tracker ports.AccessTracker, files []string) *ResolveUnitsCommand {
	return &ResolveUnitsCommand{
		tracker: tracker,
		Files:   files,
	}
}

// Validate checks if the resolve operation is valid
func (c *ResolveUnitsCommand) Validate() error {
	return application.ValidateFiles(c.Files)
}

// Execute returns the sorted distinct units
func (c *ResolveUnitsCommand) Execute(ctx context.Context) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.tracker.Units(ctx, c.Files), nil
}
