package commands

import (
	"context"
	"fmt"

	"accesstrack/internal/application"
	"accesstrack/internal/ports"
)

// MarkAccessedResult contains the result of a mark operation
type MarkAccessedResult struct {
	Units   []string
	Message string
}

// MarkAccessedCommand marks the tracked units of a set of files as accessed now
type MarkAccessedCommand struct {
	tracker ports.AccessTracker
	Files   []string
}

// NewMarkAccessedCommand creates a new MarkAccessedCommand
func NewMarkAccessedCommand(tracker ports.AccessTracker, files []string) *MarkAccessedCommand {
	return &MarkAccessedCommand{
		tracker: tracker,
		Files:   files,
	}
}

// Validate checks if the mark operation is valid
func (c *MarkAccessedCommand) Validate() error {
	return application.ValidateFiles(c.Files)
}

// Execute runs the mark command
func (c *MarkAccessedCommand) Execute(ctx context.Context) (*MarkAccessedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	units := c.tracker.Units(ctx, c.Files)
	if err := c.tracker.MarkAccessed(ctx, c.Files); err != nil {
		return nil, err
	}

	return &MarkAccessedResult{
		Units:   units,
		Message: fmt.Sprintf("Marked %d unit(s) accessed (%d file(s) given)", len(units), len(c.Files)),
	}, nil
}
