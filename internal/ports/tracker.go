package ports

import "context"

// AccessTracker records that files were used by touching the unit that
// contains them
type AccessTracker interface {
	// MarkAccessed touches the tracked unit of every qualifying file, once per unit
	MarkAccessed(ctx context.Context, files []string) error

	// Units returns the distinct tracked units for files without writing anything
	Units(ctx context.Context, files []string) []string

	// IsUnit reports whether path is itself a tracked unit
	IsUnit(path string) bool
}
