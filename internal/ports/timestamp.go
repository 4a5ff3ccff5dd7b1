package ports

import (
	"context"
	"time"

	"accesstrack/internal/domain"
)

// TimestampWriter updates the last-access metadata of a path.
// Implementations must be safe for concurrent calls on the same or different paths.
type TimestampWriter interface {
	// SetLastAccessTime records t as the last access time of path.
	// path is absolute; failures such as a missing path are the writer's to define.
	SetLastAccessTime(ctx context.Context, path string, t time.Time) error
}

// TimestampWriterFunc adapts a function to TimestampWriter
type TimestampWriterFunc func(ctx context.Context, path string, t time.Time) error

// SetLastAccessTime calls f(ctx, path, t)
func (f TimestampWriterFunc) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	return f(ctx, path, t)
}

// AccessJournal is a TimestampWriter that can also be queried
type AccessJournal interface {
	TimestampWriter

	// LastAccessTime returns the journaled time for path, or false if none
	LastAccessTime(ctx context.Context, path string) (time.Time, bool, error)

	// DeleteLastAccessTime drops the journal entry for path
	DeleteLastAccessTime(ctx context.Context, path string) error

	// List returns all journaled records, oldest access first
	List(ctx context.Context) ([]domain.AccessRecord, error)

	Close() error
}
