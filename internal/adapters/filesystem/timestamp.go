package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"accesstrack/internal/ctxlog"
	"accesstrack/internal/ports"
)

// TimestampWriter implements ports.TimestampWriter by setting the access and
// modification times of the path itself
type TimestampWriter struct {
	ignoreMissing bool
}

// Ensure TimestampWriter implements TimestampWriter
var _ ports.TimestampWriter = (*TimestampWriter)(nil)

// WriterOption configures a TimestampWriter
type WriterOption func(*TimestampWriter)

// IgnoreMissing makes writes to paths that no longer exist a no-op
func IgnoreMissing() WriterOption {
	return func(w *TimestampWriter) {
		w.ignoreMissing = true
	}
}

// NewTimestampWriter creates a new filesystem timestamp writer
func NewTimestampWriter(opts ...WriterOption) *TimestampWriter {
	w := &TimestampWriter{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetLastAccessTime sets both atime and mtime of path to t. Eviction sweeps
// commonly read mtime since atime updates are often disabled on mounts.
func (w *TimestampWriter) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	err := os.Chtimes(path, t, t)
	if err == nil {
		return nil
	}
	if w.ignoreMissing && errors.Is(err, fs.ErrNotExist) {
		ctxlog.FromContext(ctx).Debug("unit vanished before touch", "unit", path)
		return nil
	}
	return fmt.Errorf("failed to set times on %s: %w", path, err)
}
