package application

import (
	"context"
	"time"

	"accesstrack/internal/ports"
)

type multiWriter struct {
	writers []ports.TimestampWriter
}

// MultiWriter returns a TimestampWriter that forwards each update to all
// writers in order, stopping at the first error. Nil writers are dropped.
func MultiWriter(writers ...ports.TimestampWriter) ports.TimestampWriter {
	all := make([]ports.TimestampWriter, 0, len(writers))
	for _, w := range writers {
		if w == nil {
			continue
		}
		if mw, ok := w.(*multiWriter); ok {
			all = append(all, mw.writers...)
			continue
		}
		all = append(all, w)
	}
	return &multiWriter{writers: all}
}

func (m *multiWriter) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	for _, w := range m.writers {
		if err := w.SetLastAccessTime(ctx, path, t); err != nil {
			return err
		}
	}
	return nil
}
