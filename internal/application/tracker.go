package application

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"accesstrack/internal/ctxlog"
	"accesstrack/internal/domain"
	"accesstrack/internal/ports"
)

// SingleDepthTracker tracks access to files by touching the directory (or
// file) at a fixed depth below a base directory instead of the file itself.
// It holds no mutable state and is safe for concurrent use.
type SingleDepthTracker struct {
	writer  ports.TimestampWriter
	baseDir domain.Path
	units   domain.UnitRange
	now     func() time.Time
}

// Ensure SingleDepthTracker implements AccessTracker
var _ ports.AccessTracker = (*SingleDepthTracker)(nil)

// TrackerOption configures a SingleDepthTracker
type TrackerOption func(*SingleDepthTracker)

// WithClock overrides the wall clock used to stamp units
func WithClock(now func() time.Time) TrackerOption {
	return func(t *SingleDepthTracker) {
		t.now = now
	}
}

// NewSingleDepthTracker creates a tracker for units depth levels below baseDir.
// baseDir may be relative; it is made absolute and cleaned.
func NewSingleDepthTracker(writer ports.TimestampWriter, baseDir string, depth int, opts ...TrackerOption) (*SingleDepthTracker, error) {
	if writer == nil {
		return nil, &ValidationError{Field: "writer", Message: "timestamp writer is required"}
	}
	if err := ValidateDepth(depth); err != nil {
		return nil, err
	}
	if err := ValidateRequired("baseDir", baseDir); err != nil {
		return nil, err
	}

	base, err := domain.ParsePath(baseDir)
	if err != nil {
		return nil, &ValidationError{Field: "baseDir", Message: err.Error()}
	}
	if depth > math.MaxInt-base.Len() {
		return nil, &ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("depth %d below %s overflows the component range", depth, base),
		}
	}

	t := &SingleDepthTracker{
		writer:  writer,
		baseDir: base,
		units:   domain.NewUnitRange(base, depth),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// BaseDir returns the normalized base directory
func (t *SingleDepthTracker) BaseDir() string {
	return t.baseDir.String()
}

// Depth returns the configured unit depth
func (t *SingleDepthTracker) Depth() int {
	return t.units.Depth()
}

// MarkAccessed stamps every distinct tracked unit of files with the current
// time. Files outside the base directory or above the unit depth are skipped.
//
// All units share one timestamp captured at the start of the call. The first
// writer failure stops the call and is returned as a *WriteError; units
// written before it keep their new timestamp.
func (t *SingleDepthTracker) MarkAccessed(ctx context.Context, files []string) error {
	_, err := t.mark(ctx, files)
	return err
}

// MarkAccessedStats is MarkAccessed that also reports what was written
func (t *SingleDepthTracker) MarkAccessedStats(ctx context.Context, files []string) (*domain.MarkStats, error) {
	return t.mark(ctx, files)
}

// Units returns the sorted, deduplicated tracked units of files
func (t *SingleDepthTracker) Units(ctx context.Context, files []string) []string {
	units, _ := t.collectUnits(ctx, files)
	paths := make([]string, 0, len(units))
	for p := range units {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// IsUnit reports whether path is itself a tracked unit
func (t *SingleDepthTracker) IsUnit(path string) bool {
	p, err := domain.ParsePath(path)
	if err != nil {
		return false
	}
	unit, ok := domain.TrackedUnit(t.baseDir, t.units, p)
	return ok && unit.Len() == p.Len()
}

func (t *SingleDepthTracker) mark(ctx context.Context, files []string) (*domain.MarkStats, error) {
	logger := ctxlog.FromContext(ctx)
	units, skipped := t.collectUnits(ctx, files)
	stats := &domain.MarkStats{Inputs: len(files), Skipped: skipped}

	now := t.now()
	for unit := range units {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := t.writer.SetLastAccessTime(ctx, unit, now); err != nil {
			return stats, &WriteError{Unit: unit, Err: err}
		}
		stats.Units++
		logger.Debug("marked unit accessed", "unit", unit)
	}
	return stats, nil
}

// collectUnits maps files to the set of tracked units keyed by normalized path
func (t *SingleDepthTracker) collectUnits(ctx context.Context, files []string) (map[string]struct{}, int) {
	logger := ctxlog.FromContext(ctx)
	units := make(map[string]struct{}, len(files))
	skipped := 0

	for _, file := range files {
		p, err := domain.ParsePath(file)
		if err != nil {
			skipped++
			logger.Debug("skipping unresolvable path", "path", file, "error", err)
			continue
		}
		unit, ok := domain.TrackedUnit(t.baseDir, t.units, p)
		if !ok {
			skipped++
			logger.Debug("skipping path outside tracked units", "path", file)
			continue
		}
		units[unit.String()] = struct{}{}
	}
	return units, skipped
}
