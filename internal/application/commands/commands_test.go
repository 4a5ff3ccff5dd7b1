package commands

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"accesstrack/internal/application"
	"accesstrack/internal/domain"
)

// memJournal is an in-memory ports.AccessJournal
type memJournal struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newMemJournal() *memJournal {
	return &memJournal{entries: make(map[string]time.Time)}
}

func (j *memJournal) SetLastAccessTime(_ context.Context, path string, t time.Time) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[path] = t
	return nil
}

func (j *memJournal) LastAccessTime(_ context.Context, path string) (time.Time, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	t, ok := j.entries[path]
	return t, ok, nil
}

func (j *memJournal) DeleteLastAccessTime(_ context.Context, path string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.entries, path)
	return nil
}

func (j *memJournal) List(_ context.Context) ([]domain.AccessRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var records []domain.AccessRecord
	for p, t := range j.entries {
		records = append(records, domain.AccessRecord{Path: p, LastAccess: t})
	}
	sort.Slice(records, func(i, k int) bool { return records[i].Path < records[k].Path })
	return records, nil
}

func (j *memJournal) Close() error { return nil }

func setupTracker(t *testing.T) (*application.SingleDepthTracker, *memJournal) {
	t.Helper()
	journal := newMemJournal()
	tracker, err := application.NewSingleDepthTracker(journal, "/cache", 2,
		application.WithClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) }))
	if err != nil {
		t.Fatalf("NewSingleDepthTracker failed: %v", err)
	}
	return tracker, journal
}

func TestMarkAccessedCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		wantErr bool
		errMsg  string
	}{
		{name: "valid files", files: []string{"/cache/a/b/c"}, wantErr: false},
		{name: "no files", files: nil, wantErr: true, errMsg: "at least one file is required"},
		{name: "blank file", files: []string{""}, wantErr: true, errMsg: "file 0 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MarkAccessedCommand{Files: tt.files}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMarkAccessedCommand_Execute(t *testing.T) {
	tracker, journal := setupTracker(t)

	cmd := NewMarkAccessedCommand(tracker, []string{
		"/cache/a/b/c/d.txt",
		"/cache/a/b/e/f.txt",
		"/other/a/b/c.txt",
	})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if diff := cmp.Diff([]string{"/cache/a/b"}, result.Units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
	if result.Message != "Marked 1 unit(s) accessed (3 file(s) given)" {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if _, ok := journal.entries["/cache/a/b"]; !ok {
		t.Error("expected /cache/a/b to be journaled")
	}
	if len(journal.entries) != 1 {
		t.Errorf("expected 1 journal entry, got %d", len(journal.entries))
	}
}

func TestResolveUnitsCommand_Execute(t *testing.T) {
	tracker, journal := setupTracker(t)

	units, err := NewResolveUnitsCommand(tracker, []string{"/cache/x/y/z", "/cache/a/b/c"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if diff := cmp.Diff([]string{"/cache/a/b", "/cache/x/y"}, units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
	if len(journal.entries) != 0 {
		t.Error("resolve must not write")
	}
}

func TestLastAccessedCommand(t *testing.T) {
	tracker, journal := setupTracker(t)
	ctx := context.Background()

	if _, err := NewMarkAccessedCommand(tracker, []string{"/cache/a/b/file"}).Execute(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	t.Run("journaled unit", func(t *testing.T) {
		result, err := NewLastAccessedCommand(tracker, journal, "/cache/a/b/").Execute(ctx)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.Unit != "/cache/a/b" {
			t.Errorf("expected unit /cache/a/b, got %s", result.Unit)
		}
		if result.LastAccess.UnixMilli() != 1_700_000_000_000 {
			t.Errorf("unexpected last access %v", result.LastAccess)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := NewLastAccessedCommand(tracker, journal, "/cache/z/z").Execute(ctx)
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("not a unit", func(t *testing.T) {
		_, err := NewLastAccessedCommand(tracker, journal, "/cache/a/b/file").Execute(ctx)
		var valErr *application.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !strings.Contains(err.Error(), "not a tracked unit") {
			t.Errorf("unexpected message: %v", err)
		}
	})
}

func TestForgetCommand(t *testing.T) {
	tracker, journal := setupTracker(t)
	ctx := context.Background()
	journal.entries["/cache/a/b"] = time.Now()

	result, err := NewForgetCommand(tracker, journal, "/cache/a/b").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Message != "Forgot /cache/a/b" {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if _, ok := journal.entries["/cache/a/b"]; ok {
		t.Error("expected entry to be removed")
	}

	if _, err := NewForgetCommand(tracker, journal, "").Execute(ctx); err == nil {
		t.Error("expected error for empty unit")
	}
}
