package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"accesstrack/internal/ctxlog"
	"accesstrack/internal/ports"
)

// DefaultDebounce is how long the watcher waits for quiet before flushing.
const DefaultDebounce = 250 * time.Millisecond

// Config holds configuration for a Watcher.
type Config struct {
	// Root is the directory to watch recursively
	Root string
	// Debounce delays a flush until no event arrived for this long
	Debounce time.Duration
	// OnFlush is called after each batch is handed to the tracker (optional)
	OnFlush func(files []string, err error)
}

// Watcher marks tracked units accessed as files under Root change.
type Watcher struct {
	tracker ports.AccessTracker
	watcher *fsnotify.Watcher
	cfg     Config
}

// New creates a watcher and registers Root and every directory below it.
func New(tracker ports.AccessTracker, cfg Config) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addWatchTree(fw, cfg.Root, nil); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{tracker: tracker, watcher: fw, cfg: cfg}, nil
}

// Run processes events until ctx is done. Pending files are flushed before
// returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	logger := ctxlog.FromContext(ctx)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.cfg.Debounce)
	timer.Stop()
	defer timer.Stop()

	flush := func(ctx context.Context) {
		if len(pending) == 0 {
			return
		}
		files := make([]string, 0, len(pending))
		for f := range pending {
			files = append(files, f)
		}
		clear(pending)

		err := w.tracker.MarkAccessed(ctx, files)
		if err != nil {
			logger.Warn("failed to mark files accessed", "files", len(files), "error", err)
		}
		if w.cfg.OnFlush != nil {
			w.cfg.OnFlush(files, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush(context.WithoutCancel(ctx))
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				flush(ctx)
				return nil
			}

			// A directory moved or unpacked into place arrives populated and
			// its files raise no events of their own.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchTree(w.watcher, event.Name, func(path string) {
						pending[path] = struct{}{}
					})
				}
			}
			// Chmod is ignored: touching a unit raises it and would loop
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			pending[event.Name] = struct{}{}
			timer.Reset(w.cfg.Debounce)

		case <-timer.C:
			flush(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				flush(ctx)
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// addWatchTree watches root and every directory below it. visit, if set, is
// called for every entry found below root.
func addWatchTree(watcher *fsnotify.Watcher, root string, visit func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = watcher.Add(path)
		}
		if visit != nil && path != root {
			visit(path)
		}
		return nil
	})
}
