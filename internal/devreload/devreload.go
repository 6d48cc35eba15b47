// Package devreload drops cached templates whenever the template directory
// changes, so edits show up on the next request without a restart.
package devreload

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Run waits after the last change before
// resetting, since editors tend to emit several events for one save.
const DefaultDebounce = 50 * time.Millisecond

// Resetter is anything holding state derived from the watched files.
// *render.CachedSite satisfies it.
type Resetter interface {
	Reset(ctx context.Context)
}

// Watcher resets a Resetter when files in a directory change.
type Watcher struct {
	dir      string
	target   Resetter
	logger   *slog.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New starts watching dir. Events are only acted on once Run is called.
func New(dir string, target Resetter, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}
	return &Watcher{
		dir:      dir,
		target:   target,
		logger:   logger,
		debounce: DefaultDebounce,
		watcher:  fsw,
	}, nil
}

// SetDebounce changes the quiet period Run waits for. It must be called
// before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run resets the target after every burst of write, create, remove or
// rename events until ctx is done. It closes the underlying watcher before
// returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(0)
	<-timer.C
	var changed []string

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			changed = append(changed, filepath.Base(event.Name))
			timer.Reset(w.debounce)

		case <-timer.C:
			w.target.Reset(ctx)
			w.logger.InfoContext(ctx, "templates changed, cache reset", "dir", w.dir, "files", changed)
			changed = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "template watcher error", "dir", w.dir, "error", err)
		}
	}
}
