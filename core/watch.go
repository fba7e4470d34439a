package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/huangsam/pdpboard/internal/contract"
)

// DefaultDebounce is how long the watcher waits for the workbook to settle.
const DefaultDebounce = 500 * time.Millisecond

// debouncer coalesces rapid events into a single callback invocation.
type debouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()

	running sync.Mutex // held while the callback runs
	stopped bool       // guarded by running
}

func newDebouncer(window time.Duration, callback func()) *debouncer {
	return &debouncer{window: window, callback: callback}
}

// trigger resets the timer. The callback fires once the window passes quietly.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs the callback unless the debouncer was stopped. Callbacks never overlap.
func (d *debouncer) fire() {
	d.running.Lock()
	defer d.running.Unlock()
	if d.stopped {
		return
	}
	d.callback()
}

// stop cancels any pending callback and waits for a running one to return.
// No callback starts after stop returns.
func (d *debouncer) stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.running.Lock()
	d.stopped = true
	d.running.Unlock()
}

// WatchDashboard re-renders the dashboard each time the workbook changes.
// It watches the parent directory since spreadsheet editors usually replace
// the file instead of writing in place. It blocks until ctx is cancelled.
func WatchDashboard(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager, debounce time.Duration) error {
	return watchFile(ctx, cfg.DataPath, debounce, func() {
		rebuildCtx := withSuppressHeader(ctx)
		if err := renderDashboard(rebuildCtx, cfg, loader, mgr); err != nil {
			contract.LogWarn("Dashboard rebuild failed", err)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "🔁 Rebuilt dashboard from %s\n", filepath.Base(cfg.DataPath))
	})
}

// watchFile calls onChange after changes to path have settled for the debounce window.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	d := newDebouncer(debounce, func() {
		if ctx.Err() != nil {
			return
		}
		onChange()
	})
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Rename) {
				d.trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
