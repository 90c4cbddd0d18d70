// Package watcher monitors the catalog file for changes.
//
// The CSV is typically replaced wholesale (download, copy over, rename),
// which surfaces as a burst of write events. Events are debounced with a
// settle delay: the callback fires only after the file has stayed quiet
// for the configured duration.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single file by watching its parent directory.
// Watching the directory rather than the file itself survives editors
// and downloaders that replace the file instead of writing in place.
type Watcher struct {
	path        string
	settleDelay time.Duration
	onSettle    func()
	logger      *slog.Logger

	fs *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a watcher for the file at path. onSettle runs after each
// settled change burst.
func New(path string, settleDelay time.Duration, onSettle func(), logger *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:        path,
		settleDelay: settleDelay,
		onSettle:    onSettle,
		logger:      logger,
		fs:          fs,
		done:        make(chan struct{}),
	}, nil
}

// Start processes events until the context is cancelled or Stop is
// called. It blocks.
func (w *Watcher) Start(ctx context.Context) error {
	w.wg.Add(1)
	defer w.wg.Done()

	w.logger.Info("watching catalog file", "path", w.path, "settle_delay", w.settleDelay)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// Stop stops the watcher and releases resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fs.Close()
	})
	w.wg.Wait()
	return err
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
		return
	}

	w.logger.Debug("catalog file event", "op", event.Op.String())
	w.resetTimer()
}

// resetTimer (re)arms the settle timer. Each event during a burst
// pushes the callback further out, so it fires once per burst.
func (w *Watcher) resetTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.settleDelay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.logger.Debug("catalog file settled", "path", w.path)
		w.onSettle()
	})
}
