package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when no delay is configured.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher follows a set of files and reports changes with debouncing.
// Rapid bursts (an editor truncating then writing, or a write followed by
// a rename) are collected and reported once things settle.
//
// The directory of each file is watched rather than the file itself, so
// atomic saves that replace the file through a rename keep being seen.
type FileWatcher struct {
	debounceDelay time.Duration

	fsw     *fsnotify.Watcher
	targets map[string]struct{}
	dirs    map[string]struct{}
	mu      sync.Mutex

	// Debouncing state
	timer        *time.Timer
	timerMu      sync.Mutex
	pendingPaths map[string]struct{}

	// Callback when changes are ready
	onChange func([]string)
	onError  func(error)

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a file watcher with the specified debounce delay.
// The onChange callback runs on a timer goroutine with the changed paths.
//
// Example:
//
//	w, err := NewWatcher(100*time.Millisecond, func(paths []string) {
//	    notify <- struct{}{}
//	})
//	w.Add("/home/me/.config/app/settings.json")
func NewWatcher(debounceDelay time.Duration, onChange func([]string)) (*FileWatcher, error) {
	if debounceDelay <= 0 {
		debounceDelay = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &FileWatcher{
		debounceDelay: debounceDelay,
		fsw:           fsw,
		targets:       make(map[string]struct{}),
		dirs:          make(map[string]struct{}),
		pendingPaths:  make(map[string]struct{}),
		onChange:      onChange,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// OnError sets a callback for errors reported by the OS watcher
func (w *FileWatcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// Add starts following path. The file does not need to exist yet.
func (w *FileWatcher) Add(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.targets[path] = struct{}{}
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		delete(w.targets, path)
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// FileChanged notifies the watcher of a file change.
// Multiple rapid calls are debounced into a single onChange callback.
func (w *FileWatcher) FileChanged(path string) {
	if !w.isTarget(path) {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	w.pendingPaths[filepath.Clean(path)] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.processPending)
}

// Stop shuts down the watcher. Pending changes are dropped.
func (w *FileWatcher) Stop() error {
	w.cancel()
	err := w.fsw.Close()
	<-w.done

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()
	return err
}

// run pumps fsnotify events into FileChanged
func (w *FileWatcher) run() {
	defer close(w.done)
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.FileChanged(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			onError := w.onError
			w.mu.Unlock()
			if onError != nil {
				onError(err)
			}
		}
	}
}

// processPending is called after debounce delay.
// It triggers the onChange callback with accumulated paths.
func (w *FileWatcher) processPending() {
	w.timerMu.Lock()

	paths := make([]string, 0, len(w.pendingPaths))
	for path := range w.pendingPaths {
		paths = append(paths, path)
	}

	w.pendingPaths = make(map[string]struct{})
	w.timer = nil

	w.timerMu.Unlock()

	if w.ctx.Err() != nil {
		return
	}
	// Trigger callback (outside lock)
	if len(paths) > 0 && w.onChange != nil {
		w.onChange(paths)
	}
}

func (w *FileWatcher) isTarget(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.targets[filepath.Clean(path)]
	return ok
}
