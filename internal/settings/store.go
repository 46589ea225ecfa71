package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/billie-coop/winprefs/internal/logging"
	"github.com/billie-coop/winprefs/internal/watcher"
)

// Store owns one instance's settings document. It keeps the values in
// memory, tracks whether they differ from what is on disk, writes them back
// on request and merges edits made to the file by other processes.
//
// A Store is not safe for concurrent use. All calls, including Reload in
// response to Changes, are expected to come from one event loop.
type Store struct {
	path     string
	values   *Document
	snapshot *Document

	watch   *watcher.FileWatcher
	changes chan struct{}
	log     *logging.Logger
}

type storeOptions struct {
	template Template
	debounce time.Duration
	logger   *logging.Logger
	noWatch  bool
}

// Option configures Open
type Option func(*storeOptions)

// WithTemplate sets the document a new instance is seeded from
func WithTemplate(t Template) Option {
	return func(o *storeOptions) { o.template = t }
}

// WithDebounce sets how long file events settle before a notification
func WithDebounce(d time.Duration) Option {
	return func(o *storeOptions) { o.debounce = d }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

// WithoutWatch disables the file watch; Changes never fires
func WithoutWatch() Option {
	return func(o *storeOptions) { o.noWatch = true }
}

// Open loads the document for instanceID from dir, seeding it from the
// template the first time the instance is seen, and starts watching it.
func Open(dir Dir, instanceID string, opts ...Option) (*Store, error) {
	o := storeOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := dir.Ensure(); err != nil {
		return nil, err
	}

	path := dir.DocumentPath(instanceID)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := o.template.Bytes()
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to create settings file: %w", err)
		}
		o.logger.Logf("Seeded %s from default template", path)
	}

	s := &Store{
		path:    path,
		values:  NewDocument(),
		changes: make(chan struct{}, 1),
		log:     o.logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	if !o.noWatch {
		w, err := watcher.NewWatcher(o.debounce, s.notify)
		if err != nil {
			return nil, err
		}
		w.OnError(s.log.LogError)
		if err := w.Add(path); err != nil {
			_ = w.Stop()
			return nil, err
		}
		s.watch = w
	}

	return s, nil
}

// Path returns the document path
func (s *Store) Path() string {
	return s.path
}

// Get returns the in-memory value for key
func (s *Store) Get(key string) (Value, bool) {
	return s.values.Get(key)
}

// Keys returns the document keys in order
func (s *Store) Keys() []string {
	return s.values.Keys()
}

// Document returns a copy of the in-memory mapping
func (s *Store) Document() *Document {
	return s.values.Clone()
}

// SetEntry updates key when it exists and value differs, persisting
// immediately when persistNow is set. Unknown keys and unchanged values
// are ignored.
func (s *Store) SetEntry(key string, value Value, persistNow bool) error {
	current, ok := s.values.Get(key)
	if !ok || current == value {
		return nil
	}
	s.values.Set(key, value)
	if persistNow {
		return s.Persist()
	}
	return nil
}

// Changed reports whether the in-memory values differ from the last
// loaded or written snapshot
func (s *Store) Changed() bool {
	return !s.values.Equal(s.snapshot)
}

// Persist writes the document when it has changed
func (s *Store) Persist() error {
	if !s.Changed() {
		return nil
	}

	data, err := s.values.Encode()
	if err != nil {
		return err
	}

	// Write through a symlink to its target, keeping the file mode
	target := s.path
	if resolved, err := filepath.EvalSymlinks(s.path); err == nil {
		target = resolved
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	// Write atomically (write to temp file, then rename)
	tempFile := target + ".tmp"
	if err := os.WriteFile(tempFile, data, mode); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Chmod(tempFile, mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tempFile, target); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	s.snapshot = s.values.Clone()
	s.log.Logf("Wrote %s", s.path)
	return nil
}

// Reload re-reads the document and merges it into memory: every key whose
// file value differs overwrites the in-memory value, keys missing from the
// file are kept. The snapshot is then reset to the merged values, so local
// edits on untouched keys stop counting as changed. This holds even when
// the file is byte-for-byte what this store last wrote.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	fresh, err := ParseDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	merged := 0
	fresh.Range(func(key string, value Value) bool {
		if current, ok := s.values.Get(key); !ok || current != value {
			s.values.Set(key, value)
			merged++
		}
		return true
	})
	s.snapshot = s.values.Clone()
	s.log.Logf("Reloaded %s, %d value(s) merged", s.path, merged)
	return nil
}

// Changes delivers a notification after the document was modified on
// disk. Notifications coalesce; the receiver should call Reload.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// Close releases the file watch
func (s *Store) Close() error {
	if s.watch == nil {
		return nil
	}
	err := s.watch.Stop()
	s.watch = nil
	return err
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	s.values = doc
	s.snapshot = doc.Clone()
	return nil
}

// notify runs on the watcher's timer goroutine and only touches the channel
func (s *Store) notify([]string) {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
