// Package watch reports changes made to the board database by other
// processes, such as the CLI writing while the TUI is open.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the file must stay quiet before a change is
// reported. sqlite touches the database, its WAL and its shm file for a
// single write.
const DefaultDebounce = 150 * time.Millisecond

// sqlite side files that change together with the database
var sideFileSuffixes = []string{"", "-wal", "-journal", "-shm"}

// Watcher watches one sqlite database file
type Watcher struct {
	fs       *fsnotify.Watcher
	names    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watcher errors
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New watches the directory holding path. The directory must exist.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fs:       fsw,
		names:    make(map[string]bool, len(sideFileSuffixes)),
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, suffix := range sideFileSuffixes {
		w.names[filepath.Base(abs)+suffix] = true
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run delivers one value per quiet period after the database changed. The
// channel holds at most one pending change and is closed when ctx is done or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context) <-chan struct{} {
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)

		timer := time.NewTimer(w.debounce)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)

			case <-timer.C:
				select {
				case changes <- struct{}{}:
				default:
					// A change is already waiting to be picked up
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				w.logger.Warn("database watcher error", "error", err)
			}
		}
	}()

	return changes
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.names[filepath.Base(event.Name)] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
