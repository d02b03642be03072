// Package watch provides file watching support for re-running validation.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// under a root before reporting it. Editors and build tools write in
// bursts; one re-validation per burst is enough.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches project roots and reports which root changed.
//
// Only the root directory itself is watched: every file the validation
// reads (manifest, license, ignore file, entry point) lives directly at
// the root, and artifact directories like node_modules appear and
// disappear as direct entries of it.
type Watcher struct {
	mu sync.Mutex

	// fsWatcher is the underlying file watcher.
	fsWatcher *fsnotify.Watcher

	// roots maps each watched directory to the project root it was
	// registered as.
	roots map[string]string

	// pending holds the per-root debounce timers.
	pending map[string]*time.Timer

	// debounce is the quiet period before a change is reported.
	debounce time.Duration

	// Events channel receives a project root after its files change.
	Events chan string

	// Errors channel receives watcher errors.
	Errors chan error

	// done signals the watcher to stop.
	done chan struct{}

	closeOnce sync.Once
}

// New creates a watcher over the given project roots.
func New(roots []string) (*Watcher, error) {
	return NewWithDebounce(roots, DefaultDebounce)
}

// NewWithDebounce creates a watcher with a custom debounce interval.
func NewWithDebounce(roots []string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		roots:     make(map[string]string),
		pending:   make(map[string]*time.Timer),
		debounce:  debounce,
		Events:    make(chan string, 16),
		Errors:    make(chan error, 16),
		done:      make(chan struct{}),
	}

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			w.close()
			return nil, fmt.Errorf("resolving %s: %w", root, err)
		}
		if err := w.fsWatcher.Add(abs); err != nil {
			w.close()
			return nil, fmt.Errorf("watching %s: %w", root, err)
		}
		w.roots[abs] = root
	}

	go w.run()

	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.close()
	return nil
}

func (w *Watcher) close() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
	})
}

// run processes file system events until the watcher is closed.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// handleEvent schedules a debounced notification for the root the event
// belongs to.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	dir := filepath.Dir(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	root, ok := w.roots[dir]
	if !ok {
		// Event for the watched directory itself (e.g., the root removed).
		if r, selfOk := w.roots[filepath.Clean(event.Name)]; selfOk {
			root, ok = r, true
		}
	}
	if !ok {
		return
	}

	if timer, exists := w.pending[root]; exists {
		timer.Reset(w.debounce)
		return
	}

	w.pending[root] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, root)
		w.mu.Unlock()

		select {
		case w.Events <- root:
		case <-w.done:
		}
	})
}
