// Package watch observes a repository for changes so watch mode knows
// when to repaint the tree.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the quiet window after an event before a repaint; git
// operations touch many files in quick succession.
const Debounce = 600 * time.Millisecond

// Watcher wraps fsnotify and coalesces filesystem events into simple
// wake-up signals.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
	roots  []string
	skip   []string

	mu      sync.Mutex
	watched map[string]struct{}

	logf func(string, ...any)
}

// New creates a Watcher. logf receives non-fatal watcher errors.
func New(logf func(string, ...any)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		watched: make(map[string]struct{}),
		logf:    logf,
	}, nil
}

// Start watches the worktree and the git common directory (index and
// ref updates) and begins delivering events. The common directory
// subtree is skipped while walking the worktree so its churn is only
// observed through the explicit watches.
func (w *Watcher) Start(worktree, commonDir string) error {
	if commonDir != "" {
		w.skip = append(w.skip, commonDir)
		w.roots = append(w.roots, commonDir)
		w.addDir(commonDir)
		for _, sub := range []string{"refs", "logs"} {
			root := filepath.Join(commonDir, sub)
			w.roots = append(w.roots, root)
			w.addTree(root)
		}
	}
	if worktree != "" {
		w.roots = append(w.roots, worktree)
		w.addTree(worktree)
	}

	go w.run()
	return nil
}

// Events returns the wake-up channel. At most one signal is buffered;
// bursts collapse into a single wake-up.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.signal()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.debugf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// maybeWatchNewDir registers directories created under a watch root so
// new subtrees keep producing events.
func (w *Watcher) maybeWatchNewDir(path string) {
	if !w.isUnderRoot(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addDir(path)
}

func (w *Watcher) isUnderRoot(path string) bool {
	if path == "" {
		return false
	}
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) isSkipped(path string) bool {
	base := filepath.Base(path)
	if base == ".git" {
		return true
	}
	for _, skip := range w.skip {
		if path == skip || strings.HasPrefix(path, skip+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[path]; ok {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		w.debugf("watch add failed for %s: %v", path, err)
		return
	}
	w.watched[path] = struct{}{}
}

func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.isSkipped(path) {
			return filepath.SkipDir
		}
		w.addDir(path)
		return nil
	})
}

func (w *Watcher) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
