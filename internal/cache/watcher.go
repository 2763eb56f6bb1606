package cache

import (
	"path/filepath"
	"sync"

	"pillar/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher turns fsnotify events into cache invalidation hints. It never
// re-reads anything itself: the event loop drains Invalidations and calls
// Invalidate on the cache, keeping all cache mutation single-threaded and
// preserving the read-on-demand staleness policy.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	invalidations chan string
	stopChan      chan struct{}

	mutex   sync.Mutex
	watched map[string]bool
	running bool
}

// NewWatcher creates a directory watcher using fsnotify.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher:     fsWatcher,
		invalidations: make(chan string, 16),
		stopChan:      make(chan struct{}),
		watched:       make(map[string]bool),
	}, nil
}

// Watch registers a directory. Errors are logged and swallowed: a directory
// that vanished or cannot be watched just goes stale until invalidated
// explicitly.
func (w *Watcher) Watch(dir string) {
	w.mutex.Lock()
	already := w.watched[dir]
	if !already {
		w.watched[dir] = true
	}
	w.mutex.Unlock()
	if already {
		return
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		log.Debug("watch failed for %s: %v", dir, err)
		return
	}
	log.WithFields(log.F("directory", dir)).Debug("watching directory")
}

// Invalidations delivers directory paths whose cached listing is suspect.
func (w *Watcher) Invalidations() <-chan string {
	return w.invalidations
}

// Start begins translating filesystem events into invalidation hints.
func (w *Watcher) Start() {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// The changed path is a child of the watched directory; the
			// listing that went stale is its parent's.
			dir := filepath.Dir(event.Name)
			select {
			case w.invalidations <- dir:
			default:
				// A full channel means a refresh is already pending.
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	_ = w.fsWatcher.Close()
}
