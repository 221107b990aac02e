package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow swallows the burst of events editors emit for one save.
const debounceWindow = 100 * time.Millisecond

// watchedExts limits reload events to the file types the registry can load.
var watchedExts = map[string]bool{
	".yaml":  true,
	".yml":   true,
	".tengo": true,
}

// Watcher reports edits to on-disk prefab files so the game loop can reload
// archetypes without restarting. Events carries the changed path; the
// receiver decides what to reload.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for yaml and script changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	lastSeen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !eventMatters(event) {
				continue
			}
			now := time.Now()
			if t, ok := lastSeen[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			lastSeen[event.Name] = now
			w.Events <- event.Name
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

func eventMatters(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return watchedExts[strings.ToLower(filepath.Ext(event.Name))]
}
