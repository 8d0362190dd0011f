package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports debounced change notifications for one file. The
// parent directory is watched rather than the file itself, because most
// editors save by writing a temp file and renaming it over the original,
// which would silently detach a direct file watch.
type FileWatcher struct {
	path   string
	fw     *fsnotify.Watcher
	deb    *Debouncer
	events chan struct{}
}

// WatchFile starts watching the given file. A zero debounce uses
// DefaultDebounce.
func WatchFile(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		path:   abs,
		fw:     fw,
		deb:    NewDebouncer(debounce),
		events: make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Events delivers one notification per debounced burst of changes. No
// events are delivered after Close; the channel itself stays open so a
// late debounce firing can never panic a receiver.
func (w *FileWatcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and releases resources.
func (w *FileWatcher) Close() error {
	w.deb.Cancel()
	return w.fw.Close()
}

func (w *FileWatcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.deb.Trigger(func() {
				select {
				case w.events <- struct{}{}:
				default:
				}
			})
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable mid-session; the next
			// successful event resumes normal operation.
		}
	}
}
