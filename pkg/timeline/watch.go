package timeline

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a timeline file whenever it changes on disk. Reloaded
// files arrive on Files; load and parse failures arrive on Errors. Both
// channels close when the watcher is closed.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	closeCh chan struct{}
	once    sync.Once

	// Files receives each successfully reloaded timeline.
	Files chan *File
	// Errors receives reload failures.
	Errors chan error
}

// Watch starts watching path. The parent directory is watched rather
// than the file itself, so editors that replace the file on save keep
// triggering reloads.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		closeCh: make(chan struct{}),
		Files:   make(chan *File, 1),
		Errors:  make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Files and Errors close once the watch
// goroutine has drained.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Files)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			// Editors fire bursts of events per save.
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			f, err := Load(w.path)
			if err != nil {
				select {
				case w.Errors <- err:
				case <-w.closeCh:
					return
				}
				continue
			}
			select {
			case w.Files <- f:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
