package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports writes to stylesheets in the watched files and directories.
type Watcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.SugaredLogger
	dirs      map[string]bool
	paths     map[string]bool
	recursive bool

	mu     sync.Mutex
	ignore map[string]bool
}

// NewWatcher returns a new Watcher.
func NewWatcher(recursive bool, log *zap.SugaredLogger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:   watcher,
		log:       log,
		dirs:      map[string]bool{},
		paths:     map[string]bool{},
		ignore:    map[string]bool{},
		recursive: recursive,
	}, nil
}

// Close stops watching, the channel returned by Run is closed afterwards.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// AddPath adds a file or directory to watch. Directories are only watched in recursive mode.
// Paths must be added before calling Run.
func (w *Watcher) AddPath(root string) error {
	w.paths[filepath.Clean(root)] = true

	info, err := os.Lstat(root)
	if err != nil {
		return err
	}

	if info.Mode().IsRegular() {
		root = filepath.Dir(root)
		if w.dirs[root] {
			return nil
		}
		if err := w.watcher.Add(root); err != nil {
			return err
		}
		w.dirs[root] = true
	} else if info.Mode().IsDir() && w.recursive {
		return fs.WalkDir(NewFS(), filepath.Clean(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if w.dirs[path] {
					return fs.SkipDir
				}
				if err := w.watcher.Add(path); err != nil {
					return err
				}
				w.dirs[path] = true
			}
			return nil
		})
	}
	return nil
}

// IgnoreNext skips the next write event of filename, used for our own output files.
func (w *Watcher) IgnoreNext(filename string) {
	if filename == "" {
		return
	}
	w.mu.Lock()
	w.ignore[filepath.Clean(filename)] = true
	w.mu.Unlock()
}

func (w *Watcher) ignored(filename string) bool {
	filename = filepath.Clean(filename)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ignore[filename] {
		delete(w.ignore, filename)
		return true
	}
	return false
}

// watched returns true if filename is a watched file or lies in a watched directory.
func (w *Watcher) watched(filename string) bool {
	filename = filepath.Clean(filename)
	for path := range w.paths {
		if path == filename || path == "." && !filepath.IsAbs(filename) && !strings.HasPrefix(filename, "..") {
			return true
		} else if strings.HasPrefix(filename, path+string(filepath.Separator)) && IsDir(path) {
			return true
		}
	}
	return false
}

// Run watches for file changes and sends the names of written files.
func (w *Watcher) Run() chan string {
	files := make(chan string, 10)
	go func() {
		changetimes := map[string]time.Time{}
		for w.watcher.Events != nil && w.watcher.Errors != nil {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.watcher.Events = nil
					break
				} else if !w.watched(event.Name) {
					break
				}

				info, err := os.Lstat(event.Name)
				if err != nil {
					break
				}
				if info.Mode().IsDir() && w.recursive {
					if event.Op&fsnotify.Create == fsnotify.Create {
						if err := w.AddPath(event.Name); err != nil {
							w.log.Error(err)
						}
					}
				} else if info.Mode().IsRegular() && event.Op&fsnotify.Write == fsnotify.Write {
					if w.ignored(event.Name) {
						break
					}
					if t, ok := changetimes[event.Name]; !ok || 100*time.Millisecond < time.Since(t) {
						time.Sleep(100 * time.Millisecond) // wait for the write to finish
						files <- event.Name
						changetimes[event.Name] = time.Now()
					}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.watcher.Errors = nil
					break
				}
				w.log.Error(err)
			}
		}
		close(files)
	}()
	return files
}
