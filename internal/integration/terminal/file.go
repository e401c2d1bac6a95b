package terminal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceInterval = 100 * time.Millisecond

// FileSource reads rows from a file. Unlike ReaderSource it rereads the file
// on every call, so it can follow a file that changes.
type FileSource struct {
	path string
}

// NewFileSource creates a Source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Rows reads the file and splits it into rows.
func (s *FileSource) Rows(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return Lines(string(data)), nil
}

var _ Source = (*FileSource)(nil)

// FileWatcher signals when a file is written, created, or replaced.
type FileWatcher struct {
	fs      *fsnotify.Watcher
	name    string
	changes chan struct{}
	done    chan struct{}
	once    sync.Once
	log     zerolog.Logger
}

// WatchFile starts watching path. The parent directory is watched so
// editors that replace the file by renaming are followed too.
func WatchFile(path string, log zerolog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsW.Add(filepath.Dir(abs)); err != nil {
		_ = fsW.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		fs:      fsW,
		name:    abs,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}

	go w.watchLoop()
	return w, nil
}

// Changes delivers one value per burst of changes. It is closed by Close.
func (w *FileWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *FileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// watchLoop processes fsnotify events with debouncing.
func (w *FileWatcher) watchLoop() {
	defer close(w.changes)

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Name != w.name || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}

			// Debounce: reset timer on each event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			select {
			case w.changes <- struct{}{}:
			default:
				// a change is already pending
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("file", w.name).Msg("watch error")
		}
	}
}
