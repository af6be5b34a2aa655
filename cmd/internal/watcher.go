package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches the project sources and emits debounced change events
// so preview mode can rerun a full build.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	paths    []string
}

type WatcherConfig struct {
	Paths    []string
	Debounce time.Duration
}

type WatchEvent struct {
	Reason string
	Paths  []string
}

func NewFileWatcher(config WatcherConfig) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	debounce := config.Debounce
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		paths:    config.Paths,
	}, nil
}

func (fw *FileWatcher) Start(ctx context.Context) (<-chan WatchEvent, <-chan error, error) {
	eventCh := make(chan WatchEvent, 10)
	errorCh := make(chan error, 10)

	for _, path := range fw.paths {
		path = filepath.Clean(path)
		if err := fw.addRecursive(path); err != nil {
			select {
			case errorCh <- fmt.Errorf("watch warn: %s: %w", path, err):
			default:
			}
		}
	}

	go fw.watchLoop(ctx, eventCh, errorCh)

	return eventCh, errorCh, nil
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) watchLoop(ctx context.Context, eventCh chan<- WatchEvent, errorCh chan<- error) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(fw.debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(fw.debounce)
		timerC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-fw.watcher.Events:
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			pending[ev.Name] = struct{}{}
			resetTimer()

		case <-timerC:
			timerC = nil
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			select {
			case eventCh <- WatchEvent{Reason: "file change", Paths: paths}:
			default:
			}

		case err := <-fw.watcher.Errors:
			select {
			case errorCh <- fmt.Errorf("watch error: %w", err):
			default:
			}
		}
	}
}

func (fw *FileWatcher) addRecursive(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.watcher.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			base := filepath.Base(path)
			if base == ".git" || base == "page" || base == "logs" {
				return filepath.SkipDir
			}
			return fw.watcher.Add(path)
		}
		return nil
	})
}
