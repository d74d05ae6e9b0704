// Package filewatch notifies callers when a file is written.
package filewatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/vibepad/internal/logger"
)

// Watch calls fn each time path is written or replaced, until ctx is done.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temporary file are still seen. Errors returned by
// fn are logged and do not stop the watch.
func Watch(ctx context.Context, path string, fn func(path string) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := fn(abs); err != nil {
				logger.Warn("handling change to %s: %v", abs, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("watch events dropped for %s", abs)
				continue
			}
			return fmt.Errorf("watch %s: %w", abs, err)
		}
	}
}
