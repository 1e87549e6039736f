package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch loads path once, then reloads it every time it changes on disk, until ctx is done.
// fn receives each load outcome. The parent directory is watched so that editors which
// replace the file by renaming are still followed.
func (c *Cache) Watch(ctx context.Context, path string, fn func(*Result, error)) error {
	path = filepath.Clean(path)
	log := logger.Named("watch").With(zap.String("mesh", path))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	fn(c.Load(path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change detected", zap.Stringer("op", event.Op))
			c.Invalidate(path)
			fn(c.Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
