package preset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads path into the store whenever the file is written, created
// or renamed into place, until ctx is done. The parent directory is watched
// so that editors which replace the file atomically are picked up. onReload,
// if set, is called after every reload attempt.
func (s *Store) Watch(ctx context.Context, path string, onReload func(*Registry, error), opts ...Option) error {
	o := &loadOptions{logger: log.Log}
	for _, opt := range opts {
		opt(o)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	logger := o.logger.WithField("path", target)
	logger.Info("watching preset file")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			reg, err := s.ReloadFile(target, opts...)
			if err != nil {
				logger.WithError(err).Error("reload failed, keeping previous presets")
			} else {
				logger.WithFields(log.Fields{
					"revision": reg.Revision(),
					"presets":  reg.Len(),
				}).Info("presets reloaded")
			}
			if onReload != nil {
				onReload(reg, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("file watcher error")
		}
	}
}
