package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/model"
)

// DefaultDebounce is how long the file must be quiet before it is reloaded
const DefaultDebounce = 150 * time.Millisecond

// Watch reloads the catalog whenever its file changes and delivers the new
// snapshot on the returned channel. The directory is watched rather than the
// file so editors that replace the file on save are followed. The channel is
// closed once ctx is done.
func (s *Source) Watch(ctx context.Context, debounce time.Duration) (<-chan model.Snapshot, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path, err := filepath.Abs(s.store.FilePath)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan model.Snapshot)
	go s.watchLoop(ctx, watcher, path, debounce, out)
	return out, nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, out chan<- model.Snapshot) {
	defer close(out)
	defer watcher.Close()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("catalog watcher error", zap.Error(err))

		case <-timer.C:
			if err := s.Reload(); err != nil {
				s.logger.Warn("catalog reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			select {
			case out <- s.Snapshot():
			case <-ctx.Done():
				return
			}
		}
	}
}
