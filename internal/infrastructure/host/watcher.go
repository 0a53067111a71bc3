package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/logging"
	"github.com/bnema/linkpeek/internal/ui/mainloop"
)

// DocumentWatcher reloads a markdown file when it changes on disk and hands
// the new content to the loop. Bursts of writes that arrive before the loop
// runs collapse into one callback carrying the latest content.
type DocumentWatcher struct {
	path      string
	scheduler port.Scheduler
	onChange  func(content string)
}

// NewDocumentWatcher creates a watcher for path. onChange runs on the loop.
func NewDocumentWatcher(path string, scheduler port.Scheduler, onChange func(content string)) *DocumentWatcher {
	return &DocumentWatcher{path: path, scheduler: scheduler, onChange: onChange}
}

// Run watches until ctx is done. The parent directory is watched so that
// editors replacing the file by rename are picked up.
func (w *DocumentWatcher) Run(ctx context.Context) error {
	log := logging.FromContext(logging.WithComponent(ctx, "doc-watcher"))

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close file watcher")
		}
	}()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log.Debug().Str("path", abs).Msg("watching document")

	coalescer := mainloop.NewCoalescer(w.scheduler.Post)
	defer coalescer.Destroy()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(abs)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				log.Warn().Err(err).Msg("failed to read changed document")
				continue
			}
			content := string(data)
			log.Debug().Int("bytes", len(data)).Msg("document changed")
			coalescer.Post(abs, func() { w.onChange(content) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
