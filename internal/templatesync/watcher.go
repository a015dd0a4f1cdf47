package templatesync

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ayush179959/DocuFlow/internal/store"
)

// EventCallback is called after a watcher-driven catalog change.
// kind is one of "imported", "removed".
type EventCallback func(kind string, file string)

// Watch starts an fsnotify watcher on the templates directory and keeps the
// template table in sync until ctx is cancelled. It calls cb (if non-nil)
// after each successful catalog mutation.
func Watch(ctx context.Context, catalog store.Catalog, dir string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("templatesync: watching", slog.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			logger.Info("templatesync: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				if info, statErr := os.Stat(ev.Name); statErr != nil || info.IsDir() {
					continue
				}
				if impErr := importFile(catalog, ev.Name, logger); impErr != nil {
					logger.Warn("templatesync: import failed",
						slog.String("file", ev.Name),
						slog.String("error", impErr.Error()))
					continue
				}
				if cb != nil {
					cb("imported", ev.Name)
				}

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Rename fires on the old path; a Create event follows
				// for the new path if it lands back in the directory.
				removeFile(catalog, ev.Name, logger)
				if cb != nil {
					cb("removed", ev.Name)
				}
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("templatesync: error", slog.String("error", watchErr.Error()))
		}
	}
}
