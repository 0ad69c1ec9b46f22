package binding

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the bindings file at path whenever it changes and hands
// each successfully parsed Set to onChange. Parse errors are logged and the
// previous Set stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Set)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("Watching bindings", "file", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			set, err := Load(abs)
			if err != nil {
				logger.Warn("Failed to reload bindings", "file", abs, "error", err)
				continue
			}
			logger.Info("Reloaded bindings", "file", abs, "actions", set.Len())
			onChange(set)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("Bindings watcher error", "error", err)
		}
	}
}
