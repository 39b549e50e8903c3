package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mordilloSan/envlog/logger"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	// Path is the config file to watch.
	Path string
	// OnChange receives every successfully parsed version of the file.
	OnChange func(File)
	// OnError receives load and watcher errors; nil drops them.
	OnError func(error)
	// Log traces file events. The zero Logger is silent.
	Log logger.Logger
}

// Run watches until ctx is done. The parent directory is watched rather than
// the file itself so that editors which replace the file by rename keep
// triggering reloads.
func (w Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	target := filepath.Clean(w.Path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			w.Log.OutKV("config event", "op", event.Op.String(), "name", event.Name)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			f, err := Load(target)
			if err != nil {
				w.report(err)
				continue
			}
			if w.OnChange != nil {
				w.OnChange(f)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.report(err)
		}
	}
}

func (w Watcher) report(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
