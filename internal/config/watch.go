package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is the result of reloading a changed config file.
type Update struct {
	Config Config
	Err    error
}

// Watch reloads path whenever it is written, created or renamed into place and sends
// the result. The directory is watched rather than the file so editors that replace
// the file are seen. The channel holds one update; a newer update replaces one the
// frame loop has not read yet. It is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config %s: %w", dir, err)
	}
	want := filepath.Clean(path)
	out := make(chan Update, 1)

	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != want {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				c, err := Load(path)
				send(out, Update{Config: c, Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(out, Update{Config: Default(), Err: err})
			}
		}
	}()
	return out, nil
}

// send replaces an unread update so the channel never blocks the watcher.
func send(out chan Update, u Update) {
	for {
		select {
		case out <- u:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
