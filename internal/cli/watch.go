package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one regeneration.
const debounceDelay = 300 * time.Millisecond

// watch reruns run whenever a hand-written Go source file under dir
// changes. It returns when ctx is cancelled. Generation errors are
// logged and do not stop the loop.
func watch(ctx context.Context, dir string, run func() error, logf func(string, ...any)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addRecursive(w, dir); err != nil {
		return err
	}
	logf("nativecom: watching %s", dir)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// Newly created subdirectories need their own watch.
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addRecursive(w, ev.Name)
				}
			}
			if !watchable(ev.Name) {
				continue
			}
			logf("nativecom: %s changed", ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logf("nativecom: watch error: %v", err)
		case <-fire:
			timer, fire = nil, nil
			if err := run(); err != nil {
				logf("nativecom: generation failed: %v", err)
			}
		}
	}
}

// watchable reports whether a change to name should trigger regeneration.
// Generated files are skipped so the tool's own writes do not retrigger it.
func watchable(name string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".go") {
		return false
	}
	return !strings.HasPrefix(base, "nativecom_")
}

func addRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		name := d.Name()
		if path != dir && (strings.HasPrefix(name, ".") || name == "testdata" || name == "vendor") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
