// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of changes, such as a package
// manager unpacking a font package.
const DefaultDebounce = 500 * time.Millisecond

// Watch calls fn after changes in any of dirs or their subdirectories
// settle for debounce, until ctx is done. Directories created later
// inside a watched tree are watched too. Directories that cannot be
// watched are skipped, including ones missing at startup; it is an
// error if none can be. fn runs on the calling goroutine.
func Watch(ctx context.Context, dirs []string, debounce time.Duration, fn func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	n := 0
	for _, d := range dirs {
		n += addTree(w, d)
	}
	if n == 0 {
		return errors.New("watch: none of the font directories can be watched")
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			slog.Debug("font directory changed", "event", ev.String())
			if ev.Has(fsnotify.Create) {
				addTree(w, ev.Name)
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching font directories", "err", err)
		case <-timer.C:
			fn()
		}
	}
}

// addTree watches root and every directory below it, and returns how
// many directories it added. Files and unreadable directories are
// skipped.
func addTree(w *fsnotify.Watcher, root string) int {
	n := 0
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("not watching", "dir", path, "err", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			slog.Debug("not watching", "dir", path, "err", err)
			return filepath.SkipDir
		}
		n++
		return nil
	})
	return n
}
