// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/text/fonts"
	"github.com/rockchip-linux/dsitest/platform"
)

// shapeable are the extensions of font files the text shaper can load.
var shapeable = []string{".ttf", ".otf", ".ttc", ".otc"}

// fontFiles shows only the directories and loadable font files of an
// [fs.FS]. The shaper stops loading a file system at the first file it
// cannot parse, and font directories usually hold index files too.
type fontFiles struct {
	fs.FS
}

func (f fontFiles) ReadDir(name string) ([]fs.DirEntry, error) {
	ents, err := fs.ReadDir(f.FS, name)
	return slices.DeleteFunc(ents, func(e fs.DirEntry) bool {
		return !e.IsDir() && !slices.Contains(shapeable, strings.ToLower(filepath.Ext(e.Name())))
	}), err
}

// UseFontDir adds the fonts in the directory named by QT_QPA_FONTDIR
// to the fonts the toolkit draws text with, and returns the directory.
// It returns "" and changes nothing if the variable is unset or not a
// directory. It must be called before the first body is made.
func UseFontDir(env platform.Env) string {
	dir := platform.Get(env, platform.QPAFontDir, "")
	if dir == "" {
		return ""
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		slog.Warn("font directory is not usable", "dir", dir, "err", err)
		return ""
	}
	fonts.AddEmbedded(fontFiles{os.DirFS(dir)})
	slog.Info("using font directory", "dir", dir)
	return dir
}
