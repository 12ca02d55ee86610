// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"golang.org/x/sync/errgroup"
)

// FontExtensions are the file extensions counted as fonts.
var FontExtensions = []string{".ttf", ".otf", ".ttc", ".pcf", ".bdf"}

// headerSize is enough for every magic number [filetype] knows.
const headerSize = 262

// FontFile is a font file found on disk.
type FontFile struct {
	Path string `toml:"path" yaml:"path"`

	// Ext is the lower case file extension.
	Ext string `toml:"ext" yaml:"ext"`

	// Content is the font format detected from the file contents,
	// or empty if the contents are not a recognized font.
	Content string `toml:"content,omitempty" yaml:"content,omitempty"`

	Size int64 `toml:"size" yaml:"size"`
}

// Mismatch reports whether the file content is not a recognized font.
func (ff *FontFile) Mismatch() bool {
	return ff.Content == ""
}

// DirFonts is the search result for one directory.
type DirFonts struct {
	Dir   string     `toml:"dir" yaml:"dir"`
	Files []FontFile `toml:"files" yaml:"files"`
	Err   string     `toml:"error,omitempty" yaml:"error,omitempty"`
}

// IsFontFile reports whether name has one of the [FontExtensions],
// ignoring case.
func IsFontFile(name string) bool {
	return slices.Contains(FontExtensions, strings.ToLower(filepath.Ext(name)))
}

// FindFontFiles walks dir recursively and returns the font files in it,
// sorted by path. A symlinked dir is followed; links below it are not.
// Walk errors do not stop the walk: they are joined and returned along
// with everything that could be found.
func FindFontFiles(ctx context.Context, dir string) ([]FontFile, error) {
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, err
	}
	var files []FontFile
	var errs []error
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || !IsFontFile(d.Name()) {
			return nil
		}
		// report paths under the name the caller used
		rel, rerr := filepath.Rel(root, path)
		if rerr == nil {
			path = filepath.Join(dir, rel)
		}
		files = append(files, classify(path))
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	slices.SortFunc(files, func(a, b FontFile) int { return strings.Compare(a.Path, b.Path) })
	files = slices.CompactFunc(files, func(a, b FontFile) bool { return a.Path == b.Path })
	return files, errors.Join(errs...)
}

// SearchDirs runs [FindFontFiles] on each existing directory of dirs
// concurrently, using at most limit goroutines (no limit if <= 0).
// Results are returned in the order of dirs, skipping those that are not
// directories.
func SearchDirs(ctx context.Context, dirs []string, limit int) []DirFonts {
	var todo []string
	for _, d := range dirs {
		if st, err := os.Stat(d); err == nil && st.IsDir() {
			todo = append(todo, d)
		}
	}
	res := make([]DirFonts, len(todo))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, d := range todo {
		g.Go(func() error {
			files, err := FindFontFiles(gctx, d)
			res[i] = DirFonts{Dir: d, Files: files}
			if err != nil {
				res[i].Err = err.Error()
			}
			return nil
		})
	}
	g.Wait()
	return res
}

// AllFiles returns the union of the files in res, sorted and
// deduplicated by path.
func AllFiles(res []DirFonts) []FontFile {
	var all []FontFile
	for _, r := range res {
		all = append(all, r.Files...)
	}
	slices.SortFunc(all, func(a, b FontFile) int { return strings.Compare(a.Path, b.Path) })
	return slices.CompactFunc(all, func(a, b FontFile) bool { return a.Path == b.Path })
}

// classify fills in the [FontFile] for path from its header.
func classify(path string) FontFile {
	ff := FontFile{Path: path, Ext: strings.ToLower(filepath.Ext(path))}
	f, err := os.Open(path)
	if err != nil {
		return ff
	}
	defer f.Close()
	if st, err := f.Stat(); err == nil {
		ff.Size = st.Size()
	}
	head := make([]byte, headerSize)
	n, _ := io.ReadFull(f, head)
	ff.Content = fontContent(head[:n])
	return ff
}

// fontContent returns the font format of a file header, or "".
func fontContent(head []byte) string {
	if kind, err := filetype.Font(head); err == nil && kind != types.Unknown {
		return kind.Extension
	}
	switch {
	case bytes.HasPrefix(head, []byte("ttcf")):
		return "ttc"
	case bytes.HasPrefix(head, []byte("\x01fcp")):
		return "pcf"
	case bytes.HasPrefix(head, []byte("STARTFONT")):
		return "bdf"
	}
	return ""
}
