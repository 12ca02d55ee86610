// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/text/cases"
)

// CommonFonts are the families whose presence the diagnostic checks.
var CommonFonts = []string{"DejaVu Sans", "Liberation Sans", "Arial", "Sans", "Sans Serif", "Monospace"}

// ProbeFamily is the family the diagnostic tries to create a font for.
const ProbeFamily = "DejaVu Sans"

// DefaultQuery is the generic family the toolkit falls back to.
const DefaultQuery = "sans-serif"

// Face is one face in the font database.
type Face struct {
	Family string  `toml:"family" yaml:"family"`
	File   string  `toml:"file" yaml:"file"`
	Weight float32 `toml:"weight" yaml:"weight"`
	Italic bool    `toml:"italic" yaml:"italic"`
}

// FontDB is the toolkit's view of the installed fonts.
type FontDB struct {

	// Faces are all loaded faces, system ones first.
	Faces []Face

	// Paths are the directories the font engine scans.
	Paths []string

	// Errors are the problems met while loading.
	Errors []string

	families []string
	folded   map[string]string
	fold     cases.Caser
}

// newFontDB indexes faces.
func newFontDB(faces []Face) *FontDB {
	db := &FontDB{Faces: faces, folded: map[string]string{}, fold: cases.Fold()}
	for _, f := range faces {
		if f.Family == "" {
			continue
		}
		key := db.fold.String(f.Family)
		if _, ok := db.folded[key]; ok {
			continue
		}
		db.folded[key] = f.Family
		db.families = append(db.families, f.Family)
	}
	slices.Sort(db.families)
	return db
}

// Families returns the distinct family names, sorted.
func (db *FontDB) Families() []string {
	return db.families
}

// Has reports whether family is in the database with exactly that name.
func (db *FontDB) Has(family string) bool {
	_, found := slices.BinarySearch(db.families, family)
	return found
}

// Lookup returns the family of the database that matches family ignoring
// case, and whether there is one.
func (db *FontDB) Lookup(family string) (string, bool) {
	f, ok := db.folded[db.fold.String(family)]
	return f, ok
}

// Loader builds a [FontDB]. Its function fields talk to the font engine
// and can be replaced for tests.
type Loader struct {

	// CacheDir is where the font engine keeps its index.
	CacheDir string

	// ExtraDirs are scanned in addition to the system fonts,
	// like the toolkit does with QT_QPA_FONTDIR.
	ExtraDirs []string

	// SystemFonts returns the system font footprints.
	SystemFonts func(cacheDir string) ([]fontscan.Footprint, error)

	// Directories returns the directories the font engine scans.
	Directories func() ([]string, error)

	// Resolve returns the family the font engine picks for the given
	// family preference list, including the extra font files.
	Resolve func(files []string, families ...string) (string, error)
}

// NewLoader returns a [Loader] backed by the go-text font engine.
func NewLoader(cacheDir string, extraDirs ...string) *Loader {
	if cacheDir == "" {
		cacheDir = errors.Log1(os.UserCacheDir())
		if cacheDir == "" {
			cacheDir = os.TempDir()
		}
	}
	ld := &Loader{CacheDir: cacheDir, ExtraDirs: extraDirs}
	ld.SystemFonts = func(dir string) ([]fontscan.Footprint, error) {
		return fontscan.SystemFonts(engineLogger{}, dir)
	}
	ld.Directories = func() ([]string, error) {
		return fontscan.DefaultFontDirectories(engineLogger{})
	}
	ld.Resolve = func(files []string, families ...string) (string, error) {
		return resolveFamily(ld.CacheDir, files, families...)
	}
	return ld
}

// Load builds the database. It returns an error only when nothing at all
// could be loaded; partial problems are recorded in [FontDB.Errors].
func (ld *Loader) Load(ctx context.Context) (*FontDB, error) {
	var faces []Face
	var errs []string
	var loaded bool

	fps, err := ld.SystemFonts(ld.CacheDir)
	if err != nil {
		errs = append(errs, fmt.Sprintf("system fonts: %v", err))
	} else {
		loaded = true
	}
	for _, fp := range fps {
		faces = append(faces, Face{
			Family: fp.Family,
			File:   fp.Location.File,
			Weight: float32(fp.Aspect.Weight),
			Italic: fp.Aspect.Style == font.StyleItalic,
		})
	}

	for _, dir := range ld.ExtraDirs {
		files, err := FindFontFiles(ctx, dir)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", dir, err))
		}
		if files != nil {
			loaded = true
		}
		for _, ff := range files {
			fcs, err := parseFaces(ff.Path)
			if err != nil {
				slog.Debug("skipping font file", "path", ff.Path, "err", err)
				continue
			}
			faces = append(faces, fcs...)
		}
	}

	db := newFontDB(faces)
	db.Errors = errs
	if ld.Directories != nil {
		dirs, err := ld.Directories()
		if err != nil {
			db.Errors = append(db.Errors, fmt.Sprintf("font directories: %v", err))
		}
		db.Paths = dirs
	}
	if !loaded {
		return db, fmt.Errorf("font database: %s", db.Errors[0])
	}
	return db, nil
}

// ExtraFiles returns the OpenType files found under the extra dirs.
func (ld *Loader) ExtraFiles(ctx context.Context) []string {
	var out []string
	for _, dir := range ld.ExtraDirs {
		files, _ := FindFontFiles(ctx, dir)
		for _, ff := range files {
			switch ff.Ext {
			case ".ttf", ".otf", ".ttc":
				out = append(out, ff.Path)
			}
		}
	}
	return out
}

// parseFaces reads every face of an OpenType file or collection.
func parseFaces(path string) ([]Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fcs, err := font.ParseTTC(f)
	if err != nil {
		return nil, err
	}
	out := make([]Face, 0, len(fcs))
	for _, fc := range fcs {
		d := fc.Describe()
		out = append(out, Face{
			Family: d.Family,
			File:   path,
			Weight: float32(d.Aspect.Weight),
			Italic: d.Aspect.Style == font.StyleItalic,
		})
	}
	return out, nil
}

// resolveFamily asks a go-text font map which family it would use for the
// given preferences, the same lookup the toolkit shaper does.
func resolveFamily(cacheDir string, files []string, families ...string) (string, error) {
	fm := fontscan.NewFontMap(engineLogger{})
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		errors.Log(err)
	}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		errors.Log(fm.AddFont(f, path, ""))
		f.Close()
	}
	fm.SetQuery(fontscan.Query{Families: families})
	face := fm.ResolveFace('A')
	if face == nil {
		return "", fmt.Errorf("no font resolves for %v", families)
	}
	return face.Describe().Family, nil
}

// engineLogger routes go-text log lines to slog.
type engineLogger struct{}

func (engineLogger) Printf(format string, args ...any) {
	slog.Debug(fmt.Sprintf(format, args...), "source", "fontscan")
}
