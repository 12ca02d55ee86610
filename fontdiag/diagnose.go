// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontdiag troubleshoots missing fonts on the display board.
// It checks the font directories and environment, searches for font
// files, queries the toolkit font database and fontconfig, and prints
// what it finds together with recommendations.
package fontdiag

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/rockchip-linux/dsitest/platform"
)

// Listing limits of the console output.
const (
	maxFiles    = 10
	maxFamilies = 20
	maxFcList   = 5
)

// Diagnostic runs the diagnostic steps and prints their results.
type Diagnostic struct {
	Config *Config

	// Env is the environment that is read and prepared.
	Env platform.Env

	// Loader builds the font database. If nil, a go-text backed
	// loader is used.
	Loader *Loader

	p *Printer
}

// NewDiagnostic returns a [Diagnostic] printing to w.
func NewDiagnostic(c *Config, w io.Writer, env platform.Env) *Diagnostic {
	return &Diagnostic{Config: c, Env: env, p: NewPrinter(w, !c.NoColor)}
}

// Diagnose runs the font diagnostic on the real system.
func Diagnose(c *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := NewDiagnostic(c, os.Stdout, platform.OSEnv{})
	r, err := d.Run(ctx)
	if c.Report != "" && r != nil {
		if serr := r.Save(c.Report); serr != nil {
			slog.Error("saving report", "path", c.Report, "err", serr)
		} else {
			slog.Info("saved report", "path", c.Report)
		}
	}
	if err != nil || !c.Watch {
		return err
	}
	d.watch(ctx, d.paths())
	return nil
}

// watch repeats the path check whenever dirs change, until ctx is done.
// Failing to watch is reported but is not a diagnostic failure.
func (d *Diagnostic) watch(ctx context.Context, dirs []string) {
	d.p.Blank()
	d.p.Line(0, "Watching font directories, press Ctrl+C to stop...")
	err := Watch(ctx, dirs, DefaultDebounce, func() {
		d.checkPaths(ctx, &Report{})
	})
	if err != nil {
		slog.Error("watching font directories", "err", err)
		d.p.Fail(0, "Cannot watch font directories: %v", err)
	}
}

// paths returns every path to check.
func (d *Diagnostic) paths() []string {
	paths := slices.Clone(DefaultPaths)
	extra, err := ExpandPaths(d.Config.Paths)
	if err != nil {
		slog.Warn("expanding font paths", "err", err)
	}
	for _, e := range extra {
		if !slices.Contains(paths, e) {
			paths = append(paths, e)
		}
	}
	return paths
}

// Run runs all steps. It stops early only when the toolkit check fails,
// in which case the returned error wraps [ErrToolkit].
func (d *Diagnostic) Run(ctx context.Context) (*Report, error) {
	r := &Report{}
	d.p.Banner("Font Diagnostic Test")

	d.environment(r)
	d.checkPaths(ctx, r)

	if err := d.toolkit(r); err != nil {
		return r, err
	}
	d.fontDatabase(ctx, r)
	d.fontconfig(ctx, r)
	d.recommend(r)

	d.p.Blank()
	d.p.Banner("Diagnostic Complete")
	return r, nil
}

// environment is step 1.
func (d *Diagnostic) environment(r *Report) {
	d.p.Section(1, "Environment Variables")
	for _, name := range platform.Variables {
		v, ok := d.Env.LookupEnv(name)
		r.Env = append(r.Env, EnvVar{Name: name, Value: v, Set: ok})
		if !ok {
			v = "Not set"
		}
		d.p.Line(0, "%s: %s", name, v)
	}
	r.Locales = Locales()
	if len(r.Locales) > 0 {
		d.p.Line(0, "Locale: %s", r.Locales[0])
	} else {
		d.p.Line(0, "Locale: unknown")
	}
}

// checkPaths is steps 2 and 3.
func (d *Diagnostic) checkPaths(ctx context.Context, r *Report) {
	paths := d.paths()
	d.p.Section(2, "Font Directory Paths Check")
	for _, path := range paths {
		pr := CheckPath(path)
		d.p.Blank()
		d.p.Line(0, "Checking %s:", path)
		pr.Print(d.p, 2)
		r.Paths = append(r.Paths, pr)
	}

	d.p.Section(3, "Font Files Search")
	r.Search = SearchDirs(ctx, paths, d.Config.Jobs)
	for _, s := range r.Search {
		d.p.Blank()
		d.p.Line(0, "%s:", s.Dir)
		if s.Err != "" {
			d.p.Fail(2, "Error walking directory: %s", s.Err)
		}
		if len(s.Files) == 0 {
			d.p.Fail(2, "No font files found")
			continue
		}
		d.p.OK(2, "Found %d font file(s)", len(s.Files))
		for i := 0; i < len(s.Files) && i < maxFiles; i++ {
			f := s.Files[i]
			if f.Mismatch() {
				d.p.Line(4, "- %s (contents are not a font)", f.Path)
			} else {
				d.p.Line(4, "- %s", f.Path)
			}
		}
		if len(s.Files) > maxFiles {
			d.p.Line(4, "... and %d more", len(s.Files)-maxFiles)
		}
	}
}

// toolkit is step 4.
func (d *Diagnostic) toolkit(r *Report) error {
	d.p.Section(4, "Testing Toolkit")
	ti, err := CheckToolkit(d.Config.MinToolkit)
	r.Toolkit = ti
	if err != nil {
		r.ToolkitErr = err.Error()
		d.p.Line(0, "✗ ERROR loading toolkit: %v", err)
		return err
	}
	d.p.Line(0, "✓ Toolkit linked successfully")
	d.p.Line(2, "Toolkit version: %s", ti.Toolkit)
	d.p.Line(2, "Font engine version: %s", ti.FontEngine)
	d.p.Line(2, "Go version: %s", ti.GoVersion)
	return nil
}

// fontDatabase is step 5.
func (d *Diagnostic) fontDatabase(ctx context.Context, r *Report) {
	d.p.Section(5, "Toolkit Font Database")
	changes, err := platform.Prepare(d.Env, platform.Options{
		PluginDir: d.Config.PluginDir,
		Order:     platform.DiagnosticOrder,
	})
	if err != nil {
		d.p.Fail(0, "Preparing environment: %v", err)
	}
	for _, c := range changes {
		r.Changes = append(r.Changes, EnvVar{Name: c.Name, Value: c.Value, Set: true})
		d.p.Line(0, "Setting %s=%s for font testing", c.Name, c.Value)
	}

	ld := d.Loader
	if ld == nil {
		ld = NewLoader(d.Config.CacheDir)
	}
	if dir, ok := d.Env.LookupEnv(platform.QPAFontDir); ok && dir != "" {
		ld.ExtraDirs = append(ld.ExtraDirs, dir)
	}

	sum := &FontSummary{PointSize: d.Config.PointSize, PixelSize: d.Config.pixelSize()}
	r.Fonts = sum
	db, err := ld.Load(ctx)
	if err != nil {
		sum.Errors = append(sum.Errors, err.Error())
		d.p.Line(0, "✗ ERROR testing font database: %v", err)
		return
	}
	sum.Errors = append(sum.Errors, db.Errors...)
	sum.Families = db.Families()

	d.p.Line(0, "✓ Font database initialized")
	d.p.Line(2, "Total font families found: %d", len(sum.Families))
	for _, e := range db.Errors {
		d.p.Fail(2, "%s", e)
	}
	if len(sum.Families) == 0 {
		d.p.Fail(2, "WARNING: No fonts found in font database!")
		d.p.Line(2, "This is likely the root cause of font display issues.")
	} else {
		d.p.Blank()
		d.p.Line(2, "Available font families (first %d):", maxFamilies)
		for i := 0; i < len(sum.Families) && i < maxFamilies; i++ {
			d.p.Line(4, "%d. %s", i+1, sum.Families[i])
		}
		if len(sum.Families) > maxFamilies {
			d.p.Line(4, "... and %d more", len(sum.Families)-maxFamilies)
		}

		sum.Common = map[string]bool{}
		d.p.Blank()
		d.p.Line(2, "Checking for common fonts:")
		for _, name := range CommonFonts {
			ok := db.Has(name)
			sum.Common[name] = ok
			if ok {
				d.p.OK(4, "%s - Available", name)
				continue
			}
			d.p.Fail(4, "%s - NOT found", name)
			if alt, ok := db.Lookup(name); ok {
				d.p.Line(6, "(available as %q)", alt)
				continue
			}
			if alt, _ := Closest(name, sum.Families); alt != "" {
				if sum.Suggestions == nil {
					sum.Suggestions = map[string]string{}
				}
				sum.Suggestions[name] = alt
				d.p.Line(6, "(closest: %s)", alt)
			}
		}
	}

	files := ld.ExtraFiles(ctx)
	d.p.Blank()
	d.p.Line(2, "Testing default font:")
	if fam, err := ld.Resolve(files, DefaultQuery); err != nil {
		sum.Errors = append(sum.Errors, err.Error())
		d.p.Fail(4, "Cannot resolve %s: %v", DefaultQuery, err)
	} else {
		sum.DefaultFamily = fam
		d.p.Line(4, "Family: %s", fam)
	}
	d.p.Line(4, "Point size: %g", sum.PointSize)
	d.p.Line(4, "Pixel size: %d", sum.PixelSize)

	sum.ProbeExact = db.Has(ProbeFamily)
	if sum.ProbeExact {
		d.p.OK(4, "Can create '%s' font", ProbeFamily)
	} else {
		fb, err := ld.Resolve(files, ProbeFamily)
		if err != nil {
			fb = sum.DefaultFamily
		}
		sum.ProbeFallback = fb
		d.p.Fail(4, "Cannot create '%s' font (fallback: %s)", ProbeFamily, fb)
	}

	d.p.Blank()
	d.p.Line(2, "Toolkit font paths:")
	if len(db.Paths) == 0 {
		d.p.Fail(4, "No font paths configured in toolkit")
	}
	for _, path := range db.Paths {
		d.p.Line(4, "- %s", path)
		pr := CheckPath(path)
		pr.Print(d.p, 6)
		sum.Paths = append(sum.Paths, pr)
	}
}

// fontconfig is step 6.
func (d *Diagnostic) fontconfig(ctx context.Context, r *Report) {
	d.p.Section(6, "Fontconfig Check (if available)")
	fc := RunFcList(ctx, d.Config.FcList, d.Config.Timeout)
	r.Fontconfig = &fc
	switch {
	case !fc.Available:
		d.p.Line(0, "✗ fontconfig (fc-list) not available")
	case fc.TimedOut:
		d.p.Line(0, "✗ Error checking fontconfig: %s", fc.Err)
	case !fc.OK:
		d.p.Line(0, "✗ fontconfig command failed: %s", fc.Err)
		if fc.Stderr != "" {
			d.p.Line(2, "%s", fc.Stderr)
		}
	default:
		d.p.Line(0, "✓ fontconfig found")
		d.p.Line(2, "Total fonts: %d", len(fc.Fonts))
		if len(fc.Fonts) == 0 {
			d.p.Fail(2, "No fonts found via fontconfig")
			break
		}
		d.p.Line(2, "First few fonts:")
		for i := 0; i < len(fc.Fonts) && i < maxFcList; i++ {
			d.p.Line(4, "- %s", fc.Fonts[i])
		}
	}
}

// recommend is step 7.
func (d *Diagnostic) recommend(r *Report) {
	d.p.Section(7, "Recommendations")
	d.p.Line(0, "Based on the diagnostics above:")
	r.Recommendations = append(slices.Clone(StandardRecommendations), r.Findings()...)
	for i, rec := range r.Recommendations {
		d.p.Line(0, "%d. %s", i+1, rec)
	}
}
