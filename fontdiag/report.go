// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvVar is one reported environment variable.
type EnvVar struct {
	Name  string `toml:"name" yaml:"name"`
	Value string `toml:"value" yaml:"value"`
	Set   bool   `toml:"set" yaml:"set"`
}

// FontSummary is the font database part of a [Report].
type FontSummary struct {
	Families []string `toml:"families" yaml:"families"`

	// Common maps each of [CommonFonts] to whether it is available.
	Common map[string]bool `toml:"common" yaml:"common"`

	// Suggestions maps missing common fonts to the closest family.
	Suggestions map[string]string `toml:"suggestions,omitempty" yaml:"suggestions,omitempty"`

	DefaultFamily string  `toml:"default_family" yaml:"default_family"`
	PointSize     float32 `toml:"point_size" yaml:"point_size"`
	PixelSize     int     `toml:"pixel_size" yaml:"pixel_size"`

	// ProbeExact is whether [ProbeFamily] matched exactly, and
	// ProbeFallback the family used instead when it did not.
	ProbeExact    bool   `toml:"probe_exact" yaml:"probe_exact"`
	ProbeFallback string `toml:"probe_fallback,omitempty" yaml:"probe_fallback,omitempty"`

	Paths  []PathReport `toml:"paths" yaml:"paths"`
	Errors []string     `toml:"errors,omitempty" yaml:"errors,omitempty"`
}

// Report collects the results of every diagnostic step.
type Report struct {
	Env             []EnvVar     `toml:"env" yaml:"env"`
	Locales         []string     `toml:"locales,omitempty" yaml:"locales,omitempty"`
	Changes         []EnvVar     `toml:"changes,omitempty" yaml:"changes,omitempty"`
	Paths           []PathReport `toml:"paths" yaml:"paths"`
	Search          []DirFonts   `toml:"search" yaml:"search"`
	Toolkit         ToolkitInfo  `toml:"toolkit" yaml:"toolkit"`
	ToolkitErr      string       `toml:"toolkit_error,omitempty" yaml:"toolkit_error,omitempty"`
	Fonts           *FontSummary `toml:"fonts,omitempty" yaml:"fonts,omitempty"`
	Fontconfig      *Fontconfig  `toml:"fontconfig,omitempty" yaml:"fontconfig,omitempty"`
	Recommendations []string     `toml:"recommendations" yaml:"recommendations"`
}

// Save writes the report to path, in TOML or YAML depending on
// its extension.
func (r *Report) Save(path string) error {
	var b []byte
	var err error
	switch format(path) {
	case "toml":
		b, err = toml.Marshal(r)
	case "yaml":
		b, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("report %q: unsupported format, use .toml or .yaml", path)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// OpenReport reads a report saved by [Report.Save].
func OpenReport(path string) (*Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := &Report{}
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(b, r)
	case "yaml":
		err = yaml.Unmarshal(b, r)
	default:
		err = fmt.Errorf("report %q: unsupported format, use .toml or .yaml", path)
	}
	return r, err
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// StandardRecommendations are always printed at the end.
var StandardRecommendations = []string{
	"Check if /usr/lib/fonts or /usr/share/fonts exists and contains font files",
	"Verify the symlink /usr/lib/fonts -> /usr/share/fonts is correct",
	"Ensure font files have proper permissions (readable)",
	"Check if Qt can access the font directories",
	"If no fonts found, install font packages (e.g., ttf-dejavu, ttf-liberation)",
}

// Findings returns recommendations derived from the report, in
// addition to [StandardRecommendations].
func (r *Report) Findings() []string {
	var out []string
	for _, p := range r.Paths {
		if p.Symlink && !p.TargetExists {
			out = append(out, fmt.Sprintf("%s is a dangling symlink to %s", p.Path, p.Target))
		}
		if p.Exists && !p.Readable {
			out = append(out, fmt.Sprintf("%s is not readable (%s)", p.Path, p.Mode))
		}
	}
	total := 0
	var bad []string
	for _, s := range r.Search {
		total += len(s.Files)
		for _, f := range s.Files {
			if f.Mismatch() {
				bad = append(bad, f.Path)
			}
		}
	}
	if len(r.Search) > 0 && total == 0 {
		out = append(out, "No font files were found in any font directory")
	}
	if len(bad) > 0 {
		out = append(out, fmt.Sprintf("%d font file(s) have unrecognized contents, e.g. %s", len(bad), bad[0]))
	}
	if r.Fonts != nil {
		if len(r.Fonts.Families) == 0 {
			out = append(out, "The font database is empty; the UI cannot render any text")
		}
		if !r.Fonts.ProbeExact && len(r.Fonts.Families) > 0 {
			out = append(out, fmt.Sprintf("%s is missing; text falls back to %q", ProbeFamily, r.Fonts.ProbeFallback))
		}
	}
	for _, l := range r.Locales {
		if isCJK(l) {
			out = append(out, fmt.Sprintf("Locale %s needs a CJK font (e.g. Noto Sans CJK) to render UI text", l))
			break
		}
	}
	if r.Fontconfig != nil && !r.Fontconfig.Available {
		out = append(out, "fc-list is not installed; install fontconfig-utils to inspect fontconfig")
	}
	return out
}
