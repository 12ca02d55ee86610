// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		Env: []EnvVar{
			{Name: "QT_QPA_PLATFORM", Value: "eglfs", Set: true},
			{Name: "FONTCONFIG_FILE"},
		},
		Locales: []string{"zh-CN"},
		Paths: []PathReport{
			{Path: "/usr/lib/fonts", Symlink: true, Target: "/usr/share/fonts", Errors: []string{"lstat: no such file"}},
			{Path: "/usr/share/fonts", Exists: true, Kind: KindDir, Items: 3, Mode: "drwx------"},
		},
		Search: []DirFonts{{Dir: "/usr/share/fonts", Files: []FontFile{
			{Path: "/usr/share/fonts/a.ttf", Ext: ".ttf", Content: "ttf", Size: 1024},
			{Path: "/usr/share/fonts/b.ttf", Ext: ".ttf", Size: 0},
		}}},
		Toolkit: ToolkitInfo{GoVersion: "go1.25.6", Toolkit: "v0.3.13"},
		Fonts: &FontSummary{
			Families:      []string{"Noto Sans CJK SC"},
			Common:        map[string]bool{"DejaVu Sans": false},
			DefaultFamily: "Noto Sans CJK SC",
			PointSize:     12,
			PixelSize:     16,
			ProbeFallback: "Noto Sans CJK SC",
		},
		Fontconfig:      &Fontconfig{},
		Recommendations: StandardRecommendations,
	}
}

func TestReportSaveOpen(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report"+ext)
			r := sampleReport()
			require.NoError(t, r.Save(path))

			got, err := OpenReport(path)
			require.NoError(t, err)
			assert.Equal(t, r.Env, got.Env)
			assert.Equal(t, r.Search, got.Search)
			assert.Equal(t, r.Toolkit, got.Toolkit)
			require.NotNil(t, got.Fonts)
			assert.Equal(t, r.Fonts.Families, got.Fonts.Families)
			assert.Equal(t, r.Fonts.PixelSize, got.Fonts.PixelSize)
			assert.Equal(t, r.Fonts.Common, got.Fonts.Common)
			assert.Equal(t, r.Recommendations, got.Recommendations)
		})
	}
}

func TestReportUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	assert.Error(t, sampleReport().Save(path))
	_, err := OpenReport(path)
	assert.Error(t, err)
}

func TestReportFindings(t *testing.T) {
	got := strings.Join(sampleReport().Findings(), "\n")
	assert.Contains(t, got, "/usr/lib/fonts is a dangling symlink to /usr/share/fonts")
	assert.Contains(t, got, "/usr/share/fonts is not readable")
	assert.Contains(t, got, "1 font file(s) have unrecognized contents, e.g. /usr/share/fonts/b.ttf")
	assert.Contains(t, got, `DejaVu Sans is missing; text falls back to "Noto Sans CJK SC"`)
	assert.Contains(t, got, "Locale zh-CN needs a CJK font")
	assert.Contains(t, got, "fc-list is not installed")
	assert.NotContains(t, got, "No font files were found")
}

func TestReportFindingsEmpty(t *testing.T) {
	r := &Report{
		Search:     []DirFonts{{Dir: "/usr/share/fonts"}},
		Fonts:      &FontSummary{},
		Fontconfig: &Fontconfig{Available: true, OK: true},
	}
	got := r.Findings()
	assert.Contains(t, got, "No font files were found in any font directory")
	assert.Contains(t, got, "The font database is empty; the UI cannot render any text")
	assert.Len(t, got, 2)
}
