// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ttfHeader = []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x0c, 0x00, 0x80, 0x00, 0x03, 0x00, 0x40}
	otfHeader = []byte{'O', 'T', 'T', 'O', 0x00, 0x0a, 0x00, 0x80, 0x00, 0x03, 0x00, 0x20}
)

// fontTree writes a small font directory tree and returns its root.
func fontTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string][]byte{
		"truetype/dejavu/DejaVuSans.ttf": ttfHeader,
		"truetype/dejavu/DejaVuSans.TTF": ttfHeader,
		"opentype/noto/NotoSansCJK.otf":  otfHeader,
		"noto/NotoSansCJK.ttc":           []byte("ttcf\x00\x02\x00\x00"),
		"misc/6x13.pcf":                  []byte("\x01fcp\x0d\x00\x00\x00"),
		"misc/fixed.bdf":                 []byte("STARTFONT 2.1\n"),
		"broken/empty.ttf":               nil,
		"fonts.dir":                      []byte("3\n"),
		"README":                         []byte("fonts"),
	}
	for name, data := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return root
}

func TestIsFontFile(t *testing.T) {
	for _, name := range []string{"a.ttf", "A.TTF", "b.otf", "c.ttc", "d.pcf", "e.BDF"} {
		assert.True(t, IsFontFile(name), name)
	}
	for _, name := range []string{"fonts.dir", "a.ttf.gz", "a.woff2", "ttf"} {
		assert.False(t, IsFontFile(name), name)
	}
}

func TestFindFontFiles(t *testing.T) {
	root := fontTree(t)
	files, err := FindFontFiles(context.Background(), root)
	require.NoError(t, err)

	byName := map[string]FontFile{}
	for _, f := range files {
		byName[filepath.Base(f.Path)] = f
	}
	assert.Len(t, files, 7)
	assert.Equal(t, "ttf", byName["DejaVuSans.ttf"].Content)
	assert.Equal(t, ".ttf", byName["DejaVuSans.TTF"].Ext)
	assert.Equal(t, "otf", byName["NotoSansCJK.otf"].Content)
	assert.Equal(t, "ttc", byName["NotoSansCJK.ttc"].Content)
	assert.Equal(t, "pcf", byName["6x13.pcf"].Content)
	assert.Equal(t, "bdf", byName["fixed.bdf"].Content)
	empty, dejavu := byName["empty.ttf"], byName["DejaVuSans.ttf"]
	assert.True(t, empty.Mismatch())
	assert.False(t, dejavu.Mismatch())
	assert.Equal(t, int64(len(ttfHeader)), byName["DejaVuSans.ttf"].Size)

	assert.IsNonDecreasing(t, paths(files))
}

func TestFindFontFilesSymlinkRoot(t *testing.T) {
	root := fontTree(t)
	link := filepath.Join(t.TempDir(), "lib-fonts")
	require.NoError(t, os.Symlink(root, link))

	files, err := FindFontFiles(context.Background(), link)
	require.NoError(t, err)
	assert.Len(t, files, 7)
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f.Path, link), f.Path)
	}
}

func TestFindFontFilesMissing(t *testing.T) {
	files, err := FindFontFiles(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.Empty(t, files)
}

func TestFindFontFilesUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read everything")
	}
	root := fontTree(t)
	locked := filepath.Join(root, "truetype")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	files, err := FindFontFiles(context.Background(), root)
	assert.Error(t, err)
	assert.Len(t, files, 5)
}

func TestSearchDirsOrderIndependent(t *testing.T) {
	a, b, c := fontTree(t), fontTree(t), t.TempDir()
	missing := filepath.Join(c, "missing")
	orders := [][]string{
		{a, b, c, missing},
		{missing, c, b, a},
		{b, missing, a, c},
	}
	var want []string
	for i, dirs := range orders {
		for _, limit := range []int{0, 1, 3} {
			res := SearchDirs(context.Background(), dirs, limit)
			assert.Len(t, res, 3)
			got := paths(AllFiles(res))
			if i == 0 && limit == 0 {
				want = got
				continue
			}
			assert.Equal(t, want, got)
		}
	}
	assert.Len(t, want, 14)
}

func TestSearchDirsKeepsOrder(t *testing.T) {
	a, b := fontTree(t), t.TempDir()
	res := SearchDirs(context.Background(), []string{b, a}, 2)
	require.Len(t, res, 2)
	assert.Equal(t, b, res[0].Dir)
	assert.Empty(t, res[0].Files)
	assert.Equal(t, a, res[1].Dir)
	assert.Len(t, res[1].Files, 7)
}

func paths(files []FontFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
