// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"cogentcore.org/core/text/fonts"
	"github.com/rockchip-linux/dsitest/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepEmbedded restores the toolkit font list after the test.
func keepEmbedded(t *testing.T) {
	saved := slices.Clone(fonts.Embedded)
	t.Cleanup(func() { fonts.Embedded = saved })
}

func TestUseFontDir(t *testing.T) {
	keepEmbedded(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "truetype", "wqy"), 0o755))
	for _, name := range []string{"truetype/wqy/wqy-microhei.ttc", "NotoSansCJK.OTF", "fonts.dir", "misc.pcf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	n := len(fonts.Embedded)

	assert.Equal(t, dir, UseFontDir(platform.MapEnv{platform.QPAFontDir: dir}))
	require.Len(t, fonts.Embedded, n+1)

	var files []string
	err := fs.WalkDir(fonts.Embedded[n], ".", func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NotoSansCJK.OTF", "truetype/wqy/wqy-microhei.ttc"}, files)
}

func TestUseFontDirUnset(t *testing.T) {
	keepEmbedded(t)
	n := len(fonts.Embedded)
	assert.Empty(t, UseFontDir(platform.MapEnv{}))
	assert.Empty(t, UseFontDir(platform.MapEnv{platform.QPAFontDir: filepath.Join(t.TempDir(), "missing")}))
	assert.Len(t, fonts.Embedded, n)
}

func TestUsePreparedFontDir(t *testing.T) {
	keepEmbedded(t)
	dir := t.TempDir()
	env := platform.MapEnv{platform.QPAPlatform: "offscreen", platform.XDGRuntimeDir: "/tmp"}
	_, err := platform.Prepare(env, platform.Options{FontDirs: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, dir, UseFontDir(env))
}
