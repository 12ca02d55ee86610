// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/rockchip-linux/dsitest/platform"
)

// Show prepares the display environment on env, loads the fonts of the
// font directory, prints the banner to w and runs the gallery until its window is closed.
func Show(c *Config, w io.Writer, env platform.Env) error {
	changes, err := platform.Prepare(env, platform.Options{
		PluginDir: c.PluginDir,
		Order:     platform.GalleryOrder,
		FontDirs:  c.FontDirs,
	})
	errors.Log(err)
	UseFontDir(env)
	PrintBanner(w, !c.NoColor, changes)

	g := New(c)
	g.started = func() { PrintStarted(w) }
	return g.Run()
}

// Main runs the gallery on the real system.
func Main(c *Config) error {
	return Show(c, os.Stdout, platform.OSEnv{})
}
