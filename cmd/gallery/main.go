// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gallery shows a full screen widget gallery on the display panel.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/rockchip-linux/dsitest/gallery"
)

func main() {
	opts := cli.DefaultOptions("gallery", "Shows a full screen widget gallery for testing the display panel.")
	opts.DefaultFiles = []string{"gallery.toml"}
	cli.Run(opts, &gallery.Config{}, &cli.Cmd[*gallery.Config]{
		Func: gallery.Main,
		Name: "show",
		Doc:  "Show runs the widget gallery until Escape is pressed.",
		Root: true,
	})
}
