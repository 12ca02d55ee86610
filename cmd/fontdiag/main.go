// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fontdiag diagnoses missing fonts on the display board.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/rockchip-linux/dsitest/fontdiag"
)

func main() {
	opts := cli.DefaultOptions("fontdiag", "Diagnoses why fonts do not show up on the display panel.")
	opts.DefaultFiles = []string{"fontdiag.toml"}
	cli.Run(opts, &fontdiag.Config{}, &cli.Cmd[*fontdiag.Config]{
		Func: fontdiag.Diagnose,
		Name: "diagnose",
		Doc:  "Diagnose checks the font directories, environment, font database and fontconfig, and prints recommendations.",
		Root: true,
	})
}
