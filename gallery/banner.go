// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rockchip-linux/dsitest/platform"
)

// backendNotes are shown next to the selected backend.
var backendNotes = map[platform.Backend]string{
	platform.Eglfs:     "GPU加速",
	platform.LinuxFB:   "Linux FrameBuffer",
	platform.Offscreen: "无显示",
}

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// PrintBanner prints the startup banner, the environment changes made by
// [platform.Prepare] and the usage tips.
func PrintBanner(w io.Writer, color bool, changes []platform.Change) {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)
	ok := out.String("✓").Foreground(out.Color("2")).String()
	warn := out.String("⚠").Foreground(out.Color("3")).String()

	rule(out)
	fmt.Fprintln(out, "🚀 RK3506 显示测试程序")
	rule(out)
	for _, c := range changes {
		switch c.Name {
		case platform.QPAPlatform:
			b := platform.Backend(c.Value)
			mark := ok
			if b == platform.Offscreen {
				mark = warn
			}
			fmt.Fprintf(out, "%s 使用平台：%s (%s)\n", mark, b, backendNotes[b])
		case platform.QPAFontDir:
			fmt.Fprintf(out, "%s 字体目录：%s\n", ok, c.Value)
		}
	}
	fmt.Fprintln(out, "\n正在启动应用程序...")
	fmt.Fprintln(out, "💡 提示：")
	fmt.Fprintln(out, "   • 程序将以全屏模式运行")
	fmt.Fprintln(out, "   • 按 ESC 键退出程序")
	fmt.Fprintln(out)
}

// PrintStarted prints the line shown once the window is up.
func PrintStarted(w io.Writer) {
	fmt.Fprintln(w, "✓ 应用程序已启动")
	rule(w)
}
