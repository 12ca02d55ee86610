// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import "time"

// Config is the configuration of the widget gallery.
type Config struct {

	// PluginDir is the directory holding the platform plugins,
	// used to pick the display backend.
	PluginDir string `default:"/usr/lib/plugins/platforms"`

	// FontDirs are candidates for the font directory, in order.
	FontDirs []string `default:"['/usr/lib/fonts', '/usr/share/fonts']"`

	// ExitDelay is how long the goodbye message stays up after
	// Escape is pressed.
	ExitDelay time.Duration `default:"500ms"`

	// Windowed runs in a normal window instead of full screen,
	// for trying the gallery on a desktop.
	Windowed bool `flag:"w,windowed"`

	// NoColor turns off colored console output.
	NoColor bool
}
