// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import "time"

// Config is the configuration of the font diagnostic.
type Config struct {

	// Paths are font paths to check in addition to [DefaultPaths].
	// A leading ~ is expanded.
	Paths []string `flag:"p,path"`

	// PluginDir is the directory holding the platform plugins.
	PluginDir string `default:"/usr/lib/plugins/platforms"`

	// FcList is the fontconfig listing command, split like a shell would.
	FcList string `default:"fc-list"`

	// Timeout bounds the FcList command; zero means 5s.
	Timeout time.Duration

	// MinToolkit is the version constraint the linked toolkit must meet.
	MinToolkit string `default:">= 0.3.0"`

	// CacheDir is where the font engine keeps its index;
	// empty means the user cache directory.
	CacheDir string

	// PointSize is the default font size in points.
	PointSize float32 `default:"12"`

	// DPI is the logical density of the panel, used to convert
	// [Config.PointSize] to pixels.
	DPI float32 `default:"96"`

	// Jobs is how many directories are searched at once.
	Jobs int `default:"4"`

	// Report is a .toml or .yaml file to save the results to.
	Report string `flag:"r,report"`

	// Watch re-checks the font directories whenever they change.
	Watch bool `flag:"w,watch"`

	// NoColor turns off colored output.
	NoColor bool
}

// pixelSize converts the configured point size to pixels.
func (c *Config) pixelSize() int {
	dpi := c.DPI
	if dpi <= 0 {
		dpi = 96
	}
	return int(c.PointSize*dpi/72 + 0.5)
}
