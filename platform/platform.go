// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform selects the display backend for the panel and prepares
// the runtime environment that the display tools and their child
// processes see.
package platform

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
)

// Environment variables consumed or set by the display tools.
const (
	QPAPlatform    = "QT_QPA_PLATFORM"
	QPAFontDir     = "QT_QPA_FONTDIR"
	XDGRuntimeDir  = "XDG_RUNTIME_DIR"
	FontconfigFile = "FONTCONFIG_FILE"
	FontconfigPath = "FONTCONFIG_PATH"
	XDGDataDirs    = "XDG_DATA_DIRS"
)

// Variables are the font related variables in the order the
// diagnostic reports them.
var Variables = []string{QPAFontDir, QPAPlatform, FontconfigFile, FontconfigPath, XDGDataDirs, XDGRuntimeDir}

// DefaultPluginDir is where the image installs platform plugins.
const DefaultPluginDir = "/usr/lib/plugins/platforms"

// DefaultRuntimeDir is used for XDG_RUNTIME_DIR when it is unset.
const DefaultRuntimeDir = "/tmp"

// DefaultFontDirs are the candidates for QT_QPA_FONTDIR, in order.
// The image links /usr/lib/fonts to /usr/share/fonts.
var DefaultFontDirs = []string{"/usr/lib/fonts", "/usr/share/fonts"}

// Backend is the name of a display backend as exported through
// QT_QPA_PLATFORM.
type Backend string

const (
	// Eglfs renders through EGL on the GPU.
	Eglfs Backend = "eglfs"

	// LinuxFB renders to the Linux framebuffer.
	LinuxFB Backend = "linuxfb"

	// Offscreen renders nowhere, for testing.
	Offscreen Backend = "offscreen"
)

// Plugin returns the plugin file name that provides the backend.
func (b Backend) Plugin() string {
	return "libq" + string(b) + ".so"
}

// Description returns a short human description of the backend.
func (b Backend) Description() string {
	switch b {
	case Eglfs:
		return "GPU accelerated"
	case LinuxFB:
		return "Linux framebuffer"
	case Offscreen:
		return "no display"
	}
	return string(b)
}

var (
	// GalleryOrder is the backend preference of the widget gallery.
	GalleryOrder = []Backend{Eglfs, LinuxFB}

	// DiagnosticOrder is the backend preference of the font diagnostic,
	// which only needs a font database and never draws.
	DiagnosticOrder = []Backend{Eglfs, Offscreen}
)

// SelectBackend returns the first backend in order whose plugin exists in
// pluginDir, and [Offscreen] if none does.
func SelectBackend(pluginDir string, order []Backend) Backend {
	for _, b := range order {
		ok, err := fsx.FileExists(filepath.Join(pluginDir, b.Plugin()))
		if err != nil {
			slog.Debug("checking platform plugin", "backend", b, "err", err)
			continue
		}
		if ok {
			return b
		}
	}
	return Offscreen
}

// Env is the process environment as seen by [Prepare].
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv is the real process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

// MapEnv is an in-memory [Env].
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}

// Get returns the value of key, or def if it is unset.
func Get(env Env, key, def string) string {
	if v, ok := env.LookupEnv(key); ok {
		return v
	}
	return def
}

// Options configure [Prepare].
type Options struct {

	// PluginDir is the directory holding the platform plugins.
	PluginDir string

	// Order is the backend preference used when QT_QPA_PLATFORM is unset.
	Order []Backend

	// RuntimeDir is used for XDG_RUNTIME_DIR when it is unset.
	RuntimeDir string

	// FontDirs are candidates for QT_QPA_FONTDIR; the first existing
	// directory is used when the variable is unset. If empty,
	// QT_QPA_FONTDIR is left alone.
	FontDirs []string
}

// Change records one variable set by [Prepare].
type Change struct {
	Name  string
	Value string
	Note  string
}

// Prepare fills in unset display variables on env. Variables that are
// already set are never changed. It returns the changes made.
func Prepare(env Env, opts Options) ([]Change, error) {
	var changes []Change
	var errs []error
	set := func(name, value, note string) {
		if err := env.Setenv(name, value); err != nil {
			errs = append(errs, err)
			return
		}
		slog.Debug("set environment", "name", name, "value", value)
		changes = append(changes, Change{Name: name, Value: value, Note: note})
	}

	if _, ok := env.LookupEnv(QPAPlatform); !ok {
		b := SelectBackend(opts.PluginDir, opts.Order)
		set(QPAPlatform, string(b), b.Description())
	}
	if _, ok := env.LookupEnv(XDGRuntimeDir); !ok {
		dir := opts.RuntimeDir
		if dir == "" {
			dir = DefaultRuntimeDir
		}
		set(XDGRuntimeDir, dir, "")
	}
	if _, ok := env.LookupEnv(QPAFontDir); !ok {
		for _, dir := range opts.FontDirs {
			if isDir(dir) {
				set(QPAFontDir, dir, "font directory")
				break
			}
		}
	}
	return changes, errors.Join(errs...)
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
