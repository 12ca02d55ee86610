// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
)

// DefaultPaths are the font directories checked on the image.
var DefaultPaths = []string{
	"/usr/lib/fonts",
	"/usr/share/fonts",
	"/usr/share/fonts/truetype",
	"/usr/share/fonts/opentype",
	"/usr/share/fonts/TTF",
	"/usr/share/fonts/OTF",
	"/usr/lib/fonts/truetype",
	"/usr/lib/fonts/opentype",
}

// maxListed is how many directory entries a [PathReport] keeps.
const maxListed = 5

// Kinds of filesystem object reported by [CheckPath].
const (
	KindDir   = "directory"
	KindFile  = "file"
	KindOther = "other"
)

// PathReport is the result of checking a single path.
type PathReport struct {
	Path   string `toml:"path" yaml:"path"`
	Exists bool   `toml:"exists" yaml:"exists"`

	// Symlink is whether the path itself is a symbolic link, and Target
	// is where it resolves to.
	Symlink      bool   `toml:"symlink" yaml:"symlink"`
	Target       string `toml:"target,omitempty" yaml:"target,omitempty"`
	TargetExists bool   `toml:"target_exists" yaml:"target_exists"`

	Kind string `toml:"kind,omitempty" yaml:"kind,omitempty"`

	// Items is the number of directory entries and First the first few.
	Items int      `toml:"items" yaml:"items"`
	First []string `toml:"first,omitempty" yaml:"first,omitempty"`

	Size int64 `toml:"size" yaml:"size"`

	// Mode is the permission string, for example drwxr-xr-x.
	Mode     string `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Readable bool   `toml:"readable" yaml:"readable"`

	// Errors are the non-fatal problems met while checking.
	Errors []string `toml:"errors,omitempty" yaml:"errors,omitempty"`
}

// CheckPath inspects path. It never fails: every problem, including a
// missing path, a dangling symlink or an unreadable directory, ends up
// in the returned report.
func CheckPath(path string) PathReport {
	r := PathReport{Path: path}
	lst, err := os.Lstat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.Errors = append(r.Errors, err.Error())
		}
		return r
	}

	if lst.Mode()&fs.ModeSymlink != 0 {
		r.Symlink = true
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			// resolve one level so a dangling link still shows where it points
			if dest, lerr := os.Readlink(path); lerr == nil {
				if !filepath.IsAbs(dest) {
					dest = filepath.Join(filepath.Dir(path), dest)
				}
				r.Target = filepath.Clean(dest)
			}
			r.Errors = append(r.Errors, err.Error())
			// a dangling link does not exist as far as its users care
			return r
		}
		r.Target = target
		r.TargetExists = true
	}

	st, err := os.Stat(path)
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
		return r
	}
	r.Exists = true
	r.Mode = st.Mode().String()
	r.Readable = readable(path)

	switch {
	case st.IsDir():
		r.Kind = KindDir
		ents, err := os.ReadDir(path)
		if err != nil {
			r.Errors = append(r.Errors, err.Error())
			break
		}
		r.Items = len(ents)
		for i := 0; i < len(ents) && i < maxListed; i++ {
			r.First = append(r.First, ents[i].Name())
		}
	case st.Mode().IsRegular():
		r.Kind = KindFile
		r.Size = st.Size()
	default:
		r.Kind = KindOther
	}
	return r
}

// Print writes the report the way the diagnostic shows it.
func (r *PathReport) Print(p *Printer, indent int) {
	if !r.Exists {
		if r.Symlink {
			p.Info(indent, "Is symlink, points to: %s", r.Target)
			p.Fail(indent, "Target does NOT exist: %s", r.Target)
		}
		p.Fail(indent, "Path does NOT exist: %s", r.Path)
		for _, e := range r.Errors {
			p.Fail(indent, "%s", e)
		}
		return
	}
	p.OK(indent, "Path exists: %s", r.Path)
	if r.Symlink {
		p.Info(indent, "Is symlink, points to: %s", r.Target)
		p.OK(indent, "Target exists: %s", r.Target)
	}
	switch r.Kind {
	case KindDir:
		p.Info(indent, "Is directory")
		p.Info(indent, "Contains %d items", r.Items)
		if len(r.First) > 0 {
			p.Info(indent, "First %d items: %v", len(r.First), r.First)
		}
	case KindFile:
		p.Info(indent, "Is file")
		p.Info(indent, "Size: %d bytes (%s)", r.Size, humanize.IBytes(uint64(r.Size)))
	}
	p.Info(indent, "Permissions: %s", r.Mode)
	if !r.Readable {
		p.Fail(indent, "Not readable by this user")
	}
	for _, e := range r.Errors {
		p.Fail(indent, "%s", e)
	}
}

// ExpandPaths expands a leading ~ in each path and drops empty entries.
func ExpandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		ep, err := homedir.Expand(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, nil
}
