// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrToolkit is returned when the GUI toolkit is not usable. The
// diagnostic cannot continue past it and exits with status 1.
var ErrToolkit = errors.New("toolkit unavailable")

// Module paths of the linked toolkit and font engine.
const (
	ToolkitModule    = "cogentcore.org/core"
	FontEngineModule = "github.com/go-text/typesetting"
)

// ToolkitInfo describes the toolkit linked into the binary.
type ToolkitInfo struct {
	GoVersion  string `toml:"go_version" yaml:"go_version"`
	Toolkit    string `toml:"toolkit" yaml:"toolkit"`
	FontEngine string `toml:"font_engine" yaml:"font_engine"`
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// CheckToolkit reads the linked module versions and checks the toolkit
// against the constraint minimum (for example ">= 0.3.0"). An empty
// minimum skips the version check. Failures wrap [ErrToolkit].
func CheckToolkit(minimum string) (ToolkitInfo, error) {
	var ti ToolkitInfo
	bi, ok := readBuildInfo()
	if !ok {
		return ti, fmt.Errorf("%w: no build information in binary", ErrToolkit)
	}
	ti.GoVersion = bi.GoVersion
	for _, dep := range bi.Deps {
		m := dep
		if m.Replace != nil {
			m = m.Replace
		}
		v := m.Version
		if v == "" {
			// replaced by a local directory
			v = "(devel)"
		}
		switch dep.Path {
		case ToolkitModule:
			ti.Toolkit = v
		case FontEngineModule:
			ti.FontEngine = v
		}
	}
	if ti.Toolkit == "" {
		return ti, fmt.Errorf("%w: %s is not linked", ErrToolkit, ToolkitModule)
	}
	if minimum == "" {
		return ti, nil
	}
	c, err := semver.NewConstraint(minimum)
	if err != nil {
		return ti, fmt.Errorf("invalid toolkit constraint %q: %w", minimum, err)
	}
	// (devel) and other non-semver versions come from local builds
	v, err := semver.NewVersion(strings.TrimPrefix(ti.Toolkit, "v"))
	if err != nil {
		return ti, nil
	}
	if v.Prerelease() != "" {
		// pseudo-versions carry a prerelease part that constraints reject
		if rv, err := v.SetPrerelease(""); err == nil {
			v = &rv
		}
	}
	if !c.Check(v) {
		return ti, fmt.Errorf("%w: %s %s does not satisfy %s", ErrToolkit, ToolkitModule, ti.Toolkit, minimum)
	}
	return ti, nil
}
