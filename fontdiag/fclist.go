// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
)

// DefaultFcListTimeout bounds the fc-list call.
const DefaultFcListTimeout = 5 * time.Second

// Fontconfig is the outcome of running fc-list.
type Fontconfig struct {

	// Available is false when the command could not be found.
	Available bool `toml:"available" yaml:"available"`

	// OK is true when the command ran and exited with status 0.
	OK bool `toml:"ok" yaml:"ok"`

	// TimedOut is true when the command was killed at the deadline.
	TimedOut bool `toml:"timed_out" yaml:"timed_out"`

	Fonts  []string `toml:"fonts,omitempty" yaml:"fonts,omitempty"`
	Stderr string   `toml:"stderr,omitempty" yaml:"stderr,omitempty"`
	Err    string   `toml:"error,omitempty" yaml:"error,omitempty"`
}

// RunFcList runs command (a shell words string such as "fc-list : family")
// and collects its output lines. It never returns an error: a missing
// binary, a failure or a timeout are recorded in the result.
func RunFcList(ctx context.Context, command string, timeout time.Duration) Fontconfig {
	var fc Fontconfig
	args, err := shellwords.Parse(command)
	if err != nil || len(args) == 0 {
		fc.Err = fmt.Sprintf("invalid fc-list command %q: %v", command, err)
		return fc
	}
	if timeout <= 0 {
		timeout = DefaultFcListTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second
	err = cmd.Run()
	fc.Available = !errors.Is(err, exec.ErrNotFound) && !errors.Is(err, fs.ErrNotExist)
	fc.Stderr = strings.TrimSpace(stderr.String())
	switch {
	case !fc.Available:
		fc.Err = err.Error()
		return fc
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		fc.TimedOut = true
		fc.Err = fmt.Sprintf("timed out after %v", timeout)
		return fc
	case err != nil:
		fc.Err = err.Error()
		return fc
	}
	fc.OK = true
	out := strings.TrimSpace(stdout.String())
	if out != "" {
		fc.Fonts = strings.Split(out, "\n")
	}
	return fc
}
