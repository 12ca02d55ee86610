// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func needCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestRunFcListMissing(t *testing.T) {
	fc := RunFcList(context.Background(), "fc-list-that-does-not-exist", 0)
	assert.False(t, fc.Available)
	assert.False(t, fc.OK)
	assert.NotEmpty(t, fc.Err)
}

func TestRunFcListMissingPath(t *testing.T) {
	fc := RunFcList(context.Background(), "/nonexistent/bin/fc-list", 0)
	assert.False(t, fc.Available)
}

func TestRunFcListOutput(t *testing.T) {
	needCommand(t, "printf")
	fc := RunFcList(context.Background(), `printf '%s\n' "DejaVu Sans" "Noto Sans CJK SC"`, time.Second)
	assert.True(t, fc.Available)
	assert.True(t, fc.OK)
	assert.Equal(t, []string{"DejaVu Sans", "Noto Sans CJK SC"}, fc.Fonts)
	assert.Empty(t, fc.Err)
}

func TestRunFcListEmptyOutput(t *testing.T) {
	needCommand(t, "true")
	fc := RunFcList(context.Background(), "true", time.Second)
	assert.True(t, fc.OK)
	assert.Empty(t, fc.Fonts)
}

func TestRunFcListFailure(t *testing.T) {
	needCommand(t, "false")
	fc := RunFcList(context.Background(), "false", time.Second)
	assert.True(t, fc.Available)
	assert.False(t, fc.OK)
	assert.False(t, fc.TimedOut)
	assert.NotEmpty(t, fc.Err)
}

func TestRunFcListTimeout(t *testing.T) {
	needCommand(t, "sleep")
	start := time.Now()
	fc := RunFcList(context.Background(), "sleep 5", 50*time.Millisecond)
	assert.True(t, fc.Available)
	assert.True(t, fc.TimedOut)
	assert.False(t, fc.OK)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunFcListInvalidCommand(t *testing.T) {
	for _, cmd := range []string{"", "   ", `fc-list "unterminated`} {
		fc := RunFcList(context.Background(), cmd, 0)
		assert.False(t, fc.OK, cmd)
		assert.NotEmpty(t, fc.Err, cmd)
	}
}
