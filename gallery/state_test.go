// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, "0", s.ClicksLabel())
	assert.Equal(t, "50", s.VolumeLabel())
	assert.Equal(t, float32(0.5), s.Progress())
	assert.Equal(t, 10, s.Quantity)
	assert.Equal(t, "🔵 蓝色主题", Themes[s.Theme])
	assert.False(t, s.Exiting)
}

func TestStateClick(t *testing.T) {
	s := NewState()
	for i, bt := range Buttons {
		assert.Equal(t, "✓ 已点击："+bt.Name, s.Click(bt.Name))
		assert.Equal(t, i+1, s.Clicks)
	}
	assert.Equal(t, "6", s.ClicksLabel())
	assert.Equal(t, []string{"✓ 确认", "✗ 取消", "⟳ 刷新", "◀ 上一步", "▶ 下一步", "⚙ 设置"}, labels(Buttons))
}

func TestStateText(t *testing.T) {
	s := NewState()
	assert.Equal(t, "✏️ 输入：你好", s.SetText("你好"))
	assert.Equal(t, StatusReady, s.SetText(""))
}

func TestStateFeature(t *testing.T) {
	s := NewState()
	assert.Equal(t, "☑️ 启用功能 A 已启用", s.SetFeature(Features[0], true))
	assert.Equal(t, "☑️ 启用功能 B 已禁用", s.SetFeature(Features[1], false))
	assert.Equal(t, map[string]bool{"启用功能 A": true, "启用功能 B": false}, s.Enabled)
}

func TestStateTheme(t *testing.T) {
	s := NewState()
	assert.Equal(t, "🎨 已切换至：🔴 红色主题", s.SelectTheme(0))
	assert.Equal(t, 0, s.Theme)
	assert.Equal(t, "🎨 已切换至：🔴 红色主题", s.SelectTheme(5))
	assert.Equal(t, 0, s.Theme)
}

func TestStateVolume(t *testing.T) {
	s := NewState()
	assert.Equal(t, "🎚️ 音量：73%", s.SetVolume(73))
	assert.Equal(t, "73", s.VolumeLabel())
	assert.InDelta(t, 0.73, s.Progress(), 1e-6)

	s.SetVolume(150)
	assert.Equal(t, "100", s.VolumeLabel())
	s.SetVolume(-3)
	assert.Equal(t, "0", s.VolumeLabel())
}

func TestStateQuantity(t *testing.T) {
	s := NewState()
	assert.Equal(t, "🔢 数量：42", s.SetQuantity(42))
	assert.Equal(t, "🔢 数量：100", s.SetQuantity(101))
}

func TestStateCity(t *testing.T) {
	s := NewState()
	for _, c := range Cities {
		assert.Equal(t, "📍 已选择城市："+c, s.SelectCity(c))
		assert.Equal(t, c, s.City)
	}
}

func TestClock(t *testing.T) {
	tm := time.Date(2026, 3, 1, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "⏰ 09:05:07", Clock(tm))

	s := NewState()
	assert.Equal(t, "⏰ 09:05:07", s.Tick(tm))
	assert.Equal(t, "⏰ 09:05:07", s.Clock)
}

func TestExitAfterDelay(t *testing.T) {
	g := New(&Config{ExitDelay: 30 * time.Millisecond})
	closed := make(chan time.Duration, 1)
	start := time.Now()
	g.AfterFunc = func(d time.Duration, f func()) *time.Timer {
		return time.AfterFunc(d, func() {
			f()
			closed <- time.Since(start)
		})
	}

	g.Exit()
	assert.Equal(t, StatusExiting, g.State.Status)
	g.Exit()

	select {
	case d := <-closed:
		assert.GreaterOrEqual(t, d, 30*time.Millisecond)
	case <-time.After(5 * time.Second):
		require.Fail(t, "window was not closed")
	}
	select {
	case <-closed:
		assert.Fail(t, "closed twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func labels(bs []Button) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Label()
	}
	return out
}
