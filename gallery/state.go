// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"fmt"
	"strconv"
	"time"
)

// Status texts.
const (
	StatusReady   = "📡 状态：就绪"
	StatusExiting = "👋 再见！正在退出..."
)

// Button is one of the buttons of the button group.
type Button struct {

	// Icon is the glyph shown before the name.
	Icon string

	// Name is reported in the status when the button is clicked.
	Name string
}

// Label returns the button text.
func (b Button) Label() string {
	return b.Icon + " " + b.Name
}

// Buttons are the buttons of the button group, three per row.
var Buttons = []Button{
	{"✓", "确认"}, {"✗", "取消"}, {"⟳", "刷新"},
	{"◀", "上一步"}, {"▶", "下一步"}, {"⚙", "设置"},
}

// Features are the labels of the feature check boxes.
var Features = []string{"启用功能 A", "启用功能 B"}

// Theme radio buttons; [DefaultTheme] is selected at startup.
var (
	Themes       = []string{"🔴 红色主题", "🔵 蓝色主题"}
	DefaultTheme = 1
)

// Cities offered by the city chooser.
var Cities = []string{"北京", "上海", "广州", "深圳", "杭州"}

// Ranges and initial values of the numeric controls.
const (
	VolumeMin     = 0
	VolumeMax     = 100
	VolumeInitial = 50

	QuantityMin     = 0
	QuantityMax     = 100
	QuantityInitial = 10
)

// ClockLayout formats the clock label.
const ClockLayout = "15:04:05"

// State is everything the gallery shows, independent of the widgets
// that show it. Every method returns the new status text.
type State struct {

	// Status is the text of the status bar.
	Status string

	// Clicks counts the button clicks.
	Clicks int

	// Volume is the slider value, mirrored by the progress meter.
	Volume int

	// Quantity is the spinner value.
	Quantity int

	// Text is the current content of the text field.
	Text string

	// Enabled maps each of [Features] to whether it is checked.
	Enabled map[string]bool

	// Theme is the index of the selected theme in [Themes].
	Theme int

	// City is the selected city.
	City string

	// Clock is the text of the clock label.
	Clock string

	// Exiting is set once an exit has been requested.
	Exiting bool
}

// NewState returns the state at startup.
func NewState() *State {
	return &State{
		Status:   StatusReady,
		Volume:   VolumeInitial,
		Quantity: QuantityInitial,
		Theme:    DefaultTheme,
		City:     Cities[0],
		Enabled:  map[string]bool{},
	}
}

// Click records a click on the button with the given name.
func (s *State) Click(name string) string {
	s.Clicks++
	s.Status = "✓ 已点击：" + name
	return s.Status
}

// SetText records the text field content.
func (s *State) SetText(text string) string {
	s.Text = text
	if text == "" {
		s.Status = StatusReady
	} else {
		s.Status = "✏️ 输入：" + text
	}
	return s.Status
}

// SetFeature records a check box change.
func (s *State) SetFeature(label string, on bool) string {
	s.Enabled[label] = on
	if on {
		s.Status = "☑️ " + label + " 已启用"
	} else {
		s.Status = "☑️ " + label + " 已禁用"
	}
	return s.Status
}

// SelectTheme records the selection of the theme at index i.
// Out of range indices are ignored.
func (s *State) SelectTheme(i int) string {
	if i < 0 || i >= len(Themes) {
		return s.Status
	}
	s.Theme = i
	s.Status = "🎨 已切换至：" + Themes[i]
	return s.Status
}

// SetVolume records a slider move, clamped to the slider range.
func (s *State) SetVolume(v int) string {
	s.Volume = min(max(v, VolumeMin), VolumeMax)
	s.Status = fmt.Sprintf("🎚️ 音量：%d%%", s.Volume)
	return s.Status
}

// VolumeLabel is the text of the label next to the slider.
func (s *State) VolumeLabel() string {
	return strconv.Itoa(s.Volume)
}

// Progress is the fill of the progress meter, in [0, 1].
func (s *State) Progress() float32 {
	return float32(s.Volume) / VolumeMax
}

// SetQuantity records a spinner change, clamped to the spinner range.
func (s *State) SetQuantity(v int) string {
	s.Quantity = min(max(v, QuantityMin), QuantityMax)
	s.Status = fmt.Sprintf("🔢 数量：%d", s.Quantity)
	return s.Status
}

// SelectCity records a city chooser change.
func (s *State) SelectCity(city string) string {
	s.City = city
	s.Status = "📍 已选择城市：" + city
	return s.Status
}

// ClicksLabel is the text of the click counter.
func (s *State) ClicksLabel() string {
	return strconv.Itoa(s.Clicks)
}

// RequestExit records that the user asked to quit.
func (s *State) RequestExit() string {
	s.Exiting = true
	s.Status = StatusExiting
	return s.Status
}

// Tick sets the clock to t.
func (s *State) Tick(t time.Time) string {
	s.Clock = Clock(t)
	return s.Clock
}

// Clock returns the clock label for t.
func Clock(t time.Time) string {
	return "⏰ " + t.Format(ClockLayout)
}
