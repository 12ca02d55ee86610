// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gallery is a full screen widget gallery for checking that a
// display panel draws text, handles input and keeps redrawing.
package gallery

import (
	"context"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/keymap"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/text/rich"
)

// Title is the window title.
const Title = "RK3506 控件测试"

// Heading is the text at the top of the gallery.
const Heading = "🚀 RK3506 显示测试"

// Palette of the gallery.
var (
	background  = colors.FromRGB(0xf5, 0xf5, 0xf5)
	ink         = colors.FromRGB(0x2c, 0x3e, 0x50)
	accent      = colors.FromRGB(0x34, 0x98, 0xdb)
	accentDark  = colors.FromRGB(0x21, 0x61, 0x8c)
	statusInk   = colors.FromRGB(0x27, 0xae, 0x60)
	statusBg    = colors.FromRGB(0xec, 0xf0, 0xf1)
	outline     = colors.FromRGB(0xbd, 0xc3, 0xc7)
	counterInk  = colors.FromRGB(0xe7, 0x4c, 0x3c)
	progressInk = colors.FromRGB(0x2e, 0xcc, 0x71)
	white       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Gallery is the widget gallery. Its [State] is the source of truth;
// event handlers change the state and then refresh the widgets that
// show it.
type Gallery struct {
	Config *Config

	State *State

	// Now returns the time shown by the clock.
	Now func() time.Time

	// AfterFunc schedules the delayed close; it defaults to [time.AfterFunc].
	AfterFunc func(d time.Duration, f func()) *time.Timer

	// Body is the body the gallery is built in, once built.
	Body *core.Body

	clock    *core.Text
	status   *core.Text
	volume   *core.Text
	progress *core.Meter
	clicks   *core.Text
	exit     *time.Timer
	started  func()
}

// New returns a new gallery for the given config.
func New(c *Config) *Gallery {
	return &Gallery{Config: c, State: NewState(), Now: time.Now, AfterFunc: time.AfterFunc}
}

// Build adds the gallery widgets to b.
func (g *Gallery) Build(b *core.Body) {
	g.Body = b
	b.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(background)
		s.Padding.Set(units.Dp(10))
		s.Gap.Set(units.Dp(10))
	})

	core.NewText(b).SetText(Heading).Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(ink)
		s.Font.Size = units.Dp(20)
		s.Font.Weight = rich.Bold
		s.Padding.Set(units.Dp(10))
		s.Align.Self = styles.Center
	})
	g.clock = core.NewText(b).SetText(g.State.Tick(g.Now()))
	g.clock.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(accent)
		s.Font.Size = units.Dp(14)
		s.Padding.Set(units.Dp(5))
		s.Align.Self = styles.Center
	})
	g.status = core.NewText(b)
	g.status.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(statusInk)
		s.Background = colors.Uniform(statusBg)
		s.Font.Size = units.Dp(13)
		s.Padding.Set(units.Dp(8))
		s.Border.Radius = styles.BorderRadiusSmall
		s.Border.Width.Set(units.Dp(1))
		s.Border.Color.Set(colors.Uniform(outline))
		s.Grow.Set(1, 0)
	})
	g.status.Updater(func() {
		g.status.SetText(g.State.Status)
	})

	g.buttons(group(b, "🔘 按钮测试"))
	g.input(group(b, "✏️ 文本输入"))
	g.choices(group(b, "☑️ 选择控件"))
	g.slider(group(b, "🎚️ 滑块与进度"))
	g.values(group(b, "🔢 数值与选择"))
	g.counter(group(b, "📊 统计信息"))

	b.Scene.OnFirst(events.KeyChord, func(e events.Event) {
		if keymap.Of(e.KeyChord()) == keymap.Abort {
			e.SetHandled()
			g.Exit()
		}
	})
}

// group adds a titled, outlined frame.
func group(parent core.Widget, title string) *core.Frame {
	fr := core.NewFrame(parent)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Background = colors.Uniform(white)
		s.Border.Radius = styles.BorderRadiusMedium
		s.Border.Width.Set(units.Dp(2))
		s.Border.Color.Set(colors.Uniform(accent))
		s.Padding.Set(units.Dp(12))
		s.Grow.Set(1, 0)
	})
	core.NewText(fr).SetText(title).Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(ink)
		s.Font.Size = units.Dp(13)
		s.Font.Weight = rich.Bold
	})
	return fr
}

// row adds a horizontal frame.
func row(parent core.Widget) *core.Frame {
	fr := core.NewFrame(parent)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Grow.Set(1, 0)
	})
	return fr
}

func (g *Gallery) buttons(parent *core.Frame) {
	var r *core.Frame
	for i, bt := range Buttons {
		if i%3 == 0 {
			r = row(parent)
		}
		b := core.NewButton(r).SetText(bt.Label())
		b.Styler(func(s *styles.Style) {
			s.Background = colors.Uniform(accent)
			if s.Is(states.Active) {
				s.Background = colors.Uniform(accentDark)
			}
			s.Color = colors.Uniform(white)
			s.Font.Size = units.Dp(12)
			s.Font.Weight = rich.Bold
			s.Border.Radius = styles.BorderRadiusSmall
			s.Min.Y = units.Dp(35)
			s.Grow.Set(1, 0)
		})
		b.OnClick(func(e events.Event) {
			g.State.Click(bt.Name)
			g.refresh(g.clicks)
		})
	}
}

func (g *Gallery) input(parent *core.Frame) {
	tf := core.NewTextField(parent).SetPlaceholder("请在这里输入文字...")
	tf.Styler(func(s *styles.Style) {
		s.Font.Size = units.Dp(12)
		s.Grow.Set(1, 0)
	})
	tf.OnInput(func(e events.Event) {
		g.State.SetText(tf.Text())
		g.refresh()
	})
}

func (g *Gallery) choices(parent *core.Frame) {
	for _, label := range Features {
		sw := core.NewSwitch(parent).SetType(core.SwitchCheckbox).SetText(label)
		sw.OnChange(func(e events.Event) {
			g.State.SetFeature(label, sw.IsChecked())
			g.refresh()
		})
	}
	core.NewSeparator(parent)

	radios := make([]*core.Switch, len(Themes))
	for i, label := range Themes {
		sw := core.NewSwitch(parent).SetType(core.SwitchRadioButton).SetText(label)
		sw.SetChecked(i == g.State.Theme)
		radios[i] = sw
		sw.OnChange(func(e events.Event) {
			if !sw.IsChecked() {
				// a selected radio button stays selected
				sw.SetChecked(true).Update()
				return
			}
			for j, o := range radios {
				if j != i && o.IsChecked() {
					o.SetChecked(false).Update()
				}
			}
			g.State.SelectTheme(i)
			g.refresh()
		})
	}
}

func (g *Gallery) slider(parent *core.Frame) {
	r := row(parent)
	core.NewText(r).SetText("音量调节：")
	g.volume = core.NewText(r)
	g.volume.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(accent)
		s.Font.Weight = rich.Bold
	})
	g.volume.Updater(func() {
		g.volume.SetText(g.State.VolumeLabel())
	})

	sr := core.NewSlider(parent).SetMin(VolumeMin).SetMax(VolumeMax).SetStep(1)
	sr.SetValue(float32(g.State.Volume))
	sr.Styler(func(s *styles.Style) {
		sr.ValueColor = colors.Uniform(accent)
		sr.ThumbColor = colors.Uniform(accent)
		s.Background = colors.Uniform(statusBg)
		s.Grow.Set(1, 0)
	})
	moved := func(e events.Event) {
		g.State.SetVolume(int(sr.Value + 0.5))
		g.refresh(g.volume, g.progress)
	}
	sr.OnInput(moved)
	sr.OnChange(moved)

	core.NewText(parent).SetText("下载进度：")
	g.progress = core.NewMeter(parent).SetMin(0).SetMax(1)
	g.progress.Styler(func(s *styles.Style) {
		g.progress.ValueColor = colors.Uniform(progressInk)
		s.Border.Width.Set(units.Dp(2))
		s.Border.Color.Set(colors.Uniform(outline))
		s.Grow.Set(1, 0)
	})
	g.progress.Updater(func() {
		g.progress.SetValue(g.State.Progress())
	})
}

func (g *Gallery) values(parent *core.Frame) {
	r := row(parent)
	core.NewText(r).SetText("数量：")
	sp := core.NewSpinner(r).SetMin(QuantityMin).SetMax(QuantityMax).SetStep(1)
	sp.SetValue(float32(g.State.Quantity))
	sp.OnChange(func(e events.Event) {
		g.State.SetQuantity(int(sp.Value + 0.5))
		g.refresh()
	})

	r = row(parent)
	core.NewText(r).SetText("城市：")
	ch := core.NewChooser(r).SetStrings(Cities...).SetCurrentValue(g.State.City)
	ch.OnChange(func(e events.Event) {
		g.State.SelectCity(ch.CurrentItem.GetText())
		g.refresh()
	})
}

func (g *Gallery) counter(parent *core.Frame) {
	r := row(parent)
	core.NewText(r).SetText("点击次数：")
	g.clicks = core.NewText(r)
	g.clicks.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(counterInk)
		s.Font.Size = units.Dp(18)
		s.Font.Weight = rich.Bold
	})
	g.clicks.Updater(func() {
		g.clicks.SetText(g.State.ClicksLabel())
	})
}

// refresh updates the status and the other given widgets from the state.
// It is a no-op before [Gallery.Build].
func (g *Gallery) refresh(ws ...core.Widget) {
	if g.status == nil {
		return
	}
	g.status.Update()
	for _, w := range ws {
		w.AsWidget().Update()
	}
}

// Exit shows the goodbye message and closes the window after
// [Config.ExitDelay]. Repeated calls do nothing.
func (g *Gallery) Exit() {
	if g.State.Exiting {
		return
	}
	g.State.RequestExit()
	g.refresh()
	g.exit = g.AfterFunc(g.Config.ExitDelay, g.close)
}

// close closes the window from the exit timer goroutine.
func (g *Gallery) close() {
	if g.Body == nil {
		return
	}
	g.Body.AsyncLock()
	g.Body.Close()
	g.Body.AsyncUnlock()
}

// tick runs the clock until ctx is done.
func (g *Gallery) tick(ctx context.Context) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			g.clock.AsyncLock()
			g.clock.SetText(g.State.Tick(g.Now())).Update()
			g.clock.AsyncUnlock()
		}
	}
}

// Run builds the gallery in a new window, runs it until it is closed,
// and returns nil.
func (g *Gallery) Run() error {
	b := core.NewBody(Title)
	g.Build(b)

	ctx, cancel := context.WithCancel(context.Background())
	b.OnClose(func(e events.Event) {
		cancel()
		if g.exit != nil {
			g.exit.Stop()
		}
	})
	b.OnShow(func(e events.Event) {
		if g.started != nil {
			g.started()
		}
	})
	go g.tick(ctx)

	slog.Info("starting gallery", "fullscreen", !g.Config.Windowed)
	b.NewWindow().SetFullscreen(!g.Config.Windowed).Run()
	core.Wait()
	cancel()
	return nil
}
