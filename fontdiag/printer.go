// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// rule is the width of section separators.
const rule = 60

// Printer writes human readable diagnostic lines, coloring the
// pass and fail markers when the output supports it.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a [Printer] writing to w. If color is false, no
// escape sequences are written regardless of the terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Rule prints a separator line.
func (p *Printer) Rule() {
	fmt.Fprintln(p.out, strings.Repeat("=", rule))
}

// Banner prints a title between two separator lines.
func (p *Printer) Banner(title string) {
	p.Rule()
	fmt.Fprintln(p.out, title)
	p.Rule()
}

// Section starts a numbered step.
func (p *Printer) Section(step int, title string) {
	fmt.Fprintln(p.out)
	p.Banner(fmt.Sprintf("Step %d: %s", step, title))
}

// Line prints an indented plain line.
func (p *Printer) Line(indent int, format string, args ...any) {
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(" ", indent), fmt.Sprintf(format, args...))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// OK prints an indented line with a green check mark.
func (p *Printer) OK(indent int, format string, args ...any) {
	p.marked(indent, "✓", "2", format, args...)
}

// Fail prints an indented line with a red cross.
func (p *Printer) Fail(indent int, format string, args ...any) {
	p.marked(indent, "✗", "1", format, args...)
}

// Info prints an indented line with an arrow.
func (p *Printer) Info(indent int, format string, args ...any) {
	p.marked(indent, "→", "4", format, args...)
}

func (p *Printer) marked(indent int, mark, color, format string, args ...any) {
	m := p.out.String(mark).Foreground(p.out.Color(color)).String()
	p.Line(indent, "%s %s", m, fmt.Sprintf(format, args...))
}
