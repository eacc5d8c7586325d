// Copyright 2025 go-sortviz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortviz/steps"
)

const (
	block = "█"

	cursorHome = "\x1b[H"
	clearLine  = "\x1b[K"
	clearBelow = "\x1b[J"
)

var (
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	helpColor    = color.New(color.FgWhite)
	barColor     = color.New(color.FgWhite)
	sortedColor  = color.New(color.FgCyan)
	foundColor   = color.New(color.FgGreen, color.Bold)
	missingColor = color.New(color.FgHiBlack)

	// opColors colours the bars touched by the last step.
	opColors = map[steps.Op]*color.Color{
		steps.Compare: color.New(color.FgRed),
		steps.Swap:    color.New(color.FgGreen),
		steps.Write:   color.New(color.FgGreen),
		steps.Pivot:   color.New(color.FgYellow),
		steps.Read:    color.New(color.FgMagenta),
		steps.Found:   foundColor,
	}
)

// Draw writes one full frame of m to w. Lines end in CRLF so the frame
// renders correctly with the terminal in raw mode.
func Draw(w io.Writer, m *Model) error {
	_, err := io.WriteString(w, Frame(m))
	return errors.Wrap(err, "drawing frame")
}

// Frame returns one full frame of m.
func Frame(m *Model) string {
	var b strings.Builder
	l := m.Layout

	b.WriteString(cursorHome)
	line := func(s string) {
		b.WriteString(s)
		b.WriteString(clearLine)
		b.WriteString("\r\n")
	}

	line(center(m.Algorithm.Name, l.Width, titleColor))
	line(center("R - Reset | SPACE - Start/Pause | +/- Speed | ESC - Quit", l.Width, helpColor))
	line(center(selectorHelp(), l.Width, helpColor))
	line(status(m))
	for i := 4; i < TopPad; i++ {
		line("")
	}

	paint := barPainter(m)
	rows := l.Rows()
	var row strings.Builder
	for r := rows; r >= 1; r-- {
		row.Reset()
		row.WriteString(strings.Repeat(" ", l.StartX))
		for i := range l.List {
			if !l.Visible(i) {
				break
			}
			cell := strings.Repeat(" ", l.BarWidth())
			if l.BarHeight(i) >= r {
				cell = paint(i, strings.Repeat(block, l.BarWidth()))
			}
			row.WriteString(cell)
			row.WriteString(strings.Repeat(" ", l.BlockWidth-l.BarWidth()))
		}
		if r > 1 {
			line(row.String())
		} else {
			// No newline after the last row so the frame never scrolls.
			b.WriteString(row.String())
			b.WriteString(clearLine)
		}
	}
	b.WriteString(clearBelow)
	return b.String()
}

// barPainter returns the function colouring bar i for the current state.
func barPainter(m *Model) func(i int, s string) string {
	last, hasLast := m.Last()
	return func(i int, s string) string {
		switch {
		case m.Algorithm.Search && m.Result == i:
			return foundColor.Sprint(s)
		case m.Finished && !m.Algorithm.Search:
			return sortedColor.Sprint(s)
		case m.Sorting || hasLast:
			if hasLast && last.Has(i) {
				if c, ok := opColors[last.Op]; ok {
					return c.Sprint(s)
				}
			}
		}
		return barColor.Sprint(s)
	}
}

func selectorHelp() string {
	parts := make([]string, len(steps.Catalog))
	for i, a := range steps.Catalog {
		parts[i] = strings.ToUpper(string(a.Key)) + " - " + a.Name
	}
	return strings.Join(parts, " | ")
}

func status(m *Model) string {
	state := "Paused"
	switch {
	case m.Sorting:
		state = "Running"
	case m.Finished:
		state = "Done"
	case m.Steps() == 0:
		state = "Ready"
	}

	s := fmt.Sprintf("  %-7s  n=%d  steps=%d  speed=x%d", state, len(m.List()), m.Steps(), m.Speed)
	if last, ok := m.Last(); ok {
		s += "  last=" + last.String()
	}
	if m.Algorithm.Search && m.Steps() > 0 {
		s += fmt.Sprintf("  target=%d", m.Target)
		if m.Result >= 0 {
			s += foundColor.Sprintf("  found at %d", m.Result)
		} else if m.Finished {
			s += missingColor.Sprint("  not found")
		}
	}
	return s
}

// center pads s on the left so it is centred on a line of width cells.
func center(s string, width int, c *color.Color) string {
	pad := max(0, (width-len([]rune(s)))/2)
	return strings.Repeat(" ", pad) + c.Sprint(s)
}
