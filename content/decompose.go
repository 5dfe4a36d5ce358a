// Package content turns raw input text into positioned character cells.
//
// Rows count from the bottom: the last input line is row 1. Columns are
// display columns, so a wide rune advances the next column by two.
package content

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/texteffects/vmath"
)

// NoInputText replaces blank input
const NoInputText = "No Input."

// Cell is one visible input rune at its home coordinate
type Cell struct {
	Symbol rune
	Coord  vmath.Coord
	Width  int
}

// Options control line layout
// MaxWidth <= 0 disables wrapping and truncation
type Options struct {
	TabWidth int
	MaxWidth int
	NoWrap   bool
}

// Grid is the decomposed input
// Width and Height span the visible cells only; trailing spaces and blank top
// lines do not widen or raise the canvas
type Grid struct {
	Cells  []Cell
	Lines  []string
	Width  int
	Height int
}

// Decompose expands tabs, wraps or truncates lines, and assigns coordinates
// Spaces occupy columns but produce no cell
func Decompose(text string, opts Options) Grid {
	if strings.TrimSpace(text) == "" {
		text = NoInputText
	}
	if opts.TabWidth > 0 {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", opts.TabWidth))
	}

	var lines []string
	for _, line := range splitLines(text) {
		switch {
		case opts.MaxWidth <= 0:
			lines = append(lines, line)
		case opts.NoWrap:
			lines = append(lines, truncate(line, opts.MaxWidth))
		default:
			lines = append(lines, wrap(line, opts.MaxWidth)...)
		}
	}

	g := Grid{Lines: lines}
	for i, line := range lines {
		row := len(lines) - i
		column := 1
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if r != ' ' {
				g.Cells = append(g.Cells, Cell{Symbol: r, Coord: vmath.C(column, row), Width: w})
				g.Width = max(g.Width, column+w-1)
				g.Height = max(g.Height, row)
			}
			column += w
		}
	}
	return g
}

// splitLines splits on \n, tolerating \r\n, and drops one trailing newline
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// wrap breaks a line into chunks no wider than width display columns
func wrap(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var out []string
	var b strings.Builder
	used := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if used+w > width && used > 0 {
			out = append(out, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += w
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// truncate cuts a line to width display columns without splitting a wide rune
func truncate(line string, width int) string {
	if runewidth.StringWidth(line) <= width {
		return line
	}
	var b strings.Builder
	used := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}
