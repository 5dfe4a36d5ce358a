package render

import (
	"strings"

	"github.com/lixenwraith/texteffects/vmath"
)

// Frame is one composed output grid
// Cells are stored row 1 (bottom) first; Rows and String report the top row first
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a blank frame
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Clear resets all cells to blanks using exponential copy
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = Cell{Rune: ' '}
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// inBounds reports whether a 1-based coordinate lies on the frame
func (f *Frame) inBounds(c vmath.Coord) bool {
	return c.Column >= 1 && c.Column <= f.width && c.Row >= 1 && c.Row <= f.height
}

func (f *Frame) index(c vmath.Coord) int {
	return (c.Row-1)*f.width + c.Column - 1
}

// At returns the cell at a 1-based coordinate; off-frame coordinates read as blank
func (f *Frame) At(c vmath.Coord) Cell {
	if !f.inBounds(c) {
		return Cell{Rune: ' '}
	}
	return f.cells[f.index(c)]
}

// Set writes a cell, keeping wide runes intact
// A wide rune that would cross the right edge is not written
func (f *Frame) Set(c vmath.Coord, cell Cell, width int) {
	if !f.inBounds(c) {
		return
	}
	if width > 1 && c.Column+width-1 > f.width {
		return
	}
	idx := f.index(c)
	f.breakWide(idx)
	f.cells[idx] = cell
	for i := 1; i < width; i++ {
		f.breakWide(idx + i)
		f.cells[idx+i] = Cell{Rune: continuation}
	}
}

// breakWide blanks the other half of a wide rune about to be overwritten at idx
func (f *Frame) breakWide(idx int) {
	column := idx % f.width
	if f.cells[idx].Rune == continuation {
		for j := idx - 1; j >= idx-column; j-- {
			if f.cells[j].Rune != continuation {
				f.cells[j] = Cell{Rune: ' '}
				break
			}
			f.cells[j] = Cell{Rune: ' '}
		}
	}
	for j := idx + 1; j < idx-column+f.width && f.cells[j].Rune == continuation; j++ {
		f.cells[j] = Cell{Rune: ' '}
	}
}

// Rows returns the grid top row first, sharing cell storage
func (f *Frame) Rows() [][]Cell {
	rows := make([][]Cell, f.height)
	for i := range rows {
		row := f.height - i
		start := (row - 1) * f.width
		rows[i] = f.cells[start : start+f.width]
	}
	return rows
}

// String renders the plain text of the frame, top row first
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.width + 1) * f.height)
	for i, row := range f.Rows() {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Rune != continuation {
				b.WriteRune(c.Rune)
			}
		}
	}
	return b.String()
}
