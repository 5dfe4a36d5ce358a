package terminal

import (
	"bufio"
	"io"
)

// ANSIWriter writes blocks in place below the cursor without scrolling
//
// Draw anchors on the saved cursor: save, move up the block height, go to
// column 1, write the rows, restore. The whole frame is flushed at once.
type ANSIWriter struct {
	w       *bufio.Writer
	mode    ColorMode
	noColor bool
	height  int
}

// NewANSIWriter creates a writer sink over w
func NewANSIWriter(w io.Writer, mode ColorMode, noColor bool) *ANSIWriter {
	return &ANSIWriter{
		w:       bufio.NewWriterSize(w, 65536),
		mode:    mode,
		noColor: noColor,
	}
}

// Prepare hides the cursor and prints height newlines to reserve the area
func (a *ANSIWriter) Prepare(height int) error {
	a.height = height
	a.w.Write(csiCursorHide)
	for i := 0; i < height; i++ {
		a.w.WriteByte('\n')
	}
	return a.w.Flush()
}

// Draw writes one frame in place
func (a *ANSIWriter) Draw(rows [][]Cell) error {
	w := a.w
	w.Write(decSaveCursor)
	writeCursorUp(w, len(rows))
	w.Write(csiColumnFirst)
	for i, row := range rows {
		if i > 0 {
			w.WriteByte('\n')
		}
		a.writeRow(row)
	}
	w.Write(decRestoreCursor)
	return w.Flush()
}

func (a *ANSIWriter) writeRow(row []Cell) {
	w := a.w
	for _, c := range row {
		if c.Rune == 0 {
			continue
		}
		colored := c.HasColor && !a.noColor
		if colored {
			writeFg(w, c.Fg, a.mode)
		}
		if c.Rune < 0x80 {
			w.WriteByte(byte(c.Rune))
		} else {
			w.WriteRune(c.Rune)
		}
		if colored {
			w.Write(csiSGR0)
		}
	}
}

// Finish restores the cursor
func (a *ANSIWriter) Finish() error {
	a.w.Write(csiSGR0)
	a.w.Write(csiCursorShow)
	return a.w.Flush()
}
