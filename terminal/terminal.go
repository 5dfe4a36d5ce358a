package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when size detection fails
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Cell is one terminal cell of an output block
// Rune 0 marks the trailing half of a wide rune and is not written
type Cell struct {
	Rune     rune
	Fg       RGB
	HasColor bool
}

// Blank is an empty uncolored cell
var Blank = Cell{Rune: ' '}

// Sink receives composed blocks, rows ordered top first
type Sink interface {
	// Prepare reserves height rows for in-place output
	Prepare(height int) error
	// Draw replaces the reserved area with rows
	Draw(rows [][]Cell) error
	// Finish releases the output area
	Finish() error
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// StdoutSize returns the size of the process stdout terminal, falling back to 80x24
func StdoutSize() (width, height int, ok bool) {
	return Size(int(os.Stdout.Fd()))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Finish cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
