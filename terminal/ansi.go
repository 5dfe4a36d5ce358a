package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// DEC save/restore cursor (ESC 7 / ESC 8)
	decSaveCursor    = []byte("\x1b7")
	decRestoreCursor = []byte("\x1b8")

	csiCursorHide  = []byte("\x1b[?25l")
	csiCursorShow  = []byte("\x1b[?25h")
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiFg256       = []byte("\x1b[38;5;") // followed by N m
	csiFgRGB       = []byte("\x1b[38;2;") // followed by R;G;B m
	csiColumnFirst = []byte("\x1b[1G")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorUp moves the cursor up n rows; n <= 0 writes nothing
func writeCursorUp(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('A')
}

// writeFg emits a foreground SGR in the requested color mode
func writeFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(c)))
		w.WriteByte('m')
		return
	}
	w.Write(csiFgRGB)
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}
