//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the terminal dimensions for fd
// ok is false when detection failed and the 80x24 fallback was returned
func Size(fd int) (width, height int, ok bool) {
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), true
	}
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h, true
	}
	return DefaultWidth, DefaultHeight, false
}

// resetTerminalMode attempts to restore cooked mode after a crash
// Best-effort; errors ignored
func resetTerminalMode() {
	tty, err := unix.Open("/dev/tty", unix.O_RDWR, 0)
	if err != nil {
		return
	}
	defer unix.Close(tty)
	if termios, err := unix.IoctlGetTermios(tty, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(tty, ioctlSetTermios, termios)
	}
}
