//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "golang.org/x/term"

// Size returns the terminal dimensions for fd
// ok is false when detection failed and the 80x24 fallback was returned
func Size(fd int) (width, height int, ok bool) {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h, true
	}
	return DefaultWidth, DefaultHeight, false
}

func resetTerminalMode() {}
