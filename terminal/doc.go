// Package terminal provides the low-level terminal surface used by the compositor.
//
// Features:
//   - True color (24-bit) and 256-color SGR foreground sequences
//   - Terminal size detection with an 80x24 fallback
//   - In-place block output anchored with DEC save/restore cursor
//   - A tcell screen sink for full-screen or simulated output
//   - Clean terminal restoration on exit/panic
//
// Sequences are emitted directly; terminfo/termcap is bypassed.
package terminal
