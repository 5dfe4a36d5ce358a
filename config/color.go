package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/texteffects/terminal"
)

// ParseColor accepts color names, #RRGGBB and bare RRGGBB
func ParseColor(s string) (terminal.RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if isHex6(name) {
		name = "#" + name
	}
	c := tcell.GetColor(name)
	if !c.Valid() {
		return terminal.RGB{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return terminal.RGB{}, fmt.Errorf("%w: color %q has no RGB value", ErrInvalidConfig, s)
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func isHex6(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Stops resolves gradient stops: GradientStops when set, else StartColor then FinalColor
func (c Config) Stops() ([]terminal.RGB, error) {
	names := c.GradientStops
	if len(names) == 0 {
		names = []string{c.StartColor, c.FinalColor}
	}
	stops := make([]terminal.RGB, 0, len(names))
	for _, n := range names {
		rgb, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		stops = append(stops, rgb)
	}
	return stops, nil
}
