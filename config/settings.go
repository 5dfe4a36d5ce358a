package config

import (
	"fmt"

	"github.com/lixenwraith/texteffects/appearance"
	"github.com/lixenwraith/texteffects/easing"
	"github.com/lixenwraith/texteffects/effect"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
	"github.com/lixenwraith/texteffects/terminal"
)

// EffectSettings converts the config into effect settings
func (c Config) EffectSettings() (effect.Settings, error) {
	ease, err := easing.ByName(c.Easing)
	if err != nil {
		return effect.Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	order, err := render.ParseSortOrder(c.SortOrder)
	if err != nil {
		return effect.Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	stops, err := c.Stops()
	if err != nil {
		return effect.Settings{}, err
	}

	var gradient []terminal.RGB
	if !c.NoColor {
		gradient = appearance.Gradient(stops, c.GradientSteps)
	}
	return effect.Settings{
		Speed:         c.Speed,
		Ease:          ease,
		Order:         order,
		Gradient:      gradient,
		FrameDuration: parameter.GradientFrameDuration,
	}, nil
}

// ColorMode resolves the SGR color mode: xterm-256 when forced, else detected
func (c Config) ColorMode() terminal.ColorMode {
	if c.XtermColors {
		return terminal.ColorMode256
	}
	return terminal.DetectColorMode()
}
