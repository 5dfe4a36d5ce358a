// Package config loads run settings from TOML or YAML files and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/texteffects/easing"
	"github.com/lixenwraith/texteffects/effect"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
)

// ErrInvalidConfig wraps every validation and decoding failure
var ErrInvalidConfig = errors.New("invalid config")

// Output sink names
const (
	OutputANSI   = "ansi"
	OutputScreen = "screen"
)

// Config is the full set of run settings
type Config struct {
	Effect        string   `toml:"effect" yaml:"effect"`
	FrameDuration Duration `toml:"frame_duration" yaml:"frame_duration"`
	TabWidth      int      `toml:"tab_width" yaml:"tab_width"`
	NoWrap        bool     `toml:"no_wrap" yaml:"no_wrap"`
	NoColor       bool     `toml:"no_color" yaml:"no_color"`
	XtermColors   bool     `toml:"xterm_colors" yaml:"xterm_colors"`
	SortOrder     string   `toml:"sort_order" yaml:"sort_order"`
	Easing        string   `toml:"easing" yaml:"easing"`
	Speed         float64  `toml:"speed" yaml:"speed"`
	StartColor    string   `toml:"start_color" yaml:"start_color"`
	FinalColor    string   `toml:"final_color" yaml:"final_color"`
	GradientStops []string `toml:"gradient_stops" yaml:"gradient_stops"`
	GradientSteps int      `toml:"gradient_steps" yaml:"gradient_steps"`
	Parallelism   int      `toml:"parallelism" yaml:"parallelism"`
	MaxFrames     int      `toml:"max_frames" yaml:"max_frames"`
	Seed          uint64   `toml:"seed" yaml:"seed"`
	Output        string   `toml:"output" yaml:"output"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Effect:        parameter.Effect,
		FrameDuration: Duration{parameter.FrameDuration},
		TabWidth:      parameter.TabWidth,
		SortOrder:     parameter.SortOrder,
		Easing:        parameter.Easing,
		Speed:         parameter.Speed,
		StartColor:    parameter.StartColor,
		FinalColor:    parameter.FinalColor,
		GradientSteps: parameter.GradientSteps,
		Parallelism:   parameter.Parallelism,
		MaxFrames:     parameter.MaxFrames,
		Output:        OutputANSI,
	}
}

// Load reads path over the defaults, choosing the decoder by extension
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := cfg.Decode(filepath.Ext(path), data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays data onto c; ext selects TOML (".toml") or YAML (".yaml", ".yml")
// Keys absent from data keep their current values
func (c *Config) Decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: toml: %v", ErrInvalidConfig, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	return nil
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.FrameDuration.Duration <= 0 {
		fail("frame_duration must be positive, got %s", c.FrameDuration)
	}
	if c.Speed <= 0 {
		fail("speed must be positive, got %g", c.Speed)
	}
	if c.TabWidth < 0 {
		fail("tab_width must not be negative, got %d", c.TabWidth)
	}
	if c.GradientSteps < 1 {
		fail("gradient_steps must be at least 1, got %d", c.GradientSteps)
	}
	if c.Parallelism < 1 {
		fail("parallelism must be at least 1, got %d", c.Parallelism)
	}
	if c.MaxFrames < 0 {
		fail("max_frames must not be negative, got %d", c.MaxFrames)
	}
	if !slices.Contains(effect.Names(), strings.ToLower(strings.TrimSpace(c.Effect))) {
		fail("effect %q, expected one of %s", c.Effect, strings.Join(effect.Names(), ", "))
	}
	if _, err := easing.ByName(c.Easing); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := render.ParseSortOrder(c.SortOrder); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := c.Stops(); err != nil {
		errs = append(errs, err)
	}
	if c.Output != OutputANSI && c.Output != OutputScreen {
		fail("output %q, expected %s or %s", c.Output, OutputANSI, OutputScreen)
	}
	return errors.Join(errs...)
}

// Duration decodes from strings like "10ms" in both TOML and YAML
type Duration struct {
	time.Duration
}

func (d Duration) String() string {
	return d.Duration.String()
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
