package config

import (
	"flag"
	"strings"
)

// Flags binds command-line flags for every config field
// Only flags set explicitly override file values
type Flags struct {
	fs     *flag.FlagSet
	values Config

	configPath string
	debug      bool
	stops      string
}

// NewFlags registers flags on fs with defaults taken from Default()
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, values: Default()}
	v := &f.values

	fs.StringVar(&f.configPath, "config", "", "Config file (.toml, .yaml, .yml)")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to logs/")
	fs.StringVar(&v.Effect, "effect", v.Effect, "Effect: expand, scatter, sweep, orbit")
	fs.DurationVar(&v.FrameDuration.Duration, "frame-duration", v.FrameDuration.Duration, "Minimum time between frames")
	fs.IntVar(&v.TabWidth, "tab-width", v.TabWidth, "Spaces per tab")
	fs.BoolVar(&v.NoWrap, "no-wrap", v.NoWrap, "Truncate long lines instead of wrapping")
	fs.BoolVar(&v.NoColor, "no-color", v.NoColor, "Disable colors")
	fs.BoolVar(&v.XtermColors, "xterm-colors", v.XtermColors, "Force xterm-256 colors")
	fs.StringVar(&v.SortOrder, "sort-order", v.SortOrder, "Group order for sweep")
	fs.StringVar(&v.Easing, "easing", v.Easing, "Easing function, or none")
	fs.Float64Var(&v.Speed, "speed", v.Speed, "Movement speed in cells per tick")
	fs.StringVar(&v.StartColor, "start-color", v.StartColor, "First gradient color")
	fs.StringVar(&v.FinalColor, "final-color", v.FinalColor, "Settled color")
	fs.StringVar(&f.stops, "gradient-stops", "", "Comma-separated gradient stops, overrides start/final colors")
	fs.IntVar(&v.GradientSteps, "gradient-steps", v.GradientSteps, "Blend steps between stops")
	fs.IntVar(&v.Parallelism, "parallelism", v.Parallelism, "Goroutines ticking characters")
	fs.IntVar(&v.MaxFrames, "max-frames", v.MaxFrames, "Frame limit, 0 for none")
	fs.Uint64Var(&v.Seed, "seed", v.Seed, "Random seed, 0 for time-based")
	fs.StringVar(&v.Output, "output", v.Output, "Output: ansi (in place) or screen (tcell)")
	return f
}

func (f *Flags) ConfigPath() string { return f.configPath }
func (f *Flags) Debug() bool        { return f.debug }

// Apply copies explicitly set flags onto c
func (f *Flags) Apply(c *Config) {
	v := f.values
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "effect":
			c.Effect = v.Effect
		case "frame-duration":
			c.FrameDuration = v.FrameDuration
		case "tab-width":
			c.TabWidth = v.TabWidth
		case "no-wrap":
			c.NoWrap = v.NoWrap
		case "no-color":
			c.NoColor = v.NoColor
		case "xterm-colors":
			c.XtermColors = v.XtermColors
		case "sort-order":
			c.SortOrder = v.SortOrder
		case "easing":
			c.Easing = v.Easing
		case "speed":
			c.Speed = v.Speed
		case "start-color":
			c.StartColor = v.StartColor
		case "final-color":
			c.FinalColor = v.FinalColor
		case "gradient-stops":
			c.GradientStops = splitList(f.stops)
		case "gradient-steps":
			c.GradientSteps = v.GradientSteps
		case "parallelism":
			c.Parallelism = v.Parallelism
		case "max-frames":
			c.MaxFrames = v.MaxFrames
		case "seed":
			c.Seed = v.Seed
		case "output":
			c.Output = v.Output
		}
	})
}

// Resolve loads the config file if one was given and applies flag overrides
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.configPath != "" {
		loaded, err := Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	f.Apply(&cfg)
	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
