package appearance

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/texteffects/terminal"
)

// Gradient blends consecutive stops in Lab space
// Each pair contributes steps colors after the first stop, so the result has
// 1 + (len(stops)-1)*steps entries; a single stop yields steps copies
func Gradient(stops []terminal.RGB, steps int) []terminal.RGB {
	if len(stops) == 0 {
		return nil
	}
	steps = max(steps, 1)
	if len(stops) == 1 {
		out := make([]terminal.RGB, steps)
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	out := make([]terminal.RGB, 0, 1+(len(stops)-1)*steps)
	out = append(out, stops[0])
	for i := 1; i < len(stops); i++ {
		from, to := toColorful(stops[i-1]), toColorful(stops[i])
		for s := 1; s <= steps; s++ {
			if s == steps {
				out = append(out, stops[i])
				continue
			}
			out = append(out, fromColorful(from.BlendLab(to, float64(s)/float64(steps))))
		}
	}
	return out
}

// ApplyGradient appends one frame per color to s
func ApplyGradient(s *Scene, symbol rune, colors []terminal.RGB, duration int) *Scene {
	for _, c := range colors {
		s.AddColorFrame(symbol, c, duration)
	}
	return s
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}
