// Package effect configures characters of a compositor into a named animation.
//
// Build registers waypoints, scenes and event chains once; Step is called at
// the start of every frame to release pending characters and reports whether
// the animation still has work to do.
package effect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/texteffects/appearance"
	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/easing"
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
	"github.com/lixenwraith/texteffects/terminal"
)

// ErrUnknownEffect is returned for an unregistered effect name
var ErrUnknownEffect = errors.New("unknown effect")

// Effect drives one animation over a compositor
type Effect interface {
	Build(comp *render.Compositor) error
	Step() bool
}

// Settings shared by all effects
type Settings struct {
	Speed float64
	Ease  easing.Func
	Order render.SortOrder

	// Gradient is the expanded color ramp; its last entry is the settled color
	Gradient      []terminal.RGB
	FrameDuration int
}

// DefaultSettings returns settings built from package parameter defaults
func DefaultSettings() Settings {
	start, _ := terminal.ParseHex(parameter.StartColor)
	final, _ := terminal.ParseHex(parameter.FinalColor)
	ease, _ := easing.ByName(parameter.Easing)
	order, _ := render.ParseSortOrder(parameter.SortOrder)
	return Settings{
		Speed:         parameter.Speed,
		Ease:          ease,
		Order:         order,
		Gradient:      appearance.Gradient([]terminal.RGB{start, final}, parameter.GradientSteps),
		FrameDuration: parameter.GradientFrameDuration,
	}
}

type factory func(Settings) Effect

var registry = map[string]factory{
	"expand":  func(s Settings) Effect { return &Expand{settings: s} },
	"scatter": func(s Settings) Effect { return &Scatter{settings: s} },
	"sweep":   func(s Settings) Effect { return &Sweep{settings: s} },
	"orbit":   func(s Settings) Effect { return &Orbit{settings: s} },
}

// New creates a registered effect by name, case-insensitively
func New(name string, s Settings) (Effect, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return f(s), nil
}

// Names lists registered effects
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scene and waypoint ids shared by the effects
const (
	sceneTravel  = "travel"
	sceneSettle  = "settle"
	waypointHome = "home"
)

// releaser activates queued character groups, one group per Step
type releaser struct {
	comp    *render.Compositor
	pending [][]*character.Character
	start   func(ch *character.Character)
}

// step releases the next group and reports whether work remains
func (r *releaser) step() bool {
	if len(r.pending) > 0 {
		for _, ch := range r.pending[0] {
			ch.SetActive(true)
			r.start(ch)
		}
		r.pending = r.pending[1:]
	}
	return len(r.pending) > 0 || r.comp.Busy()
}

// addScenes gives ch a travel look and a settle gradient ending on the final color
func addScenes(ch *character.Character, s Settings) {
	if len(s.Gradient) == 0 {
		return
	}
	ch.Animation.NewScene(sceneTravel, false).AddColorFrame(ch.InputSymbol, s.Gradient[0], 1)
	appearance.ApplyGradient(ch.Animation.NewScene(sceneSettle, false), ch.InputSymbol, s.Gradient, s.FrameDuration)
}

// settleOn plays the settle scene when source fires t; skipped without a gradient
func settleOn(ch *character.Character, t event.EventType, source string, s Settings) {
	if len(s.Gradient) == 0 {
		return
	}
	ch.Events.Register(t, source, event.Registration{Action: event.ActionActivateScene, Target: sceneSettle})
}

// startTravel activates the travel scene and the given waypoint
func startTravel(ch *character.Character, waypointID string) {
	ch.ActivateSceneByID(sceneTravel)
	ch.ActivateWaypointByID(waypointID)
}
