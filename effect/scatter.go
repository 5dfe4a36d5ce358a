package effect

import (
	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/motion"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
)

// Scatter flies characters in from beyond the canvas edges along curved paths,
// a few at a time in random order
type Scatter struct {
	settings Settings
	releaser
}

func (e *Scatter) Build(comp *render.Compositor) error {
	rng := comp.Rand()
	chars := append([]*character.Character(nil), comp.InputCharacters()...)
	// Fisher-Yates with the compositor's source keeps runs reproducible under a seed
	for i := len(chars) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}

	var groups [][]*character.Character
	for start := 0; start < len(chars); start += parameter.ScatterGroupSize {
		groups = append(groups, chars[start:min(start+parameter.ScatterGroupSize, len(chars))])
	}

	for _, ch := range chars {
		ch.SetCoordinate(comp.RandomCoord(true))
		ch.SetLayer(parameter.LayerMotion)
		addScenes(ch, e.settings)
		home := ch.Motion.NewWaypoint(waypointHome, ch.InputCoord,
			motion.WithSpeed(e.settings.Speed),
			motion.WithEase(e.settings.Ease),
			motion.WithLayer(parameter.LayerHome),
			motion.WithBezierControl(comp.RandomCoord(false)),
		)
		settleOn(ch, event.EventWaypointComplete, home.ID, e.settings)
	}

	e.releaser = releaser{
		comp:    comp,
		pending: groups,
		start:   func(ch *character.Character) { startTravel(ch, waypointHome) },
	}
	return nil
}

func (e *Scatter) Step() bool {
	return e.step()
}
