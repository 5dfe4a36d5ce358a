package effect

import (
	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/motion"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
)

// Expand starts every character at the canvas center and moves it home
type Expand struct {
	settings Settings
	releaser
}

func (e *Expand) Build(comp *render.Compositor) error {
	center := comp.Area().Center()
	chars := comp.InputCharacters()
	for _, ch := range chars {
		ch.SetCoordinate(center)
		ch.SetLayer(parameter.LayerMotion)
		addScenes(ch, e.settings)
		home := ch.Motion.NewWaypoint(waypointHome, ch.InputCoord,
			motion.WithSpeed(e.settings.Speed),
			motion.WithEase(e.settings.Ease),
			motion.WithLayer(parameter.LayerHome),
		)
		settleOn(ch, event.EventWaypointComplete, home.ID, e.settings)
	}

	e.releaser = releaser{
		comp:    comp,
		pending: [][]*character.Character{chars},
		start:   func(ch *character.Character) { startTravel(ch, waypointHome) },
	}
	return nil
}

func (e *Expand) Step() bool {
	return e.step()
}
