package effect

import (
	"fmt"

	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/motion"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
	"github.com/lixenwraith/texteffects/vmath"
)

const waypointLift = "lift"

// Sweep reveals groups in sort order: each character rises from below the
// canvas, overshoots by one row, rests, then drops home and settles
type Sweep struct {
	settings Settings
	releaser
}

func (e *Sweep) Build(comp *render.Compositor) error {
	groups, err := comp.Characters(e.settings.Order)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	for _, ch := range comp.InputCharacters() {
		ch.SetCoordinate(vmath.C(ch.InputCoord.Column, 0))
		addScenes(ch, e.settings)
		lift := motion.NewWaypoint(waypointLift, vmath.C(ch.InputCoord.Column, ch.InputCoord.Row+1),
			motion.WithSpeed(e.settings.Speed),
			motion.WithEase(e.settings.Ease),
			motion.WithLayer(parameter.LayerMotion),
			motion.WithHoldTime(parameter.SweepHoldTime),
		)
		home := motion.NewWaypoint(waypointHome, ch.InputCoord,
			motion.WithLayer(parameter.LayerHome),
		)
		ch.Motion.ChainWaypoints([]*motion.Waypoint{lift, home}, false)
		settleOn(ch, event.EventWaypointHolding, lift.ID, e.settings)
	}

	e.releaser = releaser{
		comp:    comp,
		pending: groups,
		start:   func(ch *character.Character) { startTravel(ch, waypointLift) },
	}
	return nil
}

func (e *Sweep) Step() bool {
	return e.step()
}
