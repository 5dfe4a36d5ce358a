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

// Orbit circles every character around the canvas center in a looping chain,
// then redirects each loop home once the orbit time is up
type Orbit struct {
	settings Settings
	releaser

	orbitIDs []string
	entry    map[*character.Character]string
	frames   int
	released bool
}

func orbitID(i int) string {
	return fmt.Sprintf("orbit-%d", i)
}

func (e *Orbit) Build(comp *render.Compositor) error {
	area := comp.Area()
	center := area.Center()
	radius := max(min(area.Right/4, area.Top/2), 1)
	points := vmath.CoordsOnCircle(center, radius, parameter.OrbitPoints)

	e.orbitIDs = make([]string, len(points))
	for i := range points {
		e.orbitIDs[i] = orbitID(i)
	}

	e.entry = make(map[*character.Character]string)
	chars := comp.InputCharacters()
	for idx, ch := range chars {
		ch.SetCoordinate(center)
		addScenes(ch, e.settings)

		// Each character enters the ring at a different point
		ring := make([]*motion.Waypoint, len(points))
		for i := range points {
			p := (i + idx) % len(points)
			ring[i] = motion.NewWaypoint(orbitID(p), points[p],
				motion.WithSpeed(e.settings.Speed),
				motion.WithLayer(parameter.LayerOrbit),
			)
		}
		ch.Motion.ChainWaypoints(ring, true)
		e.entry[ch] = ring[0].ID

		home := ch.Motion.NewWaypoint(waypointHome, ch.InputCoord,
			motion.WithSpeed(e.settings.Speed),
			motion.WithEase(e.settings.Ease),
			motion.WithLayer(parameter.LayerHome),
			motion.WithHoldTime(parameter.HomeHoldTime),
		)
		settleOn(ch, event.EventWaypointHolding, home.ID, e.settings)
	}

	e.releaser = releaser{
		comp:    comp,
		pending: [][]*character.Character{chars},
		start:   func(ch *character.Character) { startTravel(ch, e.entry[ch]) },
	}
	return nil
}

// Step keeps the ring running for OrbitFrames, then breaks every loop toward home
func (e *Orbit) Step() bool {
	e.frames++
	if !e.released && e.frames > parameter.OrbitFrames {
		e.released = true
		for _, ch := range e.comp.InputCharacters() {
			for _, id := range e.orbitIDs {
				ch.Events.Clear(event.EventWaypointComplete, id)
				ch.Events.RegisterActivation(event.EventWaypointComplete, id, waypointHome)
			}
		}
	}
	busy := e.step()
	return busy || !e.released
}
