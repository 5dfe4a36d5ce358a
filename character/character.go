// Package character defines the animated unit: one input symbol with its own
// motion, event handler and appearance.
package character

import (
	"log"

	"github.com/lixenwraith/texteffects/appearance"
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/motion"
	"github.com/lixenwraith/texteffects/vmath"
)

// Character is never deleted; SetActive(false) removes it from rendering
type Character struct {
	ID          int
	InputSymbol rune
	InputCoord  vmath.Coord

	Motion    *motion.Motion
	Events    *event.Handler
	Animation *appearance.Animation

	active bool
	layer  int
}

// New creates an inactive character positioned at its input coordinate
func New(id int, symbol rune, input vmath.Coord) *Character {
	c := &Character{
		ID:          id,
		InputSymbol: symbol,
		InputCoord:  input,
	}
	c.Motion = motion.New(c, input)
	c.Animation = appearance.NewAnimation(c, symbol)
	c.Events = event.NewHandler(c)
	return c
}

// Tick advances motion then appearance by one step
func (c *Character) Tick() {
	c.Motion.Move()
	c.Animation.Tick()
}

// Idle reports whether neither motion nor a scene is in progress
func (c *Character) Idle() bool {
	return c.Motion.MovementIsComplete() && !c.Animation.IsActive()
}

func (c *Character) Active() bool          { return c.active }
func (c *Character) SetActive(active bool) { c.active = active }
func (c *Character) Layer() int            { return c.layer }
func (c *Character) SetLayer(layer int)    { c.layer = layer }
func (c *Character) Coord() vmath.Coord    { return c.Motion.CurrentCoord() }
func (c *Character) Symbol() rune          { return c.Animation.Symbol() }

// HandleEvent dispatches to registered actions; failures are logged and skipped
func (c *Character) HandleEvent(t event.EventType, source string) {
	if err := c.Events.HandleEvent(t, source); err != nil {
		log.Printf("character %d: %v", c.ID, err)
	}
}

// RegisterEvent appends a registration to the character's handler
func (c *Character) RegisterEvent(t event.EventType, source string, reg event.Registration) {
	c.Events.Register(t, source, reg)
}

// ActivateWaypointByID activates a waypoint from the motion registry
func (c *Character) ActivateWaypointByID(id string) bool {
	w, ok := c.Motion.Waypoint(id)
	if !ok {
		return false
	}
	c.Motion.ActivateWaypoint(w)
	return true
}

// DeactivateWaypointByID deactivates a registered waypoint if it is active
func (c *Character) DeactivateWaypointByID(id string) bool {
	w, ok := c.Motion.Waypoint(id)
	if !ok {
		return false
	}
	c.Motion.DeactivateWaypoint(w)
	return true
}

func (c *Character) ActivateSceneByID(id string) bool {
	return c.Animation.ActivateScene(id)
}

func (c *Character) SetCoordinate(coord vmath.Coord) {
	c.Motion.SetCoordinate(coord)
}

// compile-time interface checks
var (
	_ motion.Owner     = (*Character)(nil)
	_ appearance.Owner = (*Character)(nil)
	_ event.Target     = (*Character)(nil)
)
