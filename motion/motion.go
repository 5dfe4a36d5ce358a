// Package motion moves a single character along waypoints, one step per tick.
//
// A Motion is owned by exactly one character. Activating a waypoint snapshots
// the current position as the origin and precomputes the step count; Move then
// interpolates linearly or along a quadratic Bezier curve, optionally eased.
// Lifecycle events are reported to the owner synchronously, which lets event
// registrations chain waypoints within the same Move call.
package motion

import (
	"math"

	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/vmath"
)

// Owner is the character side of a Motion
type Owner interface {
	SetLayer(layer int)
	HandleEvent(t event.EventType, source string)
	RegisterEvent(t event.EventType, source string, reg event.Registration)
}

// Motion holds per-character movement state and the waypoint registry
type Motion struct {
	owner     Owner
	waypoints map[string]*Waypoint

	currentCoord  vmath.Coord
	previousCoord vmath.Coord

	active *Waypoint
	origin *Waypoint

	speed             float64
	distance          float64
	maxSteps          int
	currentStep       int
	holdTimeRemaining int
}

// New creates a Motion positioned at start
func New(owner Owner, start vmath.Coord) *Motion {
	return &Motion{
		owner:         owner,
		waypoints:     make(map[string]*Waypoint),
		currentCoord:  start,
		previousCoord: vmath.C(-1, -1),
		speed:         1,
	}
}

// NewWaypoint creates a waypoint and registers it under id, replacing any previous entry
func (m *Motion) NewWaypoint(id string, coord vmath.Coord, opts ...WaypointOption) *Waypoint {
	w := NewWaypoint(id, coord, opts...)
	m.waypoints[id] = w
	return w
}

// AddWaypoint registers an externally built waypoint
func (m *Motion) AddWaypoint(w *Waypoint) {
	m.waypoints[w.ID] = w
}

// Waypoint looks up a registered waypoint
func (m *Motion) Waypoint(id string) (*Waypoint, bool) {
	w, ok := m.waypoints[id]
	return w, ok
}

// RemoveWaypoint drops a waypoint from the registry; an active transition is unaffected
func (m *Motion) RemoveWaypoint(id string) {
	delete(m.waypoints, id)
}

func (m *Motion) CurrentCoord() vmath.Coord      { return m.currentCoord }
func (m *Motion) PreviousCoord() vmath.Coord     { return m.previousCoord }
func (m *Motion) ActiveWaypoint() *Waypoint      { return m.active }
func (m *Motion) OriginWaypoint() *Waypoint      { return m.origin }
func (m *Motion) Speed() float64                 { return m.speed }
func (m *Motion) InterWaypointDistance() float64 { return m.distance }
func (m *Motion) MaxSteps() int                  { return m.maxSteps }
func (m *Motion) CurrentStep() int               { return m.currentStep }
func (m *Motion) HoldTimeRemaining() int         { return m.holdTimeRemaining }

// SetCoordinate teleports without touching transition state
func (m *Motion) SetCoordinate(c vmath.Coord) {
	m.currentCoord = c
}

// MovementIsComplete reports whether no waypoint is active
func (m *Motion) MovementIsComplete() bool {
	return m.active == nil
}

// ActivateWaypoint starts a transition from the current coordinate to w
// Re-activation while moving restarts timing from the current position
func (m *Motion) ActivateWaypoint(w *Waypoint) {
	m.origin = &Waypoint{ID: OriginWaypointID, Coord: m.currentCoord, Speed: 1}
	m.active = w
	m.speed = w.Speed
	m.holdTimeRemaining = w.HoldTime
	m.currentStep = 0

	if w.BezierControl != nil {
		m.distance = vmath.CurveLength(m.currentCoord, *w.BezierControl, w.Coord)
	} else {
		m.distance = vmath.Distance(m.currentCoord, w.Coord)
	}

	// Clamp so a fast waypoint cannot overshoot or produce a zero step count
	if m.speed > m.distance {
		m.speed = math.Max(m.distance, 1)
	}
	m.maxSteps = int(math.RoundToEven(m.distance / m.speed))

	if w.Layer != nil {
		m.owner.SetLayer(*w.Layer)
	}
	m.owner.HandleEvent(event.EventWaypointActivated, w.ID)
}

// DeactivateWaypoint clears transition state if w is the active waypoint
func (m *Motion) DeactivateWaypoint(w *Waypoint) {
	if m.active == nil || m.active != w {
		return
	}
	m.active = nil
	m.origin = nil
	m.holdTimeRemaining = 0
	m.distance = 0
	m.maxSteps = 0
	m.currentStep = 0
}

// Move advances one tick toward the active waypoint
func (m *Motion) Move() {
	m.previousCoord = m.currentCoord
	if m.active == nil {
		return
	}

	if m.currentStep < m.maxSteps {
		m.currentStep++
	}

	if m.distance != 0 {
		factor := 1.0
		if m.maxSteps > 0 {
			factor = float64(m.currentStep) / float64(m.maxSteps)
			if m.active.Ease != nil {
				factor = m.active.Ease(factor)
			}
		}
		if m.active.BezierControl != nil {
			m.currentCoord = vmath.CoordOnCurve(m.origin.Coord, *m.active.BezierControl, m.active.Coord, factor)
		} else {
			m.currentCoord = vmath.PointAtDistance(m.origin.Coord, m.active.Coord, m.distance, factor*m.distance)
		}
	}

	if m.currentStep != m.maxSteps {
		return
	}

	reached := m.active
	switch {
	case m.holdTimeRemaining == 0:
		m.DeactivateWaypoint(reached)
		m.owner.HandleEvent(event.EventWaypointComplete, reached.ID)
	case m.holdTimeRemaining == reached.HoldTime:
		// Countdown starts before dispatch so a handler activating a new waypoint keeps its own hold time
		m.holdTimeRemaining--
		m.owner.HandleEvent(event.EventWaypointHolding, reached.ID)
	default:
		m.holdTimeRemaining--
	}
}

// ChainWaypoints registers "on complete of waypoints[i-1], activate waypoints[i]"
// With loop, the last waypoint also activates the first
// Chained waypoints are added to the registry so activation by id resolves
func (m *Motion) ChainWaypoints(waypoints []*Waypoint, loop bool) {
	if len(waypoints) < 2 {
		return
	}
	for _, w := range waypoints {
		m.waypoints[w.ID] = w
	}
	for i := 1; i < len(waypoints); i++ {
		m.chain(waypoints[i-1], waypoints[i])
	}
	if loop {
		m.chain(waypoints[len(waypoints)-1], waypoints[0])
	}
}

func (m *Motion) chain(from, to *Waypoint) {
	m.owner.RegisterEvent(event.EventWaypointComplete, from.ID, event.Registration{
		Action: event.ActionActivateWaypoint,
		Target: to.ID,
	})
}
