package motion

import (
	"github.com/lixenwraith/texteffects/easing"
	"github.com/lixenwraith/texteffects/vmath"
)

// OriginWaypointID names the synthetic waypoint captured at activation time
const OriginWaypointID = "origin"

// Waypoint is an immutable motion target
// Identity is ID; Equal compares coordinates only
type Waypoint struct {
	ID       string
	Coord    vmath.Coord
	Speed    float64
	Ease     easing.Func
	HoldTime int

	// Layer, when set, is applied to the character on activation
	Layer *int

	// BezierControl, when set, bends the path into a quadratic curve
	BezierControl *vmath.Coord
}

// WaypointOption configures optional waypoint fields
type WaypointOption func(*Waypoint)

func WithSpeed(speed float64) WaypointOption {
	return func(w *Waypoint) { w.Speed = speed }
}

func WithEase(ease easing.Func) WaypointOption {
	return func(w *Waypoint) { w.Ease = ease }
}

func WithLayer(layer int) WaypointOption {
	return func(w *Waypoint) { w.Layer = &layer }
}

func WithHoldTime(ticks int) WaypointOption {
	return func(w *Waypoint) { w.HoldTime = ticks }
}

func WithBezierControl(control vmath.Coord) WaypointOption {
	return func(w *Waypoint) { w.BezierControl = &control }
}

// NewWaypoint builds an unregistered waypoint
// Non-positive speed falls back to 1 and negative hold time to 0
func NewWaypoint(id string, coord vmath.Coord, opts ...WaypointOption) *Waypoint {
	w := &Waypoint{ID: id, Coord: coord, Speed: 1}
	for _, opt := range opts {
		opt(w)
	}
	if w.Speed <= 0 {
		w.Speed = 1
	}
	if w.HoldTime < 0 {
		w.HoldTime = 0
	}
	return w
}

// Equal reports whether both waypoints target the same coordinate
func (w *Waypoint) Equal(other *Waypoint) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.Coord == other.Coord
}

// Curved reports whether the waypoint uses a Bezier path
func (w *Waypoint) Curved() bool {
	return w.BezierControl != nil
}
