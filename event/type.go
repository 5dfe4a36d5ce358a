package event

// EventType represents a lifecycle event raised by a character's waypoint or scene
type EventType int

const (
	// EventWaypointActivated fires synchronously inside ActivateWaypoint
	// Source: the waypoint being activated
	EventWaypointActivated EventType = iota

	// EventWaypointHolding fires once when steps complete on a waypoint with hold time
	// Source: the active waypoint, before the hold countdown starts
	EventWaypointHolding

	// EventWaypointComplete fires after the waypoint is reached and deactivated
	// Source: the waypoint that was just completed
	EventWaypointComplete

	// EventSceneComplete fires when a non-looping scene finishes its last frame
	// Source: the scene id
	EventSceneComplete
)

// Action is the closed set of reactions a registration can perform
// New behavior is added as a new tag here and a case in Handler.execute
type Action int

const (
	// ActionActivateWaypoint activates the registered waypoint id on the owning character
	ActionActivateWaypoint Action = iota

	// ActionDeactivateWaypoint stops the target waypoint if it is active
	ActionDeactivateWaypoint

	// ActionSetLayer moves the character to Registration.Layer
	ActionSetLayer

	// ActionSetCoordinate teleports the character to Registration.Coord
	ActionSetCoordinate

	// ActionActivateScene switches the character appearance to the target scene id
	ActionActivateScene

	// ActionDeactivate removes the character from rendering
	ActionDeactivate
)
