package event

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/texteffects/vmath"
)

var (
	// ErrUnknownAction is returned when a registration carries an action outside the enumeration
	ErrUnknownAction = errors.New("unknown event action")

	// ErrUnknownTarget is returned when an action names a waypoint or scene the character does not own
	ErrUnknownTarget = errors.New("unknown action target")
)

// Key identifies the registrations fired by one event on one source waypoint
type Key struct {
	Type   EventType
	Source string
}

// Registration is one tagged reaction; only the fields relevant to Action are read
type Registration struct {
	Action Action
	Target string
	Layer  int
	Coord  vmath.Coord
}

// Target is the character state an action is allowed to mutate
// Lookups by id return false when the id is not registered on the character
type Target interface {
	ActivateWaypointByID(id string) bool
	DeactivateWaypointByID(id string) bool
	ActivateSceneByID(id string) bool
	SetLayer(layer int)
	SetCoordinate(coord vmath.Coord)
	SetActive(active bool)
}

// Handler maps (event, source waypoint) to an ordered list of registrations
// It is owned by a single character and is not safe for concurrent use
type Handler struct {
	target   Target
	registry map[Key][]Registration
}

// NewHandler creates a handler that executes actions against target
func NewHandler(target Target) *Handler {
	return &Handler{
		target:   target,
		registry: make(map[Key][]Registration),
	}
}

// Register appends a registration for the event on the source waypoint
func (h *Handler) Register(t EventType, source string, reg Registration) {
	key := Key{Type: t, Source: source}
	h.registry[key] = append(h.registry[key], reg)
}

// RegisterActivation is shorthand for "on t of source, activate waypoint target"
func (h *Handler) RegisterActivation(t EventType, source, target string) {
	h.Register(t, source, Registration{Action: ActionActivateWaypoint, Target: target})
}

// Registrations returns a copy of the registrations for a key in registration order
func (h *Handler) Registrations(t EventType, source string) []Registration {
	regs := h.registry[Key{Type: t, Source: source}]
	if len(regs) == 0 {
		return nil
	}
	return append([]Registration(nil), regs...)
}

// Clear drops all registrations for a key
func (h *Handler) Clear(t EventType, source string) {
	delete(h.registry, Key{Type: t, Source: source})
}

// Len returns the number of registered keys
func (h *Handler) Len() int {
	return len(h.registry)
}

// HandleEvent runs every registration for the key synchronously, in order
// Registrations added while handling are not seen until the next event
// All registrations run; failures are joined into the returned error
func (h *Handler) HandleEvent(t EventType, source string) error {
	regs := h.registry[Key{Type: t, Source: source}]
	if len(regs) == 0 {
		return nil
	}
	snapshot := append([]Registration(nil), regs...)

	var errs []error
	for _, reg := range snapshot {
		if err := h.execute(reg); err != nil {
			errs = append(errs, fmt.Errorf("%s on %q: %w", t, source, err))
		}
	}
	return errors.Join(errs...)
}

func (h *Handler) execute(reg Registration) error {
	switch reg.Action {
	case ActionActivateWaypoint:
		if !h.target.ActivateWaypointByID(reg.Target) {
			return fmt.Errorf("%w: waypoint %q", ErrUnknownTarget, reg.Target)
		}
	case ActionDeactivateWaypoint:
		if !h.target.DeactivateWaypointByID(reg.Target) {
			return fmt.Errorf("%w: waypoint %q", ErrUnknownTarget, reg.Target)
		}
	case ActionActivateScene:
		if !h.target.ActivateSceneByID(reg.Target) {
			return fmt.Errorf("%w: scene %q", ErrUnknownTarget, reg.Target)
		}
	case ActionSetLayer:
		h.target.SetLayer(reg.Layer)
	case ActionSetCoordinate:
		h.target.SetCoordinate(reg.Coord)
	case ActionDeactivate:
		h.target.SetActive(false)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, int(reg.Action))
	}
	return nil
}
