package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/texteffects/vmath"
)

// recordingTarget logs every mutation in call order
type recordingTarget struct {
	waypoints map[string]bool
	scenes    map[string]bool
	calls     []string
	layer     int
	coord     vmath.Coord
	active    bool
}

func newRecordingTarget(waypoints ...string) *recordingTarget {
	r := &recordingTarget{waypoints: map[string]bool{}, scenes: map[string]bool{"glow": true}, active: true}
	for _, w := range waypoints {
		r.waypoints[w] = true
	}
	return r
}

func (r *recordingTarget) ActivateWaypointByID(id string) bool {
	r.calls = append(r.calls, "activate:"+id)
	return r.waypoints[id]
}

func (r *recordingTarget) DeactivateWaypointByID(id string) bool {
	r.calls = append(r.calls, "deactivate:"+id)
	return r.waypoints[id]
}

func (r *recordingTarget) ActivateSceneByID(id string) bool {
	r.calls = append(r.calls, "scene:"+id)
	return r.scenes[id]
}

func (r *recordingTarget) SetLayer(layer int)              { r.calls = append(r.calls, "layer"); r.layer = layer }
func (r *recordingTarget) SetCoordinate(coord vmath.Coord) { r.calls = append(r.calls, "coord"); r.coord = coord }
func (r *recordingTarget) SetActive(active bool)           { r.calls = append(r.calls, "active"); r.active = active }

func TestHandleEvent_RegistrationOrder(t *testing.T) {
	target := newRecordingTarget("a", "b")
	h := NewHandler(target)

	h.RegisterActivation(EventWaypointComplete, "start", "a")
	h.Register(EventWaypointComplete, "start", Registration{Action: ActionSetLayer, Layer: 4})
	h.RegisterActivation(EventWaypointComplete, "start", "b")

	require.NoError(t, h.HandleEvent(EventWaypointComplete, "start"))
	assert.Equal(t, []string{"activate:a", "layer", "activate:b"}, target.calls)
	assert.Equal(t, 4, target.layer)
}

func TestHandleEvent_KeyedByTypeAndSource(t *testing.T) {
	target := newRecordingTarget("a")
	h := NewHandler(target)
	h.RegisterActivation(EventWaypointComplete, "start", "a")

	require.NoError(t, h.HandleEvent(EventWaypointActivated, "start"))
	require.NoError(t, h.HandleEvent(EventWaypointComplete, "other"))
	assert.Empty(t, target.calls)
}

func TestHandleEvent_AllActions(t *testing.T) {
	target := newRecordingTarget("w")
	h := NewHandler(target)
	dest := vmath.C(3, 9)
	h.Register(EventWaypointHolding, "w", Registration{Action: ActionDeactivateWaypoint, Target: "w"})
	h.Register(EventWaypointHolding, "w", Registration{Action: ActionSetCoordinate, Coord: dest})
	h.Register(EventWaypointHolding, "w", Registration{Action: ActionActivateScene, Target: "glow"})
	h.Register(EventWaypointHolding, "w", Registration{Action: ActionDeactivate})

	require.NoError(t, h.HandleEvent(EventWaypointHolding, "w"))
	assert.Equal(t, []string{"deactivate:w", "coord", "scene:glow", "active"}, target.calls)
	assert.Equal(t, dest, target.coord)
	assert.False(t, target.active)
}

func TestHandleEvent_Errors(t *testing.T) {
	target := newRecordingTarget("a")
	h := NewHandler(target)
	h.RegisterActivation(EventWaypointComplete, "a", "missing")
	h.Register(EventWaypointComplete, "a", Registration{Action: Action(99)})
	h.Register(EventWaypointComplete, "a", Registration{Action: ActionSetLayer, Layer: 2})

	err := h.HandleEvent(EventWaypointComplete, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTarget))
	assert.True(t, errors.Is(err, ErrUnknownAction))
	// Failures do not stop later registrations
	assert.Equal(t, 2, target.layer)
}

func TestHandleEvent_SnapshotDuringDispatch(t *testing.T) {
	target := newRecordingTarget("a")
	h := NewHandler(target)
	h.RegisterActivation(EventWaypointComplete, "a", "a")

	// Registrations are copied before dispatch, so a handler mutating the registry is safe
	regs := h.Registrations(EventWaypointComplete, "a")
	regs[0].Target = "changed"
	assert.Equal(t, "a", h.Registrations(EventWaypointComplete, "a")[0].Target)

	h.Clear(EventWaypointComplete, "a")
	assert.Nil(t, h.Registrations(EventWaypointComplete, "a"))
	assert.Zero(t, h.Len())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "WaypointComplete", EventWaypointComplete.String())
	assert.Equal(t, "ActivateWaypoint", ActionActivateWaypoint.String())
	assert.Equal(t, "EventType(unknown)", EventType(42).String())

	et, ok := TypeByName("waypointholding")
	assert.True(t, ok)
	assert.Equal(t, EventWaypointHolding, et)

	assert.Equal(t, "SceneComplete", EventSceneComplete.String())
	et, ok = TypeByName("scenecomplete")
	assert.True(t, ok)
	assert.Equal(t, EventSceneComplete, et)

	a, ok := ActionByName("SETLAYER")
	assert.True(t, ok)
	assert.Equal(t, ActionSetLayer, a)

	_, ok = ActionByName("explode")
	assert.False(t, ok)
}
