package event

import "strings"

var (
	typeToName = map[EventType]string{
		EventWaypointActivated: "WaypointActivated",
		EventWaypointHolding:   "WaypointHolding",
		EventWaypointComplete:  "WaypointComplete",
		EventSceneComplete:     "SceneComplete",
	}
	actionToName = map[Action]string{
		ActionActivateWaypoint:   "ActivateWaypoint",
		ActionDeactivateWaypoint: "DeactivateWaypoint",
		ActionSetLayer:           "SetLayer",
		ActionSetCoordinate:      "SetCoordinate",
		ActionActivateScene:      "ActivateScene",
		ActionDeactivate:         "Deactivate",
	}
	nameToType   = make(map[string]EventType, len(typeToName))
	nameToAction = make(map[string]Action, len(actionToName))
)

func init() {
	for t, name := range typeToName {
		nameToType[strings.ToLower(name)] = t
	}
	for a, name := range actionToName {
		nameToAction[strings.ToLower(name)] = a
	}
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "EventType(unknown)"
}

func (a Action) String() string {
	if name, ok := actionToName[a]; ok {
		return name
	}
	return "Action(unknown)"
}

// TypeByName returns the EventType for a case-insensitive name
func TypeByName(name string) (EventType, bool) {
	t, ok := nameToType[strings.ToLower(name)]
	return t, ok
}

// ActionByName returns the Action for a case-insensitive name
func ActionByName(name string) (Action, bool) {
	a, ok := nameToAction[strings.ToLower(name)]
	return a, ok
}
