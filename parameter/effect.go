package parameter

// Effect Defaults
const (
	// Effect is the effect used when none is configured
	Effect = "expand"

	// Speed is the default waypoint speed in cells per tick
	Speed = 0.5

	// Easing is the default easing function name
	Easing = "in_out_sine"

	// SortOrder is the default grouping order for sweep
	SortOrder = "column_left_to_right"

	// GradientSteps is the number of blend steps between gradient stops
	GradientSteps = 12

	// GradientFrameDuration is the ticks each gradient color is shown
	GradientFrameDuration = 3

	// StartColor is the first gradient stop
	StartColor = "#8a008a"

	// FinalColor is the last gradient stop and the settled color
	FinalColor = "#00d1ff"
)

// Effect Timing
const (
	// ScatterGroupSize is the number of characters released per frame by scatter
	ScatterGroupSize = 3

	// SweepHoldTime is the ticks a swept character rests on its lift point
	SweepHoldTime = 4

	// OrbitFrames is the number of frames characters circle before heading home
	OrbitFrames = 160

	// OrbitPoints is the number of waypoints on one orbit
	OrbitPoints = 8

	// HomeHoldTime is the ticks a character rests at home before its settle scene
	HomeHoldTime = 2
)

// Layers
const (
	LayerHome   = 0
	LayerMotion = 1
	LayerOrbit  = 2
)
