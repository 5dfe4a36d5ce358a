package parameter

import "time"

// Frame Loop & Output Timing
const (
	// FrameDuration is the minimum spacing between emitted frames (100 FPS)
	FrameDuration = 10 * time.Millisecond

	// MaxFrames caps a single run so a looping effect cannot animate forever
	MaxFrames = 20000

	// Parallelism is the number of goroutines ticking characters, 1 ticks inline
	Parallelism = 1
)

// Input Decomposition
const (
	// TabWidth is the number of spaces a tab expands to
	TabWidth = 4

	// MaxInputBytes bounds stdin reads
	MaxInputBytes = 1 << 20
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "texteffects.log"

	// MaxLogSize triggers rotation of the debug log (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
