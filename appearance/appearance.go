// Package appearance holds per-character scenes: timed symbol/color frames
// advanced one step per tick, independent of motion.
package appearance

import (
	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/terminal"
)

// Frame is one visual of a scene, shown for Duration ticks
type Frame struct {
	Symbol   rune
	Color    terminal.RGB
	HasColor bool
	Duration int
}

// Scene is an ordered frame sequence
type Scene struct {
	ID     string
	Frames []Frame
	Loop   bool
}

// NewScene creates an empty scene
func NewScene(id string, loop bool) *Scene {
	return &Scene{ID: id, Loop: loop}
}

// AddFrame appends an uncolored frame; duration below 1 is raised to 1
func (s *Scene) AddFrame(symbol rune, duration int) *Scene {
	s.Frames = append(s.Frames, Frame{Symbol: symbol, Duration: max(duration, 1)})
	return s
}

// AddColorFrame appends a colored frame; duration below 1 is raised to 1
func (s *Scene) AddColorFrame(symbol rune, color terminal.RGB, duration int) *Scene {
	s.Frames = append(s.Frames, Frame{Symbol: symbol, Color: color, HasColor: true, Duration: max(duration, 1)})
	return s
}

// Ticks is the total scene length of one pass
func (s *Scene) Ticks() int {
	n := 0
	for _, f := range s.Frames {
		n += f.Duration
	}
	return n
}

// Owner is the character side of an Animation
type Owner interface {
	HandleEvent(t event.EventType, source string)
}

// Animation tracks the current look of one character
type Animation struct {
	owner  Owner
	scenes map[string]*Scene

	symbol   rune
	color    terminal.RGB
	hasColor bool

	active     *Scene
	frameIndex int
	frameTicks int
}

// NewAnimation starts with the input symbol and no color
// owner receives EventSceneComplete and may be nil
func NewAnimation(owner Owner, symbol rune) *Animation {
	return &Animation{
		owner:  owner,
		scenes: make(map[string]*Scene),
		symbol: symbol,
	}
}

// AddScene registers s under its ID, replacing any previous entry
func (a *Animation) AddScene(s *Scene) {
	a.scenes[s.ID] = s
}

// NewScene creates and registers an empty scene
func (a *Animation) NewScene(id string, loop bool) *Scene {
	s := NewScene(id, loop)
	a.AddScene(s)
	return s
}

func (a *Animation) Scene(id string) (*Scene, bool) {
	s, ok := a.scenes[id]
	return s, ok
}

// ActivateScene starts a registered scene at its first frame
// Unknown or empty scenes are rejected
func (a *Animation) ActivateScene(id string) bool {
	s, ok := a.scenes[id]
	if !ok || len(s.Frames) == 0 {
		return false
	}
	a.active = s
	a.frameIndex = 0
	a.frameTicks = 0
	a.apply(s.Frames[0])
	return true
}

// DeactivateScene stops the running scene, keeping the current look
func (a *Animation) DeactivateScene() {
	a.active = nil
}

// Tick advances the active scene one step
// A non-looping scene stops on its last frame, then reports EventSceneComplete;
// a handler activating another scene shows that scene's first frame on the same tick
func (a *Animation) Tick() {
	s := a.active
	if s == nil {
		return
	}
	a.frameTicks++
	if a.frameTicks < s.Frames[a.frameIndex].Duration {
		return
	}
	a.frameTicks = 0
	a.frameIndex++
	if a.frameIndex >= len(s.Frames) {
		if !s.Loop {
			a.active = nil
			if a.owner != nil {
				a.owner.HandleEvent(event.EventSceneComplete, s.ID)
			}
			return
		}
		a.frameIndex = 0
	}
	a.apply(s.Frames[a.frameIndex])
}

func (a *Animation) apply(f Frame) {
	a.symbol = f.Symbol
	a.color = f.Color
	a.hasColor = f.HasColor
}

// SetAppearance overrides the current look without touching the active scene
func (a *Animation) SetAppearance(symbol rune, color terminal.RGB, hasColor bool) {
	a.symbol = symbol
	a.color = color
	a.hasColor = hasColor
}

func (a *Animation) Symbol() rune                { return a.symbol }
func (a *Animation) Color() (terminal.RGB, bool) { return a.color, a.hasColor }
func (a *Animation) ActiveScene() *Scene         { return a.active }
func (a *Animation) IsActive() bool              { return a.active != nil }
