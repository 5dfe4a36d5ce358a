// Package render composes independently moving characters into in-place
// terminal frames.
//
// A Compositor owns every character of one animation. Each Print rebuilds the
// frame from scratch: characters are drawn in ascending layer order so higher
// layers win shared cells, and anything off the canvas is skipped.
package render

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/content"
	"github.com/lixenwraith/texteffects/terminal"
	"github.com/lixenwraith/texteffects/vmath"
)

// Clock is the time source used by the frame throttle
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Options configure a Compositor; zero values select defaults
type Options struct {
	// FrameDuration is the minimum spacing between emitted frames
	FrameDuration time.Duration
	// TerminalHeight <= 0 detects the height of stdout
	TerminalHeight int
	NoColor        bool
	ColorMode      terminal.ColorMode
	// Sink defaults to an ANSI writer on stdout
	Sink  terminal.Sink
	Clock Clock
	Rand  vmath.Rand
}

// Compositor holds all characters and emits frames
type Compositor struct {
	area OutputArea
	opts Options

	characters []*character.Character
	inputCount int
	byInput    map[vmath.Coord]*character.Character

	sink  terminal.Sink
	clock Clock
	rng   vmath.Rand

	frame    *Frame
	lastEmit time.Time
	frames   int
}

// NewCompositor builds the output area and one character per visible input cell
// Input outside the area is discarded
func NewCompositor(grid content.Grid, opts Options) *Compositor {
	height := opts.TerminalHeight
	if height <= 0 {
		var ok bool
		_, height, ok = terminal.StdoutSize()
		if !ok {
			log.Printf("render: terminal size unavailable, using %dx%d", terminal.DefaultWidth, terminal.DefaultHeight)
		}
	}

	c := &Compositor{
		area:    NewOutputArea(min(height-1, grid.Height), grid.Width),
		opts:    opts,
		byInput: make(map[vmath.Coord]*character.Character),
		sink:    opts.Sink,
		clock:   opts.Clock,
		rng:     opts.Rand,
	}
	if c.sink == nil {
		c.sink = terminal.NewANSIWriter(os.Stdout, opts.ColorMode, opts.NoColor)
	}
	if c.clock == nil {
		c.clock = systemClock{}
	}
	if c.rng == nil {
		c.rng = vmath.DefaultRand()
	}

	for _, cell := range grid.Cells {
		if !c.area.Contains(cell.Coord) {
			continue
		}
		ch := character.New(len(c.characters), cell.Symbol, cell.Coord)
		c.characters = append(c.characters, ch)
		c.byInput[cell.Coord] = ch
	}
	c.inputCount = len(c.characters)
	c.frame = NewFrame(c.area.Right, c.area.Top)
	return c
}

func (c *Compositor) Area() OutputArea   { return c.area }
func (c *Compositor) Rand() vmath.Rand   { return c.rng }
func (c *Compositor) Frame() *Frame      { return c.frame }
func (c *Compositor) FramesEmitted() int { return c.frames }
func (c *Compositor) Options() Options   { return c.opts }

// All returns input characters followed by synthetic ones, in creation order
func (c *Compositor) All() []*character.Character {
	return c.characters
}

// InputCharacters returns the characters decomposed from input
func (c *Compositor) InputCharacters() []*character.Character {
	return c.characters[:c.inputCount]
}

// CharacterByInputCoord looks up an input character by its home coordinate
func (c *Compositor) CharacterByInputCoord(coord vmath.Coord) (*character.Character, bool) {
	ch, ok := c.byInput[coord]
	return ch, ok
}

// AddCharacter creates a synthetic character at coord
// Its input coordinate is (0,0) and it starts inactive
func (c *Compositor) AddCharacter(symbol rune, coord vmath.Coord) *character.Character {
	ch := character.New(len(c.characters), symbol, vmath.C(0, 0))
	ch.SetCoordinate(coord)
	c.characters = append(c.characters, ch)
	return ch
}

// ActiveCharacters returns characters currently drawn
func (c *Compositor) ActiveCharacters() []*character.Character {
	var active []*character.Character
	for _, ch := range c.characters {
		if ch.Active() {
			active = append(active, ch)
		}
	}
	return active
}

// Busy reports whether any active character is still moving or animating
func (c *Compositor) Busy() bool {
	for _, ch := range c.characters {
		if ch.Active() && !ch.Idle() {
			return true
		}
	}
	return false
}

// BuildFrame composes the current state into a fresh frame
func (c *Compositor) BuildFrame() *Frame {
	f := NewFrame(c.area.Right, c.area.Top)

	ordered := make([]*character.Character, len(c.characters))
	copy(ordered, c.characters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Layer() < ordered[j].Layer()
	})

	for _, ch := range ordered {
		if ch.Active() {
			c.draw(f, ch)
		}
	}
	c.frame = f
	return f
}

// draw writes one character; a panicking appearance drops it from this frame
func (c *Compositor) draw(f *Frame, ch *character.Character) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render: dropped character %d from frame: %v", ch.ID, r)
		}
	}()

	coord := ch.Coord()
	if !coord.OnCanvas() || !c.area.Contains(coord) {
		return
	}
	symbol := ch.Symbol()
	fg, hasColor := ch.Animation.Color()
	cell := Cell{Rune: symbol, Fg: fg, HasColor: hasColor && !c.opts.NoColor}
	f.Set(coord, cell, max(runewidth.RuneWidth(symbol), 1))
}

// Prepare reserves the output area on the sink and starts the frame clock,
// so the first Print is spaced a full frame after it
func (c *Compositor) Prepare() error {
	if err := c.sink.Prepare(c.area.Top); err != nil {
		return fmt.Errorf("prepare output: %w", err)
	}
	c.lastEmit = c.clock.Now()
	return nil
}

// Print builds a frame and emits it no sooner than FrameDuration after the previous one
func (c *Compositor) Print() error {
	f := c.BuildFrame()
	c.throttle()
	if err := c.sink.Draw(f.Rows()); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	c.lastEmit = c.clock.Now()
	c.frames++
	return nil
}

// throttle sleeps out the rest of the frame; without a prior Prepare or Print there is nothing to space from
func (c *Compositor) throttle() {
	if c.lastEmit.IsZero() || c.opts.FrameDuration <= 0 {
		return
	}
	if elapsed := c.clock.Now().Sub(c.lastEmit); elapsed < c.opts.FrameDuration {
		c.clock.Sleep(c.opts.FrameDuration - elapsed)
	}
}

// Finish releases the output area
func (c *Compositor) Finish() error {
	if err := c.sink.Finish(); err != nil {
		return fmt.Errorf("finish output: %w", err)
	}
	return nil
}
