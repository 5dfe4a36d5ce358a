package appearance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/texteffects/event"
	"github.com/lixenwraith/texteffects/terminal"
)

func TestAnimation_InitialLook(t *testing.T) {
	a := NewAnimation(nil, 'x')
	assert.Equal(t, 'x', a.Symbol())
	_, ok := a.Color()
	assert.False(t, ok)
	assert.False(t, a.IsActive())

	a.Tick()
	assert.Equal(t, 'x', a.Symbol())
}

func TestAnimation_ActivateScene(t *testing.T) {
	a := NewAnimation(nil, 'x')
	a.NewScene("s", false).AddColorFrame('a', terminal.RGB{R: 1, G: 2, B: 3}, 2).AddFrame('b', 1)

	assert.False(t, a.ActivateScene("missing"))
	a.NewScene("empty", false)
	assert.False(t, a.ActivateScene("empty"))

	require.True(t, a.ActivateScene("s"))
	assert.Equal(t, 'a', a.Symbol())
	c, ok := a.Color()
	assert.True(t, ok)
	assert.Equal(t, terminal.RGB{R: 1, G: 2, B: 3}, c)

	a.Tick()
	assert.Equal(t, 'a', a.Symbol())
	a.Tick()
	assert.Equal(t, 'b', a.Symbol())
	_, ok = a.Color()
	assert.False(t, ok)
	assert.True(t, a.IsActive())

	// Last frame stays after a non-looping scene ends
	a.Tick()
	assert.False(t, a.IsActive())
	assert.Equal(t, 'b', a.Symbol())
}

func TestAnimation_LoopingScene(t *testing.T) {
	a := NewAnimation(nil, 'x')
	a.NewScene("blink", true).AddFrame('1', 1).AddFrame('2', 1)
	require.True(t, a.ActivateScene("blink"))

	var seen []rune
	for i := 0; i < 5; i++ {
		seen = append(seen, a.Symbol())
		a.Tick()
	}
	assert.Equal(t, []rune{'1', '2', '1', '2', '1'}, seen)
	assert.True(t, a.IsActive())

	a.DeactivateScene()
	assert.False(t, a.IsActive())
}

type sceneOwner struct {
	anim  *Animation
	fired []string
	next  map[string]string
}

func (o *sceneOwner) HandleEvent(t event.EventType, source string) {
	o.fired = append(o.fired, t.String()+":"+source)
	if id, ok := o.next[source]; ok {
		o.anim.ActivateScene(id)
	}
}

func TestAnimation_SceneCompleteEvent(t *testing.T) {
	owner := &sceneOwner{next: map[string]string{"first": "second"}}
	a := NewAnimation(owner, 'x')
	owner.anim = a
	a.NewScene("first", false).AddFrame('1', 2)
	a.NewScene("second", false).AddFrame('2', 1)
	a.NewScene("loop", true).AddFrame('L', 1)

	require.True(t, a.ActivateScene("first"))
	a.Tick()
	assert.Empty(t, owner.fired)
	a.Tick()
	assert.Equal(t, []string{"SceneComplete:first"}, owner.fired)
	assert.Equal(t, '2', a.Symbol(), "chained scene shows on the completing tick")
	assert.True(t, a.IsActive())

	a.Tick()
	assert.Equal(t, []string{"SceneComplete:first", "SceneComplete:second"}, owner.fired)
	assert.False(t, a.IsActive())

	// Looping scenes and manual deactivation never complete
	owner.fired = nil
	require.True(t, a.ActivateScene("loop"))
	for i := 0; i < 4; i++ {
		a.Tick()
	}
	a.DeactivateScene()
	a.Tick()
	assert.Empty(t, owner.fired)
}

func TestScene_Ticks(t *testing.T) {
	s := NewScene("s", false).AddFrame('a', 3).AddFrame('b', 0)
	assert.Equal(t, 4, s.Ticks())
	assert.Equal(t, 1, s.Frames[1].Duration)
}

func TestGradient(t *testing.T) {
	red := terminal.RGB{R: 255, G: 0, B: 0}
	blue := terminal.RGB{R: 0, G: 0, B: 255}
	green := terminal.RGB{R: 0, G: 255, B: 0}

	assert.Nil(t, Gradient(nil, 4))
	assert.Equal(t, []terminal.RGB{red, red, red}, Gradient([]terminal.RGB{red}, 3))

	g := Gradient([]terminal.RGB{red, blue}, 4)
	require.Len(t, g, 5)
	assert.Equal(t, red, g[0])
	assert.Equal(t, blue, g[4])
	assert.NotEqual(t, red, g[2])
	assert.NotEqual(t, blue, g[2])

	g = Gradient([]terminal.RGB{red, blue, green}, 3)
	require.Len(t, g, 7)
	assert.Equal(t, blue, g[3])
	assert.Equal(t, green, g[6])

	g = Gradient([]terminal.RGB{red, blue}, 0)
	assert.Equal(t, []terminal.RGB{red, blue}, g)
}

func TestApplyGradient(t *testing.T) {
	colors := Gradient([]terminal.RGB{terminal.Black, terminal.White}, 2)
	s := ApplyGradient(NewScene("fade", false), 'q', colors, 2)
	require.Len(t, s.Frames, 3)
	for i, f := range s.Frames {
		assert.Equal(t, 'q', f.Symbol)
		assert.True(t, f.HasColor)
		assert.Equal(t, colors[i], f.Color)
		assert.Equal(t, 2, f.Duration)
	}
}
