package easing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, err := ByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
		assert.InDelta(t, 0.0, fn(0), 1e-9, "%s(0)", name)
		assert.InDelta(t, 1.0, fn(1), 1e-9, "%s(1)", name)
	}
}

func TestMonotonicFamilies(t *testing.T) {
	// Back, elastic and bounce overshoot by design; the rest never decrease
	monotonic := []Func{Linear, InSine, OutSine, InOutSine, InQuad, OutQuad, InOutQuad,
		InCubic, OutCubic, InOutCubic, InExpo, OutExpo, InOutExpo, InCirc, OutCirc, InOutCirc}
	for i, fn := range monotonic {
		prev := fn(0)
		for step := 1; step <= 100; step++ {
			v := fn(float64(step) / 100)
			assert.GreaterOrEqual(t, v+1e-12, prev, "func %d at step %d", i, step)
			prev = v
		}
	}
}

func TestByName(t *testing.T) {
	fn, err := ByName("IN_OUT_SINE")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, fn(0.5), 1e-9)

	fn, err = ByName("out-quad")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, fn(0.5), 1e-9)

	fn, err = ByName("")
	assert.NoError(t, err)
	assert.Nil(t, fn)

	_, err = ByName("wobble")
	assert.True(t, errors.Is(err, ErrUnknownEasing))
}
