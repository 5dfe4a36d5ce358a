package render

import (
	"github.com/lixenwraith/texteffects/vmath"
)

// RandomColumn returns a column inside the area
func (c *Compositor) RandomColumn() int {
	return c.area.Left + c.rng.Intn(max(c.area.Width(), 1))
}

// RandomRow returns a row inside the area
func (c *Compositor) RandomRow() int {
	return c.area.Bottom + c.rng.Intn(max(c.area.Height(), 1))
}

// offCanvas is the staging column or row beyond the left and bottom edges
const offCanvas = -1

// RandomCoord returns a coordinate inside the area, or with outside set, one
// just beyond a randomly chosen edge: Top+1, Right+1, or offCanvas
func (c *Compositor) RandomCoord(outside bool) vmath.Coord {
	if !outside {
		return vmath.C(c.RandomColumn(), c.RandomRow())
	}
	switch c.rng.Intn(4) {
	case 0:
		return vmath.C(c.RandomColumn(), c.area.Top+1)
	case 1:
		return vmath.C(c.RandomColumn(), offCanvas)
	case 2:
		return vmath.C(offCanvas, c.RandomRow())
	default:
		return vmath.C(c.area.Right+1, c.RandomRow())
	}
}
