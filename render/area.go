package render

import (
	"github.com/lixenwraith/texteffects/vmath"
)

// OutputArea is the visible canvas, 1-based with row 1 at the bottom
type OutputArea struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewOutputArea creates an area anchored at (1,1)
func NewOutputArea(top, right int) OutputArea {
	return OutputArea{Top: max(top, 0), Right: max(right, 0), Bottom: 1, Left: 1}
}

// Center is the middle cell, never below (1,1)
func (a OutputArea) Center() vmath.Coord {
	return vmath.C(max(a.Right/2, 1), max(a.Top/2, 1))
}

// Contains reports whether c lies inside the area
func (a OutputArea) Contains(c vmath.Coord) bool {
	return c.Column >= a.Left && c.Column <= a.Right && c.Row >= a.Bottom && c.Row <= a.Top
}

func (a OutputArea) Width() int  { return max(a.Right-a.Left+1, 0) }
func (a OutputArea) Height() int { return max(a.Top-a.Bottom+1, 0) }
