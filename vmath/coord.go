package vmath

import (
	"fmt"
	"math"
)

// Coord is a 1-based grid position, row 1 is the bottom row of the canvas
// Column <= 0 or Row <= 0 is outside the visible canvas
type Coord struct {
	Column int
	Row    int
}

// C is shorthand for Coord{Column: column, Row: row}
func C(column, row int) Coord {
	return Coord{Column: column, Row: row}
}

// OnCanvas reports whether both components are positive
func (c Coord) OnCanvas() bool {
	return c.Column > 0 && c.Row > 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Distance returns the Euclidean distance between two coordinates
func Distance(a, b Coord) float64 {
	return math.Hypot(float64(b.Column-a.Column), float64(b.Row-a.Row))
}

// PointAtDistance returns the coordinate reached after travelling distance along
// the segment origin->target whose full length is total
// Zero distance or zero total returns origin
func PointAtDistance(origin, target Coord, total, distance float64) Coord {
	if distance == 0 || total == 0 {
		return origin
	}
	t := distance / total
	return Lerp(origin, target, t)
}

// Lerp interpolates linearly between a and b with parameter t
func Lerp(a, b Coord, t float64) Coord {
	column := (1-t)*float64(a.Column) + t*float64(b.Column)
	row := (1-t)*float64(a.Row) + t*float64(b.Row)
	return Coord{Column: Round(column), Row: Round(row)}
}
