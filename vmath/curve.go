package vmath

// CurveSamples is the number of chords used to approximate quadratic Bezier length
// Precision does not adapt to curve size
const CurveSamples = 10

// CoordOnCurve returns the point at parameter t on the quadratic Bezier curve
// start -> control -> end
func CoordOnCurve(start, control, end Coord, t float64) Coord {
	u := 1 - t
	column := u*u*float64(start.Column) + 2*u*t*float64(control.Column) + t*t*float64(end.Column)
	row := u*u*float64(start.Row) + 2*u*t*float64(control.Row) + t*t*float64(end.Row)
	return Coord{Column: Round(column), Row: Round(row)}
}

// CurveLength approximates the Bezier arc length by summing CurveSamples chords
// between rounded sample points
func CurveLength(start, control, end Coord) float64 {
	length := 0.0
	prev := start
	for i := 1; i <= CurveSamples; i++ {
		next := CoordOnCurve(start, control, end, float64(i)/CurveSamples)
		length += Distance(prev, next)
		prev = next
	}
	return length
}
