package vmath

// CoordsInRect returns count distinct coordinates sampled uniformly from the square
// spanning maxDistance cells around origin in each direction
// count is clamped to the number of cells so sampling always terminates
func CoordsInRect(origin Coord, maxDistance, count int, rng Rand) []Coord {
	if count <= 0 || maxDistance < 0 {
		return nil
	}
	span := 2*maxDistance + 1
	if capacity := span * span; count > capacity {
		count = capacity
	}

	left := origin.Column - maxDistance
	bottom := origin.Row - maxDistance
	seen := make(map[Coord]struct{}, count)
	coords := make([]Coord, 0, count)
	for len(coords) < count {
		c := Coord{Column: left + rng.Intn(span), Row: bottom + rng.Intn(span)}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		coords = append(coords, c)
	}
	return coords
}
