package vmath

import "math"

// RingDensity is the sample count per unit of radius used when building
// the candidate set for CoordsInCircle
const RingDensity = 7

// CoordsOnCircle returns count points evenly spaced around origin
// Terminal cells are roughly twice as tall as wide, so the horizontal offset
// from origin is doubled to keep the circle round on screen
func CoordsOnCircle(origin Coord, radius, count int) []Coord {
	if count <= 0 {
		return nil
	}
	points := make([]Coord, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		dx := float64(radius) * math.Cos(angle)
		dy := float64(radius) * math.Sin(angle)
		points = append(points, Coord{
			Column: Round(float64(origin.Column) + 2*dx),
			Row:    Round(float64(origin.Row) + dy),
		})
	}
	return points
}

// CoordsInCircle returns count points picked from the rings 1..radius around origin
// Each ring is sampled with RingDensity*radius points and deduplicated
// Points are drawn without replacement until the candidates run out, then with replacement
func CoordsInCircle(origin Coord, radius, count int, rng Rand) []Coord {
	if count <= 0 || radius <= 0 {
		return nil
	}

	seen := make(map[Coord]struct{})
	var candidates []Coord
	for r := 1; r <= radius; r++ {
		for _, c := range CoordsOnCircle(origin, r, RingDensity*radius) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	selected := make([]Coord, 0, count)
	pool := append([]Coord(nil), candidates...)
	for len(selected) < count {
		if len(pool) == 0 {
			selected = append(selected, candidates[rng.Intn(len(candidates))])
			continue
		}
		i := rng.Intn(len(pool))
		selected = append(selected, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return selected
}
