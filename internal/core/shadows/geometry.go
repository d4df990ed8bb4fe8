package shadows

import (
	"math"
)

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Vec().Sub(a.Vec()).Len()
}

// DistanceSquared avoids the square root for inside/outside tests
func DistanceSquared(a, b Point) float64 {
	d := b.Vec().Sub(a.Vec())
	return d.Dot(d)
}

// Direction returns the unit direction of ray index out of count rays spread
// evenly around a full turn. It is a pure function of its arguments; rays never
// store their direction.
func Direction(index, count int) Point {
	if count <= 0 {
		return Point{}
	}
	angle := (2 * math.Pi / float64(count)) * float64(index)
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// OnCircumference returns the point of c at the given angle (radians).
func OnCircumference(c Circle, angle float64) Point {
	return Point{
		X: c.Center.X + c.R*math.Cos(angle),
		Y: c.Center.Y + c.R*math.Sin(angle),
	}
}

// ClampOutside keeps candidate at least minDist away from anchor.
// When the candidate is closer, it is pushed out along the ray from anchor
// through candidate so that it sits exactly minDist away.
func ClampOutside(candidate, anchor Point, minDist float64) Point {
	offset := candidate.Vec().Sub(anchor.Vec())
	if offset.Len() >= minDist {
		return candidate
	}

	angle := math.Atan2(offset[1], offset[0])
	return OnCircumference(Circle{Center: anchor, R: minDist}, angle)
}
