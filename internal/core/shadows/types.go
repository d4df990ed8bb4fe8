package shadows

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vec returns the point as a mathgl vector.
func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// PointFromVec converts a mathgl vector back into a Point.
func PointFromVec(v mgl64.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

// Along returns the point reached by travelling dist units from p along dir.
func (p Point) Along(dir Point, dist float64) Point {
	return PointFromVec(p.Vec().Add(dir.Vec().Mul(dist)))
}

// Circle is a disc in screen space. Both the emitter and the occluder are circles.
type Circle struct {
	Center Point
	R      float64
}

// Validate reports whether the circle has a usable radius.
func (c Circle) Validate() error {
	if c.R <= 0 {
		return fmt.Errorf("circle radius must be positive, got %g", c.R)
	}
	return nil
}

// Contains reports whether p lies strictly inside the disc.
// Points exactly on the boundary are outside.
func (c Circle) Contains(p Point) bool {
	return DistanceSquared(p, c.Center) < c.R*c.R
}
