package shadows

import "math"

// IntersectRay finds where a ray first meets a circle.
// Returns the smallest strictly positive distance t such that
// origin + t*dir lies on the circle, and false when the ray misses or the
// circle is entirely behind the origin.
func IntersectRay(origin, dir Point, c Circle) (float64, bool) {
	// Ray: P = origin + t * dir
	// Circle: |P - center|^2 = r^2
	// => a*t^2 + b*t + c = 0
	oc := origin.Vec().Sub(c.Center.Vec())
	d := dir.Vec()

	a := d.Dot(d)
	if a == 0 {
		// Degenerate direction never leaves the origin
		return 0, false
	}
	b := 2 * oc.Dot(d)
	k := oc.Dot(oc) - c.R*c.R

	discriminant := b*b - 4*a*k
	if discriminant < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// a > 0 so t1 <= t2; take the nearest root in front of the origin
	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}
