package scene

import "chosenoffset.com/occlusion/internal/core/shadows"

// Trace is the marching plan for a single ray.
type Trace struct {
	// HitDistance is where the lit phase stops: the first hit on the occluder,
	// or the max ray length when the ray is not occluded within it.
	HitDistance float64
	// Occluded reports whether a shadow phase follows the lit phase.
	Occluded bool
}

// Trace computes where a ray leaving origin along dir stops being lit.
// Hits further away than the max ray length are treated as misses.
func (r *Renderer) Trace(origin, dir shadows.Point, occluder shadows.Circle) Trace {
	limit := float64(r.maxLength)

	t, ok := shadows.IntersectRay(origin, dir, occluder)
	if !ok || t >= limit {
		return Trace{HitDistance: limit}
	}
	return Trace{HitDistance: t, Occluded: true}
}
