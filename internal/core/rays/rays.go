// Package rays generates the ray field cast from the emitter circle and owns the
// resizable buffer the renderer reads each frame.
package rays

import (
	"math"

	"chosenoffset.com/occlusion/internal/core/shadows"
)

// Ray is a single ray cast from the emitter.
// Its direction is not stored: it is derived from the ray's index and the total
// count via shadows.Direction.
type Ray struct {
	Origin shadows.Point
}

// Generate returns count rays whose origins are evenly spaced on the emitter's
// circumference, starting at angle zero.
func Generate(emitter shadows.Circle, count int) []Ray {
	if count <= 0 {
		return nil
	}
	out := make([]Ray, count)
	Fill(out, emitter)
	return out
}

// Fill overwrites every ray in dst with an origin on the emitter, treating
// len(dst) as the ray count.
func Fill(dst []Ray, emitter shadows.Circle) {
	count := len(dst)
	for i := range dst {
		angle := (float64(i) / float64(count)) * 2 * math.Pi
		dst[i] = Ray{Origin: shadows.OnCircumference(emitter, angle)}
	}
}
