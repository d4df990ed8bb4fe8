// Package scene paints the emitter, the occluder and every ray onto a canvas.
//
// Each ray is drawn in two phases. The lit phase marches from the ray origin
// to the first hit on the occluder (or to the screen diagonal) with a thick
// brush. When the ray was occluded, the shadow phase keeps marching past the
// hit with a thin brush in the shadow color, skipping points inside the
// occluder body so its fill is never overwritten.
package scene

import (
	"image/color"

	"chosenoffset.com/occlusion/internal/config"
	"chosenoffset.com/occlusion/internal/core/rays"
	"chosenoffset.com/occlusion/internal/core/shadows"
	"chosenoffset.com/occlusion/internal/render"
)

// Renderer draws frames with a fixed palette and canvas size.
type Renderer struct {
	width, height int
	maxLength     int
	litBrush      int
	shadowBrush   int

	background color.RGBA
	emitter    color.RGBA
	occluder   color.RGBA
	ray        color.RGBA
	shadow     color.RGBA
}

// NewRenderer creates a renderer from the configuration.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		maxLength:   cfg.MaxRayLength(),
		litBrush:    cfg.Brush.Lit,
		shadowBrush: cfg.Brush.Shadow,
		background:  cfg.Palette.Background.ToRGBA(),
		emitter:     cfg.Palette.Emitter.ToRGBA(),
		occluder:    cfg.Palette.Occluder.ToRGBA(),
		ray:         cfg.Palette.Ray.ToRGBA(),
		shadow:      cfg.Palette.Shadow.ToRGBA(),
	}
}

// MaxLength returns how far any ray is marched.
func (r *Renderer) MaxLength() int {
	return r.maxLength
}

// Stats summarises one frame
type Stats struct {
	Rays        int // Rays drawn
	Shadowed    int // Rays that hit the occluder and entered the shadow phase
	LitSteps    int // Brush stamps in lit phases
	ShadowSteps int // Brush stamps in shadow phases
}

// Frame draws a complete frame: background, both circles, then the rays.
func (r *Renderer) Frame(dst render.Canvas, emitter, occluder shadows.Circle, rs []rays.Ray) Stats {
	dst.Clear(r.background)
	r.FillCircle(dst, occluder, r.occluder)
	r.FillCircle(dst, emitter, r.emitter)
	return r.RenderRays(dst, rs, occluder)
}

// RenderRays draws every ray against the occluder. Ray directions are derived
// from each ray's index and len(rs).
func (r *Renderer) RenderRays(dst render.Canvas, rs []rays.Ray, occluder shadows.Circle) Stats {
	stats := Stats{Rays: len(rs)}

	for i, ray := range rs {
		dir := shadows.Direction(i, len(rs))
		trace := r.Trace(ray.Origin, dir, occluder)

		stats.LitSteps += r.drawLit(dst, ray.Origin, dir, trace)
		if trace.Occluded {
			stats.Shadowed++
			stats.ShadowSteps += r.drawShadow(dst, ray.Origin, dir, trace, occluder)
		}
	}

	return stats
}

// drawLit stamps the thick brush at every whole step before the hit.
// A point off the canvas is still stamped (and clipped) before the phase ends.
func (r *Renderer) drawLit(dst render.Canvas, origin, dir shadows.Point, trace Trace) int {
	half := r.litBrush / 2
	stamps := 0

	for step := 0; float64(step) < trace.HitDistance && step < r.maxLength; step++ {
		p := origin.Along(dir, float64(step))
		dst.FillRect(int(p.X-float64(half)), int(p.Y-float64(half)), r.litBrush, r.litBrush, r.ray)
		stamps++

		if r.offCanvas(p) {
			break
		}
	}

	return stamps
}

// drawShadow stamps the thin shadow brush from just past the hit to the
// screen diagonal, only where the point has left the occluder.
func (r *Renderer) drawShadow(dst render.Canvas, origin, dir shadows.Point, trace Trace, occluder shadows.Circle) int {
	half := r.shadowBrush / 2
	stamps := 0

	for step := int(trace.HitDistance + 1); step < r.maxLength; step++ {
		p := origin.Along(dir, float64(step))

		if shadows.Distance(p, occluder.Center) > occluder.R {
			dst.FillRect(int(p.X-float64(half)), int(p.Y-float64(half)), r.shadowBrush, r.shadowBrush, r.shadow)
			stamps++
		}

		if r.offCanvas(p) {
			break
		}
	}

	return stamps
}

func (r *Renderer) offCanvas(p shadows.Point) bool {
	return p.X < 0 || p.X > float64(r.width) || p.Y < 0 || p.Y > float64(r.height)
}
