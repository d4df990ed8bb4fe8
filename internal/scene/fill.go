package scene

import (
	"image/color"

	"chosenoffset.com/occlusion/internal/core/shadows"
	"chosenoffset.com/occlusion/internal/render"
)

// FillCircle paints every unit cell of the circle's bounding square whose
// sample point lies strictly inside the disc.
func (r *Renderer) FillCircle(dst render.Canvas, c shadows.Circle, clr color.RGBA) {
	FillCircle(dst, c, clr)
}

// FillCircle is the renderer-independent form of Renderer.FillCircle.
func FillCircle(dst render.Canvas, c shadows.Circle, clr color.RGBA) {
	for x := c.Center.X - c.R; x <= c.Center.X+c.R; x++ {
		for y := c.Center.Y - c.R; y <= c.Center.Y+c.R; y++ {
			if c.Contains(shadows.Point{X: x, Y: y}) {
				dst.FillRect(int(x), int(y), 1, 1, clr)
			}
		}
	}
}
