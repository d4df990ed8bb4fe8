package game

import (
	"fmt"

	"chosenoffset.com/occlusion/internal/render"
	"chosenoffset.com/occlusion/internal/render/raster"
)

// Draw paints the frame into the framebuffer and presents it.
func (g *Game) Draw(screen render.Image) {
	g.HUD.Stats = g.Scene.Frame(g.Frame, g.Controller.Emitter(), g.Controller.Occluder(), g.Controller.Rays())
	g.present(screen)
	g.drawHUD(screen)
	g.FrameCount++
}

// present uploads the framebuffer, resampling when the screen size differs.
func (g *Game) present(screen render.Image) {
	w, h := screen.Size()
	fw, fh := g.Frame.Size()
	if w == fw && h == fh {
		screen.WritePixels(g.Frame.Pixels())
		return
	}

	if g.staging == nil || !sameSize(g.staging, w, h) {
		g.staging = raster.NewFramebuffer(w, h)
	}
	g.Frame.ScaleTo(g.staging.Image())
	screen.WritePixels(g.staging.Pixels())
}

func sameSize(fb *raster.Framebuffer, w, h int) bool {
	fw, fh := fb.Size()
	return fw == w && fh == h
}

func (g *Game) drawHUD(screen render.Image) {
	if !g.HUD.Enabled || g.Renderer == nil {
		return
	}
	stats := g.HUD.Stats
	text := fmt.Sprintf("Rays: %d (shadowed %d)\nUp/Down: rays  Drag: move emitter  Esc: quit",
		stats.Rays, stats.Shadowed)
	g.Renderer.DrawText(screen, text, 8, 8)
}
