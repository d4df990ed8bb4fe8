package game

import (
	"fmt"
	"log"

	"chosenoffset.com/occlusion/internal/config"
	"chosenoffset.com/occlusion/internal/core/rays"
	"chosenoffset.com/occlusion/internal/interaction"
	"chosenoffset.com/occlusion/internal/render"
	"chosenoffset.com/occlusion/internal/render/raster"
	"chosenoffset.com/occlusion/internal/scene"
)

// Game holds all visualizer state and runs one frame per tick.
// Input is applied in Update and the scene is painted in Draw, so nothing the
// renderer reads changes while a frame is being drawn.
type Game struct {
	Config     *config.Config
	Controller *interaction.Controller
	Scene      *scene.Renderer
	Frame      *raster.Framebuffer
	Events     render.EventSource
	Renderer   render.Renderer
	HUD        HUD

	// staging is used when the screen is not the size of the frame
	staging *raster.Framebuffer

	// Debug
	FrameCount int
}

// New creates the game and allocates the initial ray buffer.
// A nil alloc uses the budget allocator from the config's ray limits.
func New(cfg *config.Config, r render.Renderer, events render.EventSource, alloc rays.Allocator, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	controller, err := interaction.NewController(
		cfg.Emitter.Circle(),
		cfg.Occluder.Circle(),
		cfg.Rays.Limits(),
		cfg.Rays.Initial,
		alloc,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &Game{
		Config:     cfg,
		Controller: controller,
		Scene:      scene.NewRenderer(cfg),
		Frame:      raster.NewFramebuffer(cfg.Window.Width, cfg.Window.Height),
		Events:     events,
		Renderer:   r,
		HUD:        HUD{Enabled: r != nil},
	}, nil
}

// Update drains this tick's input and applies it.
// It returns render.ErrQuit when the user asked to quit.
func (g *Game) Update() error {
	if g.Events == nil {
		return nil
	}
	if g.Controller.Apply(g.Events.Poll()) {
		return render.ErrQuit
	}
	return nil
}

// Layout returns the fixed canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}
