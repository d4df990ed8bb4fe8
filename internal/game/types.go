package game

import "chosenoffset.com/occlusion/internal/scene"

// HUD holds what the overlay shows about the last frame.
type HUD struct {
	Enabled bool
	Stats   scene.Stats
}
