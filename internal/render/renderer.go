package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the frame loop normally.
var ErrQuit = errors.New("quit requested")

// Canvas is a fixed-size pixel surface the scene is painted into.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// FillRect paints a w x h block with its top-left corner at (x, y).
	// Pixels outside the canvas are ignored.
	FillRect(x, y, w, h int, clr color.RGBA)

	// Clear paints the whole canvas with one color.
	Clear(clr color.RGBA)
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// scene logic.
type Renderer interface {
	// DrawText draws a line of debug text.
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable surface owned by the backend, such as the
// window's back buffer.
type Image interface {
	// Size returns the width and height of the image.
	Size() (width, height int)

	// WritePixels replaces the image contents with RGBA bytes
	// (4 bytes per pixel, row-major, len == 4*width*height).
	WritePixels(pix []byte)
}

// InputManager handles input from the user (keyboard, mouse, window).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsWindowBeingClosed() bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the visualizer listens to
const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEscape
)

// String returns a readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update applies input. It is called every tick; returning ErrQuit ends the loop.
	Update() error

	// Draw draws the frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetTPS sets how many times per second Update is called.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that returns nil once the game quits.
	RunGame(game Game) error
}
