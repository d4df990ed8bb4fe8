// Package config holds the immutable settings of the visualizer: canvas size,
// palette, circle placement and ray limits. Settings may be overridden from a
// JSON file; anything the file leaves out keeps its default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"chosenoffset.com/occlusion/internal/core/rays"
	"chosenoffset.com/occlusion/internal/core/shadows"
)

// Config holds every tunable of the visualizer
type Config struct {
	Window   WindowConfig `json:"window"`
	Emitter  CircleConfig `json:"emitter"`
	Occluder CircleConfig `json:"occluder"`
	Rays     RayConfig    `json:"rays"`
	Brush    BrushConfig  `json:"brush"`
	Palette  Palette      `json:"palette"`
}

// WindowConfig defines the canvas and frame pacing
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"` // Updates per second (100 = one frame every 10ms)
}

// CircleConfig places a circle on the canvas
type CircleConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Circle converts the config into a geometry circle.
func (c CircleConfig) Circle() shadows.Circle {
	return shadows.Circle{Center: shadows.Point{X: c.X, Y: c.Y}, R: c.R}
}

// RayConfig defines how many rays are cast and how far the count may move
type RayConfig struct {
	Initial  int   `json:"initial"`
	Min      int   `json:"min"`
	Max      int   `json:"max"`
	Step     int   `json:"step"`
	MaxBytes int64 `json:"max_bytes"` // Cap on ray buffer memory, 0 = unlimited
}

// Limits converts the config into ray set limits.
func (r RayConfig) Limits() rays.Limits {
	return rays.Limits{Min: r.Min, Max: r.Max, Step: r.Step, MaxBytes: r.MaxBytes}
}

// BrushConfig defines the square brush sizes in pixels
type BrushConfig struct {
	Lit    int `json:"lit"`
	Shadow int `json:"shadow"`
}

// Palette defines the colors used to paint the scene
type Palette struct {
	Background Color `json:"background"`
	Emitter    Color `json:"emitter"`
	Occluder   Color `json:"occluder"`
	Ray        Color `json:"ray"`
	Shadow     Color `json:"shadow"`
}

// Color is an opaque RGB color written as "RRGGBB" (optionally prefixed by '#') in JSON
type Color color.RGBA

// ToRGBA returns the color as a standard library color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// MarshalJSON encodes the color as a hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// UnmarshalJSON parses a hex string into the color.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "RRGGBB" or "#RRGGBB" into an opaque color
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// DefaultConfig returns the classic scene: a 1200x800 canvas with the emitter on
// the left and the occluder two thirds of the way across.
func DefaultConfig() *Config {
	const width, height = 1200, 800

	limits := rays.DefaultLimits()
	return &Config{
		Window: WindowConfig{
			Width:  width,
			Height: height,
			Title:  "Occlusion - drag to move, Up/Down to change rays",
			TPS:    100,
		},
		Emitter:  CircleConfig{X: 200, Y: height / 2, R: 60},
		Occluder: CircleConfig{X: (2 * width) / 3, Y: height / 2, R: 100},
		Rays: RayConfig{
			Initial: 300,
			Min:     limits.Min,
			Max:     limits.Max,
			Step:    limits.Step,
		},
		Brush: BrushConfig{Lit: 4, Shadow: 1},
		Palette: Palette{
			Background: Color{0, 0, 0, 255},
			Emitter:    Color{255, 255, 255, 255},
			Occluder:   Color{0xb1, 0x52, 0x4b, 255},
			Ray:        Color{255, 255, 0, 255},
			Shadow:     Color{0, 0, 0, 255}, // Shadows carve the background back out of the lit trace
		},
	}
}

// LoadConfig loads the config from a JSON file, falling back to defaults
// when the file does not exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the settings describe a drawable scene
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Window.TPS))
	}
	if err := c.Emitter.Circle().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("emitter: %w", err))
	}
	if err := c.Occluder.Circle().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("occluder: %w", err))
	}

	r := c.Rays
	if r.Min <= 0 || r.Max < r.Min {
		errs = append(errs, fmt.Errorf("ray limits must satisfy 0 < min <= max, got [%d, %d]", r.Min, r.Max))
	}
	if r.Step <= 0 {
		errs = append(errs, fmt.Errorf("ray step must be positive, got %d", r.Step))
	}
	if r.Initial < r.Min || r.Initial > r.Max {
		errs = append(errs, fmt.Errorf("initial ray count %d outside [%d, %d]", r.Initial, r.Min, r.Max))
	}
	if r.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("ray max_bytes must not be negative, got %d", r.MaxBytes))
	}

	if c.Brush.Lit <= 0 || c.Brush.Shadow <= 0 {
		errs = append(errs, fmt.Errorf("brush sizes must be positive, got lit=%d shadow=%d", c.Brush.Lit, c.Brush.Shadow))
	}

	return errors.Join(errs...)
}

// MaxRayLength is the screen diagonal, truncated to whole pixels. No ray is
// marched further than this.
func (c *Config) MaxRayLength() int {
	w, h := float64(c.Window.Width), float64(c.Window.Height)
	return int(math.Sqrt(w*w + h*h))
}
