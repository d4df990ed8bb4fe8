// Package interaction turns input events into changes to the emitter position
// and the ray count. It owns the emitter, the occluder and the ray set between
// frames; the renderer only reads them.
package interaction

import (
	"fmt"
	"log"

	"chosenoffset.com/occlusion/internal/core/rays"
	"chosenoffset.com/occlusion/internal/core/shadows"
	"chosenoffset.com/occlusion/internal/render"
)

// Controller applies input events to the scene state
type Controller struct {
	emitter  shadows.Circle
	occluder shadows.Circle
	rays     *rays.Set
	logger   *log.Logger
}

// NewController builds the initial ray set for the emitter. An error means the
// initial ray buffer could not be allocated.
func NewController(emitter, occluder shadows.Circle, limits rays.Limits, initial int, alloc rays.Allocator, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.Default()
	}

	set := rays.NewSet(limits, alloc)
	if err := set.Resize(initial, emitter); err != nil {
		return nil, fmt.Errorf("initial ray buffer: %w", err)
	}

	return &Controller{
		emitter:  emitter,
		occluder: occluder,
		rays:     set,
		logger:   logger,
	}, nil
}

// Emitter returns the current emitter circle.
func (c *Controller) Emitter() shadows.Circle {
	return c.emitter
}

// Occluder returns the fixed occluder circle.
func (c *Controller) Occluder() shadows.Circle {
	return c.occluder
}

// Rays returns the current ray set.
func (c *Controller) Rays() []rays.Ray {
	return c.rays.Rays()
}

// Count returns the current ray count.
func (c *Controller) Count() int {
	return c.rays.Count()
}

// Apply drains one frame's worth of events in order.
// It returns true once a quit event is seen; later events are not applied.
func (c *Controller) Apply(events []render.Event) bool {
	for _, ev := range events {
		if c.Handle(ev) {
			return true
		}
	}
	return false
}

// Handle applies a single event and reports whether it asks to quit.
func (c *Controller) Handle(ev render.Event) bool {
	switch e := ev.(type) {
	case render.QuitEvent:
		return true
	case render.PointerMoveEvent:
		if e.ButtonHeld {
			c.Drag(e.X, e.Y)
		}
	case render.KeyDownEvent:
		switch e.Key {
		case render.KeyUp:
			c.adjust(c.rays.Increase)
		case render.KeyDown:
			c.adjust(c.rays.Decrease)
		}
	}
	return false
}

// Drag moves the emitter to the pointer, keeping it tangent to the occluder
// rather than overlapping it, then regenerates the rays.
func (c *Controller) Drag(x, y float64) {
	minDist := c.occluder.R + c.emitter.R
	c.emitter.Center = shadows.ClampOutside(shadows.Point{X: x, Y: y}, c.occluder.Center, minDist)
	c.rays.Regenerate(c.emitter)
}

// adjust runs a count change; failures leave the previous rays in place.
func (c *Controller) adjust(change func(shadows.Circle) (bool, error)) {
	changed, err := change(c.emitter)
	if err != nil {
		c.logger.Printf("Error: could not resize ray buffer, keeping %d rays: %v", c.rays.Count(), err)
		return
	}
	if changed {
		c.logger.Printf("Rays rendering: %d", c.rays.Count())
	}
}
