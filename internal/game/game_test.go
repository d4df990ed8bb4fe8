package game

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/occlusion/internal/config"
	"chosenoffset.com/occlusion/internal/core/rays"
	"chosenoffset.com/occlusion/internal/render"
)

// scriptedEvents hands out one batch of events per poll.
type scriptedEvents struct {
	batches [][]render.Event
}

func (s *scriptedEvents) Poll() []render.Event {
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

type fakeScreen struct {
	width, height int
	pix           []byte
}

func (f *fakeScreen) Size() (int, int) { return f.width, f.height }
func (f *fakeScreen) WritePixels(pix []byte) {
	f.pix = append(f.pix[:0], pix...)
}

type fakeRenderer struct {
	texts []string
}

func (f *fakeRenderer) DrawText(dst render.Image, text string, x, y int) {
	f.texts = append(f.texts, text)
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 300, 200
	cfg.Emitter = config.CircleConfig{X: 50, Y: 100, R: 20}
	cfg.Occluder = config.CircleConfig{X: 200, Y: 100, R: 30}
	cfg.Rays.Initial = 20
	return cfg
}

func newTestGame(t *testing.T, events render.EventSource, r render.Renderer) (*Game, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	g, err := New(smallConfig(), r, events, nil, log.New(&logs, "", 0))
	require.NoError(t, err)
	return g, &logs
}

func TestNewFailsWhenInitialBufferCannotBeAllocated(t *testing.T) {
	failing := func(int) ([]rays.Ray, error) { return nil, rays.ErrAllocation }

	_, err := New(smallConfig(), nil, nil, failing, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rays.ErrAllocation))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Occluder.R = 0

	_, err := New(cfg, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestNewHonoursByteBudget(t *testing.T) {
	cfg := smallConfig()
	cfg.Rays.MaxBytes = 1 // Too small for any ray

	_, err := New(cfg, nil, nil, nil, nil)
	assert.ErrorIs(t, err, rays.ErrAllocation)
}

func TestUpdateAppliesEventsAndQuits(t *testing.T) {
	events := &scriptedEvents{batches: [][]render.Event{
		{render.KeyDownEvent{Key: render.KeyUp}},
		{render.PointerMoveEvent{X: 60, Y: 40, ButtonHeld: true}},
		nil,
		{render.QuitEvent{}},
	}}
	g, logs := newTestGame(t, events, nil)

	require.NoError(t, g.Update())
	assert.Equal(t, 30, g.Controller.Count())
	assert.Contains(t, logs.String(), "Rays rendering: 30")

	require.NoError(t, g.Update())
	assert.Equal(t, 60.0, g.Controller.Emitter().Center.X)
	assert.Equal(t, 40.0, g.Controller.Emitter().Center.Y)

	require.NoError(t, g.Update())

	err := g.Update()
	assert.ErrorIs(t, err, render.ErrQuit)
}

func TestUpdateWithoutEventSource(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	assert.NoError(t, g.Update())
}

func TestDrawPresentsFrame(t *testing.T) {
	r := &fakeRenderer{}
	g, _ := newTestGame(t, nil, r)
	screen := &fakeScreen{width: 300, height: 200}

	g.Draw(screen)

	require.Len(t, screen.pix, 300*200*4)
	assert.Equal(t, g.Frame.Pixels(), screen.pix)
	assert.Equal(t, 20, g.HUD.Stats.Rays)
	assert.Equal(t, 1, g.FrameCount)
	require.Len(t, r.texts, 1)
	assert.Contains(t, r.texts[0], "Rays: 20")

	// Emitter center pixel is painted in the emitter color
	assert.Equal(t, g.Config.Palette.Emitter.ToRGBA(), g.Frame.At(50, 100))
}

func TestDrawScalesToScreen(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	screen := &fakeScreen{width: 600, height: 400}

	g.Draw(screen)
	assert.Len(t, screen.pix, 600*400*4)

	// Second frame reuses the staging buffer
	staging := g.staging
	g.Draw(screen)
	assert.Same(t, staging, g.staging)
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}
