package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeInput struct {
	x, y    int
	buttons map[MouseButton]bool
	pressed map[Key]bool
	closing bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{buttons: map[MouseButton]bool{}, pressed: map[Key]bool{}}
}

func (f *fakeInput) IsKeyJustPressed(key Key) bool                { return f.pressed[key] }
func (f *fakeInput) GetCursorPosition() (int, int)                { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(button MouseButton) bool { return f.buttons[button] }
func (f *fakeInput) IsWindowBeingClosed() bool                    { return f.closing }

func TestInputEventsFirstPollHasNoMotion(t *testing.T) {
	in := newFakeInput()
	in.x, in.y = 100, 200
	events := NewInputEvents(in)

	assert.Empty(t, events.Poll())
}

func TestInputEventsPointerMove(t *testing.T) {
	in := newFakeInput()
	events := NewInputEvents(in)
	events.Poll()

	in.x, in.y = 10, 20
	assert.Equal(t, []Event{PointerMoveEvent{X: 10, Y: 20, ButtonHeld: false}}, events.Poll())

	// No motion, no event
	assert.Empty(t, events.Poll())

	in.x = 11
	in.buttons[MouseButtonRight] = true
	assert.Equal(t, []Event{PointerMoveEvent{X: 11, Y: 20, ButtonHeld: true}}, events.Poll())
}

func TestInputEventsKeys(t *testing.T) {
	in := newFakeInput()
	events := NewInputEvents(in)
	events.Poll()

	in.pressed[KeyUp] = true
	in.pressed[KeyDown] = true
	assert.Equal(t, []Event{KeyDownEvent{Key: KeyUp}, KeyDownEvent{Key: KeyDown}}, events.Poll())
}

func TestInputEventsQuit(t *testing.T) {
	in := newFakeInput()
	events := NewInputEvents(in)

	in.closing = true
	assert.Equal(t, []Event{QuitEvent{}}, events.Poll())

	in.closing = false
	in.pressed[KeyEscape] = true
	assert.Equal(t, []Event{QuitEvent{}}, events.Poll())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Up", KeyUp.String())
	assert.Equal(t, "Down", KeyDown.String())
	assert.Equal(t, "Unknown", Key(99).String())
}
