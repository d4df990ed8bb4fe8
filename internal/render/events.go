package render

// Event is one input occurrence delivered to the frame loop.
type Event interface {
	isEvent()
}

// QuitEvent asks the frame loop to stop.
type QuitEvent struct{}

// PointerMoveEvent reports the pointer position after it moved.
type PointerMoveEvent struct {
	X, Y       float64
	ButtonHeld bool
}

// KeyDownEvent reports a key that was pressed this frame.
type KeyDownEvent struct {
	Key Key
}

func (QuitEvent) isEvent()        {}
func (PointerMoveEvent) isEvent() {}
func (KeyDownEvent) isEvent()     {}

// EventSource yields the events that arrived since the previous poll.
type EventSource interface {
	Poll() []Event
}

// InputEvents turns polled InputManager state into discrete events.
type InputEvents struct {
	input   InputManager
	lastX   int
	lastY   int
	started bool
}

// NewInputEvents creates an event source backed by an input manager.
func NewInputEvents(input InputManager) *InputEvents {
	return &InputEvents{input: input}
}

// Poll returns this frame's events: quit first, then pointer motion, then key presses.
func (e *InputEvents) Poll() []Event {
	var events []Event

	if e.input.IsWindowBeingClosed() || e.input.IsKeyJustPressed(KeyEscape) {
		events = append(events, QuitEvent{})
	}

	x, y := e.input.GetCursorPosition()
	if e.started && (x != e.lastX || y != e.lastY) {
		events = append(events, PointerMoveEvent{
			X:          float64(x),
			Y:          float64(y),
			ButtonHeld: e.anyButtonHeld(),
		})
	}
	e.lastX, e.lastY, e.started = x, y, true

	for _, key := range []Key{KeyUp, KeyDown} {
		if e.input.IsKeyJustPressed(key) {
			events = append(events, KeyDownEvent{Key: key})
		}
	}

	return events
}

func (e *InputEvents) anyButtonHeld() bool {
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if e.input.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}
