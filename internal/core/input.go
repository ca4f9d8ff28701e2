package core

// Key is a semantic key, abstracted from physical key codes so that the
// terminal and desktop front-ends can share one game.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow - move ship left
	KeyRight       // Right arrow - move ship right
	KeyFire        // Space - fire a bullet
	KeyQuit        // Q - leave the game immediately
	KeyConfirm     // Enter - press the Play button from the keyboard
	KeyPause       // P - pause/unpause a running round
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyQuit:
		return "Quit"
	case KeyConfirm:
		return "Confirm"
	case KeyPause:
		return "Pause"
	default:
		return "None"
	}
}

// InputKind classifies an input event.
type InputKind int

const (
	InputKeyDown InputKind = iota
	InputKeyUp
	InputPointerPress
	InputQuit // Window closed or session ended
)

// InputEvent is one device event collected by the platform between two ticks.
type InputEvent struct {
	Kind InputKind
	Key  Key // Set for key events
	X, Y int // Cell coordinates for pointer events
}

// KeyDown builds a key press event.
func KeyDown(k Key) InputEvent {
	return InputEvent{Kind: InputKeyDown, Key: k}
}

// KeyUp builds a key release event.
func KeyUp(k Key) InputEvent {
	return InputEvent{Kind: InputKeyUp, Key: k}
}

// PointerPress builds a pointer press event at cell (x, y).
func PointerPress(x, y int) InputEvent {
	return InputEvent{Kind: InputPointerPress, X: x, Y: y}
}

// QuitEvent builds a quit event.
func QuitEvent() InputEvent {
	return InputEvent{Kind: InputQuit}
}

// InputFrame holds the events polled for a single simulation tick, in the
// order they arrived.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 8)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Pressed returns true if the given key went down during this frame.
func (f InputFrame) Pressed(k Key) bool {
	for _, ev := range f.Events {
		if ev.Kind == InputKeyDown && ev.Key == k {
			return true
		}
	}
	return false
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]InputEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
