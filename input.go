package motionlab

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Control identifies a logical input. Codes follow DOM KeyboardEvent.code
// names so hosts can forward browser-style identifiers unchanged.
type Control uint8

const (
	ArrowLeft  Control = iota // move left
	ArrowRight                // move right
	ArrowUp                   // move up
	ArrowDown                 // move down

	controlCount
)

var controlCodes = [controlCount]string{
	ArrowLeft:  "ArrowLeft",
	ArrowRight: "ArrowRight",
	ArrowUp:    "ArrowUp",
	ArrowDown:  "ArrowDown",
}

// String returns the control's key code.
func (c Control) String() string {
	if c < controlCount {
		return controlCodes[c]
	}
	return "Unknown"
}

// ParseControl maps a key code to a Control.
func ParseControl(code string) (Control, bool) {
	for i, name := range controlCodes {
		if name == code {
			return Control(i), true
		}
	}
	return 0, false
}

// controlMask is a bitset of controls.
type controlMask uint32

func (m controlMask) has(c Control) bool { return m&(1<<c) != 0 }

// InputSnapshot is a point-in-time copy of held controls. It is a plain
// value; later key events do not affect a snapshot already taken.
type InputSnapshot struct {
	held controlMask
}

// Held reports whether c was held when the snapshot was taken.
func (s InputSnapshot) Held(c Control) bool {
	return s.held.has(c)
}

// Snapshot builds an InputSnapshot with the given controls held.
func Snapshot(held ...Control) InputSnapshot {
	var s InputSnapshot
	for _, c := range held {
		if c < controlCount {
			s.held |= 1 << c
		}
	}
	return s
}

// ControlEvent describes an accepted change of a control's held state.
type ControlEvent struct {
	Session string
	Control Control
	Pressed bool
}

// EventSink receives control events. Set one on a Session to mirror input
// into an external system such as an ECS world.
type EventSink interface {
	EmitControl(event ControlEvent)
}

// InputState maps a fixed set of recognized controls to a held flag. The
// recognized set is chosen at construction and never changes.
type InputState struct {
	recognized controlMask
	held       controlMask
}

// NewInputState creates an input state recognizing the given controls, all
// initially released.
func NewInputState(recognized ...Control) *InputState {
	s := &InputState{}
	for _, c := range recognized {
		if c < controlCount {
			s.recognized |= 1 << c
		}
	}
	return s
}

// Recognizes reports whether c is in the recognized set.
func (s *InputState) Recognizes(c Control) bool {
	return c < controlCount && s.recognized.has(c)
}

// SetPressed records a pressed/released event for a key code. Unknown codes
// and controls outside the recognized set are ignored. It reports whether
// the event was accepted.
func (s *InputState) SetPressed(code string, pressed bool) bool {
	c, ok := ParseControl(code)
	if !ok {
		return false
	}
	return s.Set(c, pressed)
}

// Set overwrites the held flag of c. Last write wins; nothing is queued.
func (s *InputState) Set(c Control, pressed bool) bool {
	if !s.Recognizes(c) {
		return false
	}
	if pressed {
		s.held |= 1 << c
	} else {
		s.held &^= 1 << c
	}
	return true
}

// Pressed reports whether c is currently held.
func (s *InputState) Pressed(c Control) bool {
	return s.held.has(c)
}

// Sample returns the current held state. It does not mutate anything.
func (s *InputState) Sample() InputSnapshot {
	return InputSnapshot{held: s.held}
}

// Release clears every held control.
func (s *InputState) Release() {
	s.held = 0
}

// --- Keyboard bindings ---

// KeyEvent is a key transition translated to a control code.
type KeyEvent struct {
	Code    string
	Pressed bool
}

// KeyBindings maps physical ebiten keys to key codes.
type KeyBindings map[ebiten.Key]string

// DefaultKeyBindings binds the arrow keys to their codes.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ebiten.KeyArrowLeft:  "ArrowLeft",
		ebiten.KeyArrowRight: "ArrowRight",
		ebiten.KeyArrowUp:    "ArrowUp",
		ebiten.KeyArrowDown:  "ArrowDown",
	}
}

// AppendKeyEvents appends this frame's key transitions for bound keys to dst.
// Must be called from ebiten's Update.
func (b KeyBindings) AppendKeyEvents(dst []KeyEvent) []KeyEvent {
	for key, code := range b {
		if inpututil.IsKeyJustPressed(key) {
			dst = append(dst, KeyEvent{Code: code, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			dst = append(dst, KeyEvent{Code: code, Pressed: false})
		}
	}
	return dst
}
