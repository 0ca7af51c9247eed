package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Axis names a continuous input in [-1, 1].
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Key names a held key.
type Key int

const (
	KeyLeftShift Key = iota
	KeyEscape
	KeyLeftControl
)

var keyNames = map[Key]string{
	KeyLeftShift:   "left_shift",
	KeyEscape:      "escape",
	KeyLeftControl: "left_control",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText writes the key name, so config files can spell keys out.
func (k Key) MarshalText() ([]byte, error) {
	name, ok := keyNames[k]
	if !ok {
		return nil, errors.Errorf("engine: unknown key %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText parses a name written by MarshalText.
func (k *Key) UnmarshalText(text []byte) error {
	for key, name := range keyNames {
		if name == string(text) {
			*k = key
			return nil
		}
	}
	return errors.Errorf("engine: unknown key %q", text)
}

// Button names a virtual button sampled as pressed-this-frame.
type Button int

const (
	ButtonJump Button = iota
)

// MouseButton names a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Input is polled once per frame by behaviours.
type Input interface {
	Axis(a Axis) float32
	Held(k Key) bool
	// ButtonDown reports whether b went down during the current frame.
	ButtonDown(b Button) bool
	// MouseButtonDown reports whether m went down during the current frame.
	MouseButtonDown(m MouseButton) bool
}

// CursorLocker is implemented by inputs that can capture the cursor.
type CursorLocker interface {
	LockCursor()
}

// InputState is an Input fed by samples rather than devices. Presses stay
// visible until EndFrame, so a press is seen by exactly one frame.
type InputState struct {
	axes    [2]float32
	held    map[Key]bool
	buttons map[Button]bool
	mouse   map[MouseButton]bool
}

// NewInputState creates an idle input.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[Key]bool),
		buttons: make(map[Button]bool),
		mouse:   make(map[MouseButton]bool),
	}
}

// SetAxis stores an axis value clamped to [-1, 1].
func (s *InputState) SetAxis(a Axis, v float32) {
	if int(a) < 0 || int(a) >= len(s.axes) {
		return
	}
	s.axes[a] = mgl32.Clamp(v, -1, 1)
}

// SetHeld stores whether k is held.
func (s *InputState) SetHeld(k Key, held bool) {
	s.held[k] = held
}

// Press records a button press for the next frame.
func (s *InputState) Press(b Button) {
	s.buttons[b] = true
}

// Click records a mouse press for the next frame.
func (s *InputState) Click(m MouseButton) {
	s.mouse[m] = true
}

// EndFrame clears the presses seen by the frame that just ran.
func (s *InputState) EndFrame() {
	for b := range s.buttons {
		delete(s.buttons, b)
	}
	for m := range s.mouse {
		delete(s.mouse, m)
	}
}

// Axis returns the last stored value of a, 0 for unknown axes.
func (s *InputState) Axis(a Axis) float32 {
	if int(a) < 0 || int(a) >= len(s.axes) {
		return 0
	}
	return s.axes[a]
}

// Held reports the last SetHeld value of k.
func (s *InputState) Held(k Key) bool {
	return s.held[k]
}

// ButtonDown reports whether b was pressed since the last EndFrame.
func (s *InputState) ButtonDown(b Button) bool {
	return s.buttons[b]
}

// MouseButtonDown reports whether m was clicked since the last EndFrame.
func (s *InputState) MouseButtonDown(m MouseButton) bool {
	return s.mouse[m]
}
