// Package ebiten polls keyboard and mouse through ebiten.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hungrytiger.com/server/engine"
)

// Input implements engine.Input with WASD or arrow axes, left shift to run,
// space to jump and the mouse buttons.
type Input struct{}

// NewInput creates an ebiten backed input.
func NewInput() *Input {
	return &Input{}
}

func axis(negative, positive []ebiten.Key) float32 {
	var v float32
	for _, k := range negative {
		if ebiten.IsKeyPressed(k) {
			v--
			break
		}
	}
	for _, k := range positive {
		if ebiten.IsKeyPressed(k) {
			v++
			break
		}
	}
	return v
}

// Axis reads WASD or the arrow keys as -1, 0 or 1.
func (i *Input) Axis(a engine.Axis) float32 {
	switch a {
	case engine.AxisHorizontal:
		return axis([]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight})
	case engine.AxisVertical:
		return axis([]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp})
	default:
		return 0
	}
}

// Held reports whether the key mapped to k is down.
func (i *Input) Held(k engine.Key) bool {
	switch k {
	case engine.KeyLeftShift:
		return ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	case engine.KeyEscape:
		return ebiten.IsKeyPressed(ebiten.KeyEscape)
	case engine.KeyLeftControl:
		return ebiten.IsKeyPressed(ebiten.KeyControlLeft)
	default:
		return false
	}
}

// ButtonDown reports whether space went down this tick.
func (i *Input) ButtonDown(b engine.Button) bool {
	switch b {
	case engine.ButtonJump:
		return inpututil.IsKeyJustPressed(ebiten.KeySpace)
	default:
		return false
	}
}

// MouseButtonDown reports whether m went down this tick.
func (i *Input) MouseButtonDown(m engine.MouseButton) bool {
	switch m {
	case engine.MouseLeft:
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	case engine.MouseRight:
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	default:
		return false
	}
}

// LockCursor captures the cursor in the window.
func (i *Input) LockCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}
