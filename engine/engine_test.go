package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, 0, got.Sub(want).Len(), 1e-5, "want %v, got %v", want, got)
}

func TestTransformBasis(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, tr.Position)
	assertNear(t, mgl32.Vec3{0, 0, 1}, tr.Forward())
	assertNear(t, mgl32.Vec3{1, 0, 0}, tr.Right())

	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), Up)
	assertNear(t, mgl32.Vec3{1, 0, 0}, tr.Forward())
	assertNear(t, mgl32.Vec3{0, 0, -1}, tr.Right())
}

func TestInputStatePressesLastOneFrame(t *testing.T) {
	in := NewInputState()
	assert.False(t, in.ButtonDown(ButtonJump))

	in.Press(ButtonJump)
	in.Click(MouseLeft)
	assert.True(t, in.ButtonDown(ButtonJump))
	assert.True(t, in.MouseButtonDown(MouseLeft))
	assert.False(t, in.MouseButtonDown(MouseRight))

	in.EndFrame()
	assert.False(t, in.ButtonDown(ButtonJump))
	assert.False(t, in.MouseButtonDown(MouseLeft))
}

func TestInputStateHeldAndAxes(t *testing.T) {
	in := NewInputState()
	in.SetHeld(KeyLeftShift, true)
	in.SetAxis(AxisHorizontal, 3)
	in.SetAxis(AxisVertical, -0.5)
	in.SetAxis(Axis(7), 1)

	in.EndFrame()
	assert.True(t, in.Held(KeyLeftShift))
	assert.Equal(t, float32(1), in.Axis(AxisHorizontal))
	assert.Equal(t, float32(-0.5), in.Axis(AxisVertical))
	assert.Zero(t, in.Axis(Axis(7)))
}

func TestParams(t *testing.T) {
	p := Params{}
	var a Animator = p
	a.SetBool("IsWalking", true)
	assert.True(t, p.Bool("IsWalking"))
	assert.False(t, p.Bool("IsRunning"))
}

func TestNilParamsDropsWrites(t *testing.T) {
	var p Params
	assert.NotPanics(t, func() { p.SetBool("IsWalking", true) })
	assert.False(t, p.Bool("IsWalking"))
}

func TestKeyText(t *testing.T) {
	var k Key
	require.NoError(t, k.UnmarshalText([]byte("left_control")))
	assert.Equal(t, KeyLeftControl, k)
	assert.Equal(t, "left_control", k.String())

	b, err := KeyEscape.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "escape", string(b))

	assert.Error(t, k.UnmarshalText([]byte("hyper")))
	_, err = Key(99).MarshalText()
	assert.Error(t, err)
}
