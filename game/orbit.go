package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"hungrytiger.com/server/engine"
)

// orbitCamera keeps a third person camera behind its target, looking down
// at a fixed pitch. The yaw is driven by the player.
type orbitCamera struct {
	transform *engine.Transform
	target    *engine.Transform
	distance  float32
	height    float32
	pitch     float32
	yaw       float32
}

func newOrbitCamera(transform, target *engine.Transform) *orbitCamera {
	o := &orbitCamera{
		transform: transform,
		target:    target,
		distance:  6,
		height:    3,
		pitch:     mgl32.DegToRad(20),
	}
	o.SetYaw(0)
	return o
}

// SetYaw turns the camera to yaw degrees around the vertical axis.
func (o *orbitCamera) SetYaw(deg float32) {
	o.yaw = mgl32.DegToRad(deg)
	o.transform.Rotation = mgl32.QuatRotate(o.yaw, engine.Up).Mul(mgl32.QuatRotate(o.pitch, mgl32.Vec3{1, 0, 0}))
}

// Yaw returns the camera yaw in degrees.
func (o *orbitCamera) Yaw() float32 {
	return mgl32.RadToDeg(o.yaw)
}

func (o *orbitCamera) LateUpdate(dt float32) {
	back := mgl32.QuatRotate(o.yaw, engine.Up).Rotate(mgl32.Vec3{0, 0, -o.distance})
	o.transform.Position = o.target.Position.Add(back).Add(mgl32.Vec3{0, o.height, 0})
}
