package engine

import "github.com/go-gl/mathgl/mgl32"

var (
	// Up is the world vertical axis.
	Up = mgl32.Vec3{0, 1, 0}

	forwardAxis = mgl32.Vec3{0, 0, 1}
	rightAxis   = mgl32.Vec3{1, 0, 0}
)

// Transform is the position and orientation of a scene object.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform creates an identity transform at pos.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{
		Position: pos,
		Rotation: mgl32.QuatIdent(),
	}
}

// Forward returns the world-space direction the transform faces (+Z).
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(forwardAxis)
}

// Right returns the world-space right direction (+X).
func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(rightAxis)
}
