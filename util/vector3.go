package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a vector with 3 coordinates
type Vector3 struct {
	X float32 `json:"x" yaml:"x" mapstructure:"x"`
	Y float32 `json:"y" yaml:"y" mapstructure:"y"`
	Z float32 `json:"z" yaml:"z" mapstructure:"z"`
}

// FromVec3 converts a math vector into its wire form.
func FromVec3(v mgl32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts the wire vector back into a math vector.
func (v Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// EulerFromQuat returns the orientation as pitch (X), yaw (Y) and roll (Z)
// in degrees, with yaw measured around the vertical axis.
func EulerFromQuat(q mgl32.Quat) Vector3 {
	x, y, z, w := float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W)

	sinp := 2 * (w*x - y*z)
	var pitch float64
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw := math.Atan2(2*(w*y+x*z), 1-2*(x*x+y*y))
	roll := math.Atan2(2*(w*z+x*y), 1-2*(x*x+z*z))

	return Vector3{
		X: mgl32.RadToDeg(float32(pitch)),
		Y: mgl32.RadToDeg(float32(yaw)),
		Z: mgl32.RadToDeg(float32(roll)),
	}
}
