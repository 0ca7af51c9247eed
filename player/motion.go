package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"hungrytiger.com/server/engine"
)

// minLength is the magnitude at or below which a vector has no direction.
const minLength = 1e-5

// normalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= minLength {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

func flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	return normalizeOrZero(v)
}

// CameraDirection maps the input axes onto the horizontal basis of a camera.
// The result is a unit vector, or zero when the axes cancel out.
func CameraDirection(forward, right mgl32.Vec3, horizontal, vertical float32) mgl32.Vec3 {
	forward = flatten(forward)
	right = flatten(right)
	return normalizeOrZero(forward.Mul(vertical).Add(right.Mul(horizontal)))
}

// LookRotation returns the upright orientation whose forward axis points
// along the horizontal part of dir. A vertical or zero dir gives identity.
func LookRotation(dir mgl32.Vec3) mgl32.Quat {
	if math.Hypot(float64(dir[0]), float64(dir[2])) <= minLength {
		return mgl32.QuatIdent()
	}
	yaw := math.Atan2(float64(dir[0]), float64(dir[2]))
	return mgl32.QuatRotate(float32(yaw), engine.Up)
}

// Angle returns the angle in degrees between two orientations.
func Angle(a, b mgl32.Quat) float32 {
	dot := math.Abs(float64(a.Normalize().Dot(b.Normalize())))
	if dot >= 1-1e-6 {
		return 0
	}
	return mgl32.RadToDeg(float32(2 * math.Acos(dot)))
}

// RotateTowards turns from toward to by at most maxDegrees.
func RotateTowards(from, to mgl32.Quat, maxDegrees float32) mgl32.Quat {
	if maxDegrees <= 0 {
		return from
	}
	angle := Angle(from, to)
	if angle == 0 || maxDegrees >= angle {
		return to
	}
	// same hemisphere, so the slerp takes the short way round
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, maxDegrees/angle).Normalize()
}

// JumpVelocity is the launch speed that reaches height under gravity.
// Gravity must point down (negative); otherwise no jump is possible and 0 is
// returned.
func JumpVelocity(height, gravity float32) float32 {
	v := float64(height) * -2 * float64(gravity)
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(v))
}
