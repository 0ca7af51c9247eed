package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"hungrytiger.com/server/engine"
)

// CharacterController is an upright body that slides along walls and rests
// on the floor.
type CharacterController struct {
	transform *engine.Transform
	level     *Level
	radius    float32
	grounded  bool
}

// NewCharacterController creates a body of the given radius moving transform.
func NewCharacterController(transform *engine.Transform, level *Level, radius float32) *CharacterController {
	return &CharacterController{transform: transform, level: level, radius: radius}
}

// IsGrounded reports whether the last Move touched the floor.
func (c *CharacterController) IsGrounded() bool {
	return c.grounded
}

// Move displaces the body by delta. Horizontal motion is resolved per axis
// in steps no longer than the radius, so a blocked axis does not stop the
// other one. Vertical motion stops at the floor.
func (c *CharacterController) Move(delta mgl32.Vec3) {
	pos := c.transform.Position

	horizontal := float32(math.Hypot(float64(delta[0]), float64(delta[2])))
	if horizontal > 0 {
		steps := 1
		if c.radius > 0 {
			steps = int(math.Ceil(float64(horizontal / c.radius)))
		}
		step := mgl32.Vec3{delta[0] / float32(steps), 0, delta[2] / float32(steps)}
		for i := 0; i < steps; i++ {
			for axis := 0; axis <= 2; axis += 2 {
				if step[axis] == 0 {
					continue
				}
				next := pos
				next[axis] += step[axis]
				if !c.level.Overlaps(next, c.radius) {
					pos = next
				}
			}
		}
	}

	c.grounded = false
	pos[1] += delta[1]
	if pos[1] <= 0 {
		pos[1] = 0
		c.grounded = delta[1] <= 0
	}

	c.transform.Position = pos
}
