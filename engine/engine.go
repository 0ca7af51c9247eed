// Package engine holds the primitives behaviours are written against: scene
// transforms, the physics mover, input polling, cameras and animators.
package engine

import "github.com/go-gl/mathgl/mgl32"

// Mover moves a body by a delta, resolving collisions on the way.
type Mover interface {
	Move(delta mgl32.Vec3)
	// IsGrounded reports whether the last Move ended touching the ground.
	IsGrounded() bool
}

// Viewpoint exposes the world-space basis of a camera.
type Viewpoint interface {
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
}

// Animator accepts named boolean parameter writes.
type Animator interface {
	SetBool(name string, value bool)
}

// Behaviour is per-frame logic attached to a scene object. It implements
// at least one of Updater, LateUpdater or Starter.
type Behaviour interface{}

// Updater runs once per frame.
type Updater interface {
	Update(dt float32)
}

// LateUpdater is implemented by behaviours that must run after every
// Update of the frame.
type LateUpdater interface {
	LateUpdate(dt float32)
}

// Starter is implemented by behaviours that resolve their dependencies once
// before the first frame.
type Starter interface {
	Start() error
}

// Params is an in-memory Animator.
type Params map[string]bool

// SetBool stores the parameter. Writes to a nil Params are dropped.
func (p Params) SetBool(name string, value bool) {
	if p == nil {
		return
	}
	p[name] = value
}

// Bool returns the parameter, false when it was never set.
func (p Params) Bool(name string) bool {
	return p[name]
}
