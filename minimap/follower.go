// Package minimap keeps the minimap camera and icon over the tracked player.
package minimap

import (
	"github.com/go-gl/mathgl/mgl32"

	"hungrytiger.com/server/engine"
)

// Follower places its transform at a fixed offset from a target, after all
// other updates of the frame.
type Follower struct {
	transform *engine.Transform
	target    *engine.Transform
	offset    mgl32.Vec3
}

// NewFollower creates a follower moving transform. target may be nil.
func NewFollower(transform, target *engine.Transform, offset mgl32.Vec3) *Follower {
	return &Follower{transform: transform, target: target, offset: offset}
}

// SetTarget replaces the followed transform, nil to stop following.
func (f *Follower) SetTarget(target *engine.Transform) {
	f.target = target
}

// Target returns the followed transform.
func (f *Follower) Target() *engine.Transform {
	return f.target
}

// LateUpdate moves the follower next to its target. Without a target the
// follower stays where it is.
func (f *Follower) LateUpdate(dt float32) {
	if f.target == nil {
		return
	}
	f.transform.Position = f.target.Position.Add(f.offset)
}
