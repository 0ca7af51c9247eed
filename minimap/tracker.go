package minimap

import (
	"github.com/pkg/errors"

	"hungrytiger.com/server/engine"
)

// ErrNoTarget is returned when a tracker is built without a target.
var ErrNoTarget = errors.New("minimap: tracker needs a target")

// Tracker copies the horizontal position of its target every frame and keeps
// its own height.
type Tracker struct {
	transform *engine.Transform
	target    *engine.Transform
}

// NewTracker creates a tracker moving transform over target.
func NewTracker(transform, target *engine.Transform) (*Tracker, error) {
	if transform == nil || target == nil {
		return nil, ErrNoTarget
	}
	return &Tracker{transform: transform, target: target}, nil
}

// Update moves over the target, keeping the current height.
func (t *Tracker) Update(dt float32) {
	pos := t.target.Position
	pos[1] = t.transform.Position[1]
	t.transform.Position = pos
}
