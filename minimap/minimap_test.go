package minimap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungrytiger.com/server/engine"
)

func TestFollowerTracksTargetWithOffset(t *testing.T) {
	offsets := []mgl32.Vec3{{}, {0, 20, 0}, {-3, 5.5, 7}}
	targets := []mgl32.Vec3{{}, {1, 2, 3}, {-10, 0, 42}}

	for _, o := range offsets {
		for _, p := range targets {
			self := engine.NewTransform(mgl32.Vec3{9, 9, 9})
			f := NewFollower(self, engine.NewTransform(p), o)
			f.LateUpdate(0.016)
			assert.Equal(t, p.Add(o), self.Position)
		}
	}
}

func TestFollowerWithoutTarget(t *testing.T) {
	self := engine.NewTransform(mgl32.Vec3{4, 5, 6})
	f := NewFollower(self, nil, mgl32.Vec3{0, 10, 0})
	f.LateUpdate(0.016)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, self.Position)
}

func TestFollowerSetTarget(t *testing.T) {
	self := engine.NewTransform(mgl32.Vec3{})
	a := engine.NewTransform(mgl32.Vec3{1, 0, 0})
	b := engine.NewTransform(mgl32.Vec3{0, 0, 1})
	f := NewFollower(self, a, mgl32.Vec3{0, 1, 0})

	f.LateUpdate(0.016)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, self.Position)

	f.SetTarget(b)
	assert.Same(t, b, f.Target())
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, self.Position, "takes effect on the next tick")
	f.LateUpdate(0.016)
	assert.Equal(t, mgl32.Vec3{0, 1, 1}, self.Position)

	f.SetTarget(nil)
	b.Position = mgl32.Vec3{5, 5, 5}
	f.LateUpdate(0.016)
	assert.Equal(t, mgl32.Vec3{0, 1, 1}, self.Position)
}

func TestTrackerKeepsOwnHeight(t *testing.T) {
	self := engine.NewTransform(mgl32.Vec3{0, 10, 0})
	target := engine.NewTransform(mgl32.Vec3{})
	tr, err := NewTracker(self, target)
	require.NoError(t, err)

	for _, p := range []mgl32.Vec3{{1, 2, 3}, {-4, -50, 8}, {0.5, 10, -0.5}} {
		target.Position = p
		tr.Update(0.016)
		assert.Equal(t, mgl32.Vec3{p[0], 10, p[2]}, self.Position)
	}
}

func TestTrackerNeedsTarget(t *testing.T) {
	_, err := NewTracker(engine.NewTransform(mgl32.Vec3{}), nil)
	assert.True(t, errors.Is(err, ErrNoTarget))
}
