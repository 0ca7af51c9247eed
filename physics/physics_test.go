package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"hungrytiger.com/server/engine"
	"hungrytiger.com/server/util"
)

// openLevel is a 5x5 floor with a wall column at x=3.
func openLevel() *Level {
	grid := make([][]int, 5)
	for x := range grid {
		grid[x] = make([]int, 5)
		for y := range grid[x] {
			if x == 3 {
				grid[x][y] = util.Wall
			}
		}
	}
	return NewLevel(grid, 1)
}

func TestLevelCells(t *testing.T) {
	l := openLevel()
	assert.Equal(t, mgl32.Vec3{2.5, 0, 1.5}, l.CellCenter(2, 1))

	x, y := l.Cell(mgl32.Vec3{2.7, 5, 1.2})
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	x, _ = l.Cell(mgl32.Vec3{-0.5, 0, 0})
	assert.Equal(t, -1, x)

	assert.True(t, l.IsWall(3, 0))
	assert.False(t, l.IsWall(2, 0))
	assert.False(t, l.IsWall(-1, 0))
	assert.False(t, l.IsWall(3, 9))

	assert.False(t, l.Overlaps(mgl32.Vec3{2.5, 0, 2.5}, 0.4))
	assert.True(t, l.Overlaps(mgl32.Vec3{2.7, 0, 2.5}, 0.4))
}

func TestMoveStopsAtWall(t *testing.T) {
	tr := engine.NewTransform(mgl32.Vec3{2.5, 0, 2.5})
	c := NewCharacterController(tr, openLevel(), 0.4)

	c.Move(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 2.5, tr.Position[0], 1e-5)

	c.Move(mgl32.Vec3{-1, 0, 0})
	assert.InDelta(t, 1.5, tr.Position[0], 1e-5)
}

func TestMoveSlidesAlongWall(t *testing.T) {
	tr := engine.NewTransform(mgl32.Vec3{2.5, 0, 1.5})
	c := NewCharacterController(tr, openLevel(), 0.4)

	c.Move(mgl32.Vec3{1, 0, 1})
	assert.InDelta(t, 2.5, tr.Position[0], 1e-5)
	assert.InDelta(t, 2.5, tr.Position[2], 1e-5)
}

func TestMoveDoesNotTunnel(t *testing.T) {
	tr := engine.NewTransform(mgl32.Vec3{2.5, 0, 2.5})
	c := NewCharacterController(tr, openLevel(), 0.4)

	c.Move(mgl32.Vec3{3, 0, 0})
	assert.Less(t, tr.Position[0], float32(3))
}

func TestGrounded(t *testing.T) {
	tr := engine.NewTransform(mgl32.Vec3{1.5, 0, 1.5})
	c := NewCharacterController(tr, openLevel(), 0.4)
	assert.False(t, c.IsGrounded())

	c.Move(mgl32.Vec3{0, -0.1, 0})
	assert.True(t, c.IsGrounded())
	assert.Zero(t, tr.Position[1])

	c.Move(mgl32.Vec3{0, 1, 0})
	assert.False(t, c.IsGrounded())
	assert.InDelta(t, 1, tr.Position[1], 1e-6)

	c.Move(mgl32.Vec3{0, -0.5, 0})
	assert.False(t, c.IsGrounded())

	c.Move(mgl32.Vec3{0, -2, 0})
	assert.True(t, c.IsGrounded())
	assert.Zero(t, tr.Position[1])
}
