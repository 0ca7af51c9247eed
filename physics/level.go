// Package physics moves bodies through a maze level.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"hungrytiger.com/server/util"
)

// Level is a flat floor at y=0 with wall cells standing on it. Cell (x, y)
// of the grid covers world X in [x, x+1)*CellSize and Z in [y, y+1)*CellSize.
type Level struct {
	Grid     [][]int
	CellSize float32
}

// NewLevel wraps a grid made by util.MakeGrid.
func NewLevel(grid [][]int, cellSize float32) *Level {
	return &Level{Grid: grid, CellSize: cellSize}
}

// CellCenter returns the floor point at the centre of a cell.
func (l *Level) CellCenter(x, y int) mgl32.Vec3 {
	return mgl32.Vec3{(float32(x) + 0.5) * l.CellSize, 0, (float32(y) + 0.5) * l.CellSize}
}

// Cell returns the grid cell holding a world point.
func (l *Level) Cell(p mgl32.Vec3) (x, y int) {
	return int(math.Floor(float64(p[0] / l.CellSize))), int(math.Floor(float64(p[2] / l.CellSize)))
}

// IsWall reports whether cell (x, y) is a wall. Cells outside the grid are
// open.
func (l *Level) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= len(l.Grid) || y >= len(l.Grid[x]) {
		return false
	}
	return l.Grid[x][y] == util.Wall
}

// Overlaps reports whether a square of half-size r centred on p touches a
// wall.
func (l *Level) Overlaps(p mgl32.Vec3, r float32) bool {
	minX, minY := l.Cell(mgl32.Vec3{p[0] - r, 0, p[2] - r})
	maxX, maxY := l.Cell(mgl32.Vec3{p[0] + r, 0, p[2] + r})
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if l.IsWall(x, y) {
				return true
			}
		}
	}
	return false
}
