package util

import (
	"math/rand"
)

// Tile values stored in a grid.
const (
	Floor = 0
	Wall  = 1
)

// maxIdlePasses is how many passes without a new passage are tolerated
// before the maze is considered complete.
const maxIdlePasses = 5

type mazeBuilder struct {
	grid         [][]int
	rng          *rand.Rand
	attemptsLeft int
	generating   bool
	exit         int
}

// MakeGrid creates a new sizeX by sizeY maze. The entrance is the middle of
// the first column and is closed once generation ends; a single exit is
// opened on the last column. A carve that never reaches the second to last
// column has no exit and is thrown away.
func MakeGrid(sizeX, sizeY int, rng *rand.Rand) [][]int {
	if sizeX < 3 || sizeY < 3 {
		return solidGrid(sizeX, sizeY)
	}

	for {
		b := &mazeBuilder{
			grid:         solidGrid(sizeX, sizeY),
			rng:          rng,
			attemptsLeft: maxIdlePasses,
			generating:   true,
			exit:         -1,
		}

		// create a starting point in the middle of first column to generate
		// from, with the spawn cell already carved so the maze grows from it
		b.grid[sizeX/2][0] = Floor
		b.grid[sizeX/2][1] = Floor

		for b.generating {
			b.generate()
		}

		if b.exit < 0 {
			continue
		}

		// close entrance
		b.grid[sizeX/2][0] = Wall
		return b.grid
	}
}

// Entrance returns the cell next to the closed entrance of a grid made by
// MakeGrid.
func Entrance(grid [][]int) (x, y int) {
	return len(grid) / 2, 1
}

func solidGrid(sizeX, sizeY int) [][]int {
	grid := make([][]int, sizeX)
	for i := range grid {
		grid[i] = make([]int, sizeY)
		for j := range grid[i] {
			grid[i][j] = Wall
		}
	}
	return grid
}

// generate runs one carving pass over the whole grid
func (b *mazeBuilder) generate() {
	pCount := 0

	for x := 0; x < len(b.grid); x++ {
		for y := 0; y < len(b.grid[0]); y++ {
			if b.getTile(x, y) == Floor {
				pCount += b.makePassage(x, y, -1, 0)
				pCount += b.makePassage(x, y, 1, 0)
				pCount += b.makePassage(x, y, 0, -1)
				pCount += b.makePassage(x, y, 0, 1)
			}
		}
	}

	if pCount > 0 {
		return
	}

	b.attemptsLeft--
	if b.attemptsLeft >= 0 {
		return
	}

	last := len(b.grid[0]) - 1
	possibleExits := []int{}
	for x := 0; x < len(b.grid); x++ {
		if b.getTile(x, last-1) == Floor {
			possibleExits = append(possibleExits, x)
		}
	}

	// create a random exit
	if len(possibleExits) > 0 {
		x := possibleExits[b.rng.Intn(len(possibleExits))]
		b.setTile(x, last, Floor)
		b.exit = x
	}

	b.generating = false
}

// makePassage checks around a coordinate if it's all walls
// and randomly creates a passage
func (b *mazeBuilder) makePassage(x, y, i, j int) int {
	if b.isWall(x+i, y+j) &&
		b.isWall(x+i+j, y+j+i) &&
		b.isWall(x+i-j, y+j-i) {
		if b.isWall(x+i+i, y+j+j) &&
			b.isWall(x+i+i+j, y+j+j+i) &&
			b.isWall(x+i+i-j, y+j+j-i) {
			if b.rng.Float32() > 0.5 {
				b.setTile(x+i, y+j, Floor)
				return 1
			}
		}
	}
	return 0
}

func (b *mazeBuilder) isWall(x, y int) bool {
	return b.getTile(x, y) == Wall
}

func (b *mazeBuilder) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < len(b.grid) && y < len(b.grid[0])
}

// getTile gets the type of a tile in a x and y coordinate
func (b *mazeBuilder) getTile(x, y int) int {
	if b.inside(x, y) {
		return b.grid[x][y]
	}
	return Floor
}

// setTile sets the type of a tile of a x and y coordinate
func (b *mazeBuilder) setTile(x, y int, tile int) {
	if b.inside(x, y) {
		b.grid[x][y] = tile
	}
}
