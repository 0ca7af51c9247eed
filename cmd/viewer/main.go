// Command viewer plays a session locally with a top-down view and a minimap.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"hungrytiger.com/server/config"
	"hungrytiger.com/server/engine"
	"hungrytiger.com/server/game"
	"hungrytiger.com/server/logger"
	"hungrytiger.com/server/physics"
	ebitenrender "hungrytiger.com/server/render/ebiten"
	"hungrytiger.com/server/util"
)

const (
	screenWidth  = 960
	screenHeight = 720
	// pixels per world unit in the main view
	scale = 20
	// pixels per world unit in the minimap
	minimapScale  = 6
	minimapRadius = 80
	// degrees per pixel of mouse motion
	mouseSensitivity = 0.25
)

var (
	wallColor   = color.RGBA{0x40, 0x40, 0x48, 0xff}
	floorColor  = color.RGBA{0x9a, 0x8a, 0x6a, 0xff}
	playerColor = color.RGBA{0xf0, 0x80, 0x20, 0xff}
	iconColor   = color.RGBA{0xff, 0xff, 0x40, 0xff}
)

var configPath = flag.String("config", "", "path to a YAML config file")

type Viewer struct {
	session *game.Session
	input   engine.Input
	yaw     float32
	lastX   int
	dt      float32
	minimap *ebiten.Image
}

func (v *Viewer) Update() error {
	if v.input.Held(engine.KeyEscape) {
		return ebiten.Termination
	}

	x, _ := ebiten.CursorPosition()
	v.yaw += float32(x-v.lastX) * mouseSensitivity
	v.lastX = x
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		v.yaw -= 90 * v.dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		v.yaw += 90 * v.dt
	}
	v.session.SetCameraYaw(v.yaw)

	v.session.Step(v.dt)
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	level := v.session.Level()
	sc := v.session.Scene()
	playerPos := sc.Find(game.PlayerObject).Transform.Position

	// main view centred on the player, world X right and Z up the screen
	ox := float32(screenWidth)/2 - playerPos[0]*scale
	oy := float32(screenHeight)/2 + playerPos[2]*scale
	drawLevel(screen, level, ox, oy, scale)

	t := sc.Find(game.PlayerObject).Transform
	px, py := ox+t.Position[0]*scale, oy-t.Position[2]*scale
	vector.DrawFilledCircle(screen, px, py, 0.4*scale, playerColor, true)
	f := t.Forward()
	vector.StrokeLine(screen, px, py, px+f[0]*scale, py-f[2]*scale, 2, color.White, true)

	v.drawMinimap(screen)

	st := v.session.Controller().State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  grounded=%v  vy=%.2f  yaw=%.0f\nWASD move, shift run, space jump, click hit, Q/E or mouse turn, esc quit",
		v.session.Animation(), st.Grounded, st.VerticalVelocity, v.yaw))
}

// drawMinimap draws the level around the minimap camera in the top right
// corner, with the icon on top.
func (v *Viewer) drawMinimap(screen *ebiten.Image) {
	sc := v.session.Scene()
	cam := sc.Find(game.MinimapCameraObject).Transform.Position
	icon := sc.Find(game.MinimapIconObject).Transform.Position

	size := minimapRadius * 2
	if v.minimap == nil {
		v.minimap = ebiten.NewImage(size, size)
	}
	mm := v.minimap
	mm.Fill(color.Black)

	ox := float32(minimapRadius) - cam[0]*minimapScale
	oy := float32(minimapRadius) + cam[2]*minimapScale
	drawLevel(mm, v.session.Level(), ox, oy, minimapScale)
	vector.DrawFilledCircle(mm, ox+icon[0]*minimapScale, oy-icon[2]*minimapScale, 3, iconColor, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screenWidth-size-10), 10)
	screen.DrawImage(mm, op)
}

func drawLevel(dst *ebiten.Image, level *physics.Level, ox, oy, s float32) {
	cell := level.CellSize * s
	for x := range level.Grid {
		for y := range level.Grid[x] {
			clr := floorColor
			if level.Grid[x][y] == util.Wall {
				clr = wallColor
			}
			sx := ox + float32(x)*cell
			sy := oy - float32(y+1)*cell
			vector.DrawFilledRect(dst, sx, sy, cell, cell, clr, false)
		}
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}
	cfg.Log.Format = "console"
	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer log.Sync()

	seed := cfg.Level.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	grid := util.MakeGrid(cfg.Level.Width, cfg.Level.Height, rand.New(rand.NewSource(seed)))
	level := physics.NewLevel(grid, cfg.Level.CellSize)

	input := ebitenrender.NewInput()
	session, err := game.NewSession(cfg, level, input, log)
	if err != nil {
		log.Fatal("start session", zap.Error(err))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Hungry Tiger")
	ebiten.SetTPS(60)

	x, _ := ebiten.CursorPosition()
	v := &Viewer{session: session, input: input, lastX: x, dt: 1.0 / 60}
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal("run", zap.Error(err))
	}
}
