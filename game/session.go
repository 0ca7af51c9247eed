// Package game assembles a playable scene around one player.
package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"hungrytiger.com/server/config"
	"hungrytiger.com/server/engine"
	"hungrytiger.com/server/entity"
	"hungrytiger.com/server/minimap"
	"hungrytiger.com/server/physics"
	"hungrytiger.com/server/player"
	"hungrytiger.com/server/scene"
	"hungrytiger.com/server/util"
)

// Object names inside a session scene.
const (
	PlayerObject        = "player"
	CameraObject        = "camera"
	MinimapCameraObject = "minimapCamera"
	MinimapIconObject   = "minimapIcon"
)

// Session is one player walking through a level.
type Session struct {
	scene      *scene.Scene
	input      engine.Input
	state      *engine.InputState
	level      *physics.Level
	body       *physics.CharacterController
	controller *player.Controller
	camera     *orbitCamera
	follower   *minimap.Follower
	animator   engine.Params
}

// NewSession builds the scene and starts it. With a nil input the session
// is driven through Input().
func NewSession(cfg config.Config, level *physics.Level, input engine.Input, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		scene:    scene.New(),
		level:    level,
		animator: engine.Params{},
	}
	if input == nil {
		s.state = engine.NewInputState()
		input = s.state
	}
	s.input = input

	spawn := level.CellCenter(util.Entrance(level.Grid))
	p := s.scene.Add(scene.NewObject(PlayerObject, spawn))
	cam := s.scene.Add(scene.NewObject(CameraObject, spawn))
	s.scene.SetMainCamera(cam)

	s.body = physics.NewCharacterController(p.Transform, level, cfg.Level.PlayerRadius)
	controller, err := player.NewController(cfg.Player, player.Deps{
		Transform:  p.Transform,
		Mover:      s.body,
		Input:      input,
		MainCamera: s.scene.MainCamera,
		Animator:   s.animator,
		Logger:     log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "player controller")
	}
	s.controller = controller
	p.Attach(controller)

	s.camera = newOrbitCamera(cam.Transform, p.Transform)
	cam.Attach(s.camera)

	mmCam := s.scene.Add(scene.NewObject(MinimapCameraObject, spawn))
	s.follower = minimap.NewFollower(mmCam.Transform, p.Transform, cfg.Minimap.Offset.Vec3())
	mmCam.Attach(s.follower)

	iconPos := spawn
	iconPos[1] = cfg.Minimap.IconHeight
	icon := s.scene.Add(scene.NewObject(MinimapIconObject, iconPos))
	tracker, err := minimap.NewTracker(icon.Transform, p.Transform)
	if err != nil {
		return nil, err
	}
	icon.Attach(tracker)

	if err := s.scene.Start(); err != nil {
		return nil, errors.Wrap(err, "start session")
	}
	return s, nil
}

// Input returns the sample-fed input, nil when the session polls a device.
func (s *Session) Input() *engine.InputState {
	return s.state
}

// SetCameraYaw turns the player camera, in degrees.
func (s *Session) SetCameraYaw(deg float32) {
	s.camera.SetYaw(deg)
}

// Step advances the session by dt seconds.
func (s *Session) Step(dt float32) {
	s.scene.Tick(dt)
	if s.state != nil {
		s.state.EndFrame()
	}
}

// Scene exposes the scene graph.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Level returns the level the session plays in.
func (s *Session) Level() *physics.Level {
	return s.level
}

// Controller returns the player controller.
func (s *Session) Controller() *player.Controller {
	return s.controller
}

// Follower returns the minimap camera follower.
func (s *Session) Follower() *minimap.Follower {
	return s.follower
}

// Animator returns the animator parameters of the player.
func (s *Session) Animator() engine.Params {
	return s.animator
}

// Animation names the clip matching the last frame.
func (s *Session) Animation() string {
	st := s.controller.State()
	if st.Hitting {
		return "Hit"
	}
	return st.Mode.String()
}

// Sync copies the session state into a broadcast snapshot.
func (s *Session) Sync(p *entity.Player) {
	t := s.scene.Find(PlayerObject).Transform
	p.Position = util.FromVec3(t.Position)
	p.Rotation = util.EulerFromQuat(t.Rotation)
	p.CurrentAnimation = s.Animation()
	p.Minimap = util.FromVec3(s.scene.Find(MinimapCameraObject).Transform.Position)
}
