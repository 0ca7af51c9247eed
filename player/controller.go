// Package player drives a character from camera-relative input: walking,
// running, turning, gravity, jumping and the matching animator flags.
package player

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"hungrytiger.com/server/engine"
)

// ErrMissingDependency is returned by Start when the camera or the animator
// cannot be resolved. The controller then stays idle for good.
var ErrMissingDependency = errors.New("player: missing dependency")

// Config holds the movement tuning.
type Config struct {
	WalkSpeed float32 `yaml:"walk_speed"`
	// RotationSpeed is in degrees per second.
	RotationSpeed float32 `yaml:"rotation_speed"`
	Gravity       float32 `yaml:"gravity"`
	JumpHeight    float32 `yaml:"jump_height"`
	// GroundedVelocity replaces a negative vertical velocity while grounded
	// to keep the body pressed on the floor.
	GroundedVelocity float32 `yaml:"grounded_velocity"`
	// RunKey doubles the speed while held.
	RunKey engine.Key `yaml:"run_key"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:        8,
		RotationSpeed:    720,
		Gravity:          -9.81,
		JumpHeight:       1.5,
		GroundedVelocity: -2,
		RunKey:           engine.KeyLeftShift,
	}
}

// Deps are the engine collaborators of a controller.
type Deps struct {
	Transform *engine.Transform
	Mover     engine.Mover
	Input     engine.Input
	// Camera may be nil, MainCamera is then asked at Start.
	Camera     engine.Viewpoint
	MainCamera func() engine.Viewpoint
	Animator   engine.Animator
	Logger     *zap.Logger
}

// State is what the last frame computed.
type State struct {
	Mode             Mode
	Hitting          bool
	Grounded         bool
	VerticalVelocity float32
	Direction        mgl32.Vec3
}

// Controller moves its transform every frame.
type Controller struct {
	cfg Config

	transform  *engine.Transform
	mover      engine.Mover
	input      engine.Input
	camera     engine.Viewpoint
	mainCamera func() engine.Viewpoint
	animator   engine.Animator
	log        *zap.Logger

	started  bool
	velocity mgl32.Vec3
	state    State
}

// NewController creates a controller. The transform, mover and input are
// required.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	switch {
	case deps.Transform == nil:
		return nil, errors.Wrap(ErrMissingDependency, "transform")
	case isNil(deps.Mover):
		return nil, errors.Wrap(ErrMissingDependency, "mover")
	case isNil(deps.Input):
		return nil, errors.Wrap(ErrMissingDependency, "input")
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		cfg:        cfg,
		transform:  deps.Transform,
		mover:      deps.Mover,
		input:      deps.Input,
		mainCamera: deps.MainCamera,
		log:        log,
	}
	if !isNil(deps.Camera) {
		c.camera = deps.Camera
	}
	if !isNil(deps.Animator) {
		c.animator = deps.Animator
	}
	return c, nil
}

// isNil also catches interfaces holding a nil pointer or map, such as a
// camera object without a transform.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Start resolves the camera and checks the animator. Problems are logged
// once here; the controller then skips every frame.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}
	c.started = true

	if l, ok := c.input.(engine.CursorLocker); ok {
		l.LockCursor()
	}

	if c.camera == nil && c.mainCamera != nil {
		if cam := c.mainCamera(); !isNil(cam) {
			c.camera = cam
		}
	}

	var err error
	if c.camera == nil {
		c.log.Error("player camera not assigned and no main camera found in the scene")
		err = errors.Wrap(ErrMissingDependency, "camera")
	}
	if c.animator == nil {
		c.log.Error("animator not found on player")
		if err == nil {
			err = errors.Wrap(ErrMissingDependency, "animator")
		}
	}
	return err
}

// Enabled reports whether frames are processed.
func (c *Controller) Enabled() bool {
	return c.camera != nil && c.animator != nil
}

// RunKey returns the key that makes the controller run.
func (c *Controller) RunKey() engine.Key {
	return c.cfg.RunKey
}

// State returns what the last processed frame computed.
func (c *Controller) State() State {
	return c.state
}

// Update runs one frame.
func (c *Controller) Update(dt float32) {
	if !c.Enabled() {
		return
	}

	grounded := c.mover.IsGrounded()
	if grounded && c.velocity[1] < 0 {
		c.velocity[1] = c.cfg.GroundedVelocity
	}

	horizontal := c.input.Axis(engine.AxisHorizontal)
	vertical := c.input.Axis(engine.AxisVertical)
	mode := ModeFor(horizontal, vertical, c.input.Held(c.cfg.RunKey))

	var dir mgl32.Vec3
	if mode != Idle {
		dir = CameraDirection(c.camera.Forward(), c.camera.Right(), horizontal, vertical)
		moving := dir != (mgl32.Vec3{})
		if moving {
			c.mover.Move(dir.Mul(c.cfg.WalkSpeed * mode.Multiplier() * dt))
		}

		FlagsFor(mode, false).Apply(c.animator)

		if moving {
			c.transform.Rotation = RotateTowards(c.transform.Rotation, LookRotation(dir), c.cfg.RotationSpeed*dt)
		}
	} else {
		FlagsFor(Idle, false).Apply(c.animator)
	}

	if !grounded {
		c.velocity[1] += c.cfg.Gravity * dt
	} else if c.input.ButtonDown(engine.ButtonJump) {
		c.velocity[1] = JumpVelocity(c.cfg.JumpHeight, c.cfg.Gravity)
	}

	c.mover.Move(c.velocity.Mul(dt))

	// press-this-frame only, written over whatever the branches above set
	hitting := c.input.MouseButtonDown(engine.MouseLeft)
	c.animator.SetBool(ParamHitting, hitting)

	c.state = State{
		Mode:             mode,
		Hitting:          hitting,
		Grounded:         grounded,
		VerticalVelocity: c.velocity[1],
		Direction:        dir,
	}
}
