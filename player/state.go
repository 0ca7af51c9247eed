package player

import "hungrytiger.com/server/engine"

// Animator parameter names.
const (
	ParamWalking = "IsWalking"
	ParamRunning = "IsRunning"
	ParamIdling  = "IsIdling"
	ParamHitting = "IsHitting"
)

// Mode is the locomotion state of a frame.
type Mode int

const (
	Idle Mode = iota
	Walk
	Run
)

func (m Mode) String() string {
	switch m {
	case Walk:
		return "Walk"
	case Run:
		return "Run"
	default:
		return "Idle"
	}
}

// Multiplier is the factor applied to the walk speed.
func (m Mode) Multiplier() float32 {
	switch m {
	case Walk:
		return 1
	case Run:
		return 2
	default:
		return 0
	}
}

// ModeFor derives the locomotion mode from the input axes and the run key.
func ModeFor(horizontal, vertical float32, run bool) Mode {
	if horizontal == 0 && vertical == 0 {
		return Idle
	}
	if run {
		return Run
	}
	return Walk
}

// SpeedMultiplier is ModeFor(...).Multiplier().
func SpeedMultiplier(horizontal, vertical float32, run bool) float32 {
	return ModeFor(horizontal, vertical, run).Multiplier()
}

// Flags are the animator booleans of one frame.
type Flags struct {
	Walking bool
	Running bool
	Idling  bool
	Hitting bool
}

// FlagsFor returns the flags for a mode with the hitting overlay on top.
func FlagsFor(m Mode, hitting bool) Flags {
	return Flags{
		Walking: m == Walk,
		Running: m == Run,
		Idling:  m == Idle,
		Hitting: hitting,
	}
}

// Apply writes every flag to a.
func (f Flags) Apply(a engine.Animator) {
	a.SetBool(ParamWalking, f.Walking)
	a.SetBool(ParamRunning, f.Running)
	a.SetBool(ParamIdling, f.Idling)
	a.SetBool(ParamHitting, f.Hitting)
}
