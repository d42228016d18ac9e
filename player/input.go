package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
	"github.com/kunring/mijocraft/input"
)

// InputConfig holds movement tuning for the input system.
type InputConfig struct {
	MoveSpeed    float32 // target horizontal speed, pixels/s
	JumpImpulse  float32 // vertical velocity set on jump, pixels/s
	VelocityLerp float32 // per-frame blend factor toward target velocity
}

// Input maps keyboard state to player velocity and state once per frame.
// Horizontal velocity is blended toward the target speed instead of set
// directly, which gives the movement its acceleration feel.
type Input struct {
	filter *ecs.Filter2[components.Velocity, components.Player]
	keys   input.Keyboard
	cfg    InputConfig
}

// NewInput creates the input system.
func NewInput(world *ecs.World, keys input.Keyboard, cfg InputConfig) *Input {
	return &Input{
		filter: ecs.NewFilter2[components.Velocity, components.Player](world),
		keys:   keys,
		cfg:    cfg,
	}
}

// Initialize implements the app system interface.
func (s *Input) Initialize(w *ecs.World) {}

// Update applies one frame of input.
func (s *Input) Update(w *ecs.World) {
	if !insideLoadedChunk(w) {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		vel, pl := query.Get()

		if s.keys.Pressed(input.ActionToggleNoclip) {
			pl.Noclip = !pl.Noclip
		}

		switch {
		case s.keys.Down(input.ActionLeft):
			vel.X = lerp(vel.X, -s.cfg.MoveSpeed, s.cfg.VelocityLerp)
			pl.Direction = -1
		case s.keys.Down(input.ActionRight):
			vel.X = lerp(vel.X, s.cfg.MoveSpeed, s.cfg.VelocityLerp)
			pl.Direction = 1
		default:
			vel.X = lerp(vel.X, 0, s.cfg.VelocityLerp)
			// Facing is retained while airborne.
			if pl.OnGround {
				pl.Direction = 0
			}
		}

		if s.keys.Down(input.ActionJump) && !pl.Noclip && pl.OnGround {
			vel.Y = s.cfg.JumpImpulse
		}

		// Noclip remaps vertical input to free movement, also interpolated.
		if pl.Noclip {
			switch {
			case s.keys.Down(input.ActionDown):
				vel.Y = lerp(vel.Y, -s.cfg.MoveSpeed, s.cfg.VelocityLerp)
			case s.keys.Down(input.ActionJump):
				vel.Y = lerp(vel.Y, s.cfg.MoveSpeed, s.cfg.VelocityLerp)
			default:
				vel.Y = lerp(vel.Y, 0, s.cfg.VelocityLerp)
			}
		}
	}
}

// Finalize implements the app system interface.
func (s *Input) Finalize(w *ecs.World) {}
