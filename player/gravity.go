package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

// GravityConfig holds gravity tuning.
type GravityConfig struct {
	Accel    float32 // downward acceleration, pixels/s^2
	Terminal float32 // maximum fall speed magnitude, pixels/s
	DT       float32 // seconds per tick
}

// Gravity accelerates the player downward while airborne, clamping to the
// terminal fall speed. Suspended entirely in noclip.
type Gravity struct {
	filter *ecs.Filter2[components.Velocity, components.Player]
	cfg    GravityConfig
}

// NewGravity creates the gravity system.
func NewGravity(world *ecs.World, cfg GravityConfig) *Gravity {
	return &Gravity{
		filter: ecs.NewFilter2[components.Velocity, components.Player](world),
		cfg:    cfg,
	}
}

// Initialize implements the app system interface.
func (s *Gravity) Initialize(w *ecs.World) {}

// Update applies one frame of gravity.
func (s *Gravity) Update(w *ecs.World) {
	if !insideLoadedChunk(w) {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		vel, pl := query.Get()

		if pl.Noclip || pl.OnGround {
			continue
		}

		if vel.Y > -s.cfg.Terminal {
			vel.Y -= s.cfg.Accel * s.cfg.DT
		} else if vel.Y < -s.cfg.Terminal {
			vel.Y = -s.cfg.Terminal
		}
	}
}

// Finalize implements the app system interface.
func (s *Gravity) Finalize(w *ecs.World) {}
