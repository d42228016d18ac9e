package player

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

// RotateConfig holds sprite rotation tuning.
type RotateConfig struct {
	TumbleRate  float32 // airborne spin, rad/s
	LandingLerp float32 // per-frame blend toward the nearest right angle
	DT          float32
}

// Rotate spins the visible child sprite opposite to the facing direction
// while airborne, and settles it back to the nearest right angle once
// grounded. It also keeps the child sprite glued to its parent's position.
type Rotate struct {
	spriteFilter *ecs.Filter3[components.Position, components.PlayerSprite, components.ChildOf]
	playerMap    *ecs.Map1[components.Player]
	posMap       *ecs.Map1[components.Position]
	cfg          RotateConfig
}

// NewRotate creates the sprite rotation system.
func NewRotate(world *ecs.World, cfg RotateConfig) *Rotate {
	return &Rotate{
		spriteFilter: ecs.NewFilter3[components.Position, components.PlayerSprite, components.ChildOf](world),
		playerMap:    ecs.NewMap1[components.Player](world),
		posMap:       ecs.NewMap1[components.Position](world),
		cfg:          cfg,
	}
}

// Initialize implements the app system interface.
func (s *Rotate) Initialize(w *ecs.World) {}

// Update applies one frame of rotation feedback.
func (s *Rotate) Update(w *ecs.World) {
	if !insideLoadedChunk(w) {
		return
	}

	const halfPi = math.Pi / 2

	query := s.spriteFilter.Query()
	for query.Next() {
		pos, sprite, link := query.Get()

		pl := s.playerMap.Get(link.Parent)
		if pl == nil {
			continue
		}

		if !pl.OnGround {
			sprite.Angle -= s.cfg.TumbleRate * s.cfg.DT * float32(pl.Direction)
		} else {
			nearest := float32(math.Round(float64(sprite.Angle)/halfPi)) * halfPi
			sprite.Angle = lerp(sprite.Angle, nearest, s.cfg.LandingLerp)
		}

		if parentPos := s.posMap.Get(link.Parent); parentPos != nil {
			*pos = *parentPos
		}
	}
}

// Finalize implements the app system interface.
func (s *Rotate) Finalize(w *ecs.World) {}
