package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
	"github.com/kunring/mijocraft/physics"
)

// CollisionSolver resolves the player's tile contacts manually: each
// penetrating contact point pushes the player out along the contact normal
// and kills the velocity component into the surface, so velocity cannot
// re-accumulate into terrain it just resolved against.
//
// It runs as a physics substep hook, not as a per-frame system.
type CollisionSolver struct {
	filter    *ecs.Filter2[components.Position, components.Velocity]
	playerMap *ecs.Map1[components.Player]
}

// NewCollisionSolver creates the substep collision pass.
func NewCollisionSolver(world *ecs.World) *CollisionSolver {
	return &CollisionSolver{
		filter: ecs.NewFilter2[components.Position, components.Velocity](world).
			With(ecs.C[components.Player]()),
		playerMap: ecs.NewMap1[components.Player](world),
	}
}

// Solve is the physics.Hook invoked once per substep.
func (s *CollisionSolver) Solve(w *ecs.World) {
	if !insideLoadedChunk(w) {
		return
	}

	contacts := ecs.GetResource[physics.Contacts](w)
	if contacts == nil || len(contacts.Pairs) == 0 {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		body := query.Entity()
		pos, vel := query.Get()

		pl := s.playerMap.Get(body)
		if pl == nil || pl.Noclip {
			continue
		}

		for _, pair := range contacts.Pairs {
			if pair.Body != body {
				continue
			}
			for _, pt := range pair.Points {
				if pt.Penetration <= 0 {
					continue
				}
				pos.X += pair.NormalX * pt.Penetration
				pos.Y += pair.NormalY * pt.Penetration
				if pair.NormalY != 0 {
					vel.Y = 0
				}
				if pair.NormalX != 0 {
					vel.X = 0
				}
			}
		}
	}
}
