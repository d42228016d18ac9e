package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

// Grounded derives the player's on-ground flag from the downward shape
// probe: any hit whose surface normal has a positive vertical component on
// either side of the contact counts as ground.
type Grounded struct {
	filter *ecs.Filter2[components.GroundProbe, components.Player]
}

// NewGrounded creates the ground detection system.
func NewGrounded(world *ecs.World) *Grounded {
	return &Grounded{
		filter: ecs.NewFilter2[components.GroundProbe, components.Player](world),
	}
}

// Initialize implements the app system interface.
func (s *Grounded) Initialize(w *ecs.World) {}

// Update refreshes the on-ground flag from the latest probe hits.
func (s *Grounded) Update(w *ecs.World) {
	if !insideLoadedChunk(w) {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		probe, pl := query.Get()

		grounded := false
		for _, hit := range probe.Hits {
			if hit.NormalA.Y > 0 || hit.NormalB.Y > 0 {
				grounded = true
				break
			}
		}
		pl.OnGround = grounded
	}
}

// Finalize implements the app system interface.
func (s *Grounded) Finalize(w *ecs.World) {}
