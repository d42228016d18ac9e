// Package physics provides a kinematic solver for box bodies against the
// streamed tile world: substepped integration, contact generation with
// per-point penetration depths, downward shape probes, and substep hooks
// for custom constraint resolution.
package physics

import "github.com/mlange-42/ark/ecs"

// TileIndex answers tile solidity queries. Tiles in unloaded chunks must
// report as not solid.
type TileIndex interface {
	SolidAt(tileX, tileY int) bool
}

// ContactPoint is a single point of contact between a body and a tile.
type ContactPoint struct {
	X, Y        float32
	Penetration float32
}

// ContactPair describes the active contact between one body and one tile
// during the current substep. The normal points from the tile toward the
// body, i.e. the direction that pushes the body out.
type ContactPair struct {
	Body             ecs.Entity
	TileX, TileY     int
	NormalX, NormalY float32
	Points           []ContactPoint
}

// Contacts is the world resource holding contact pairs generated during
// the current substep. It is rebuilt before each round of substep hooks.
type Contacts struct {
	Pairs []ContactPair
}

// Hook is a constraint callback invoked once per substep, after contact
// generation and before the next integration step.
type Hook func(w *ecs.World)
