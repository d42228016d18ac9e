// Package player implements the player controller: spawning, keyboard
// movement, gravity, ground detection, sprite rotation feedback, collision
// response, and chunk-boundary tracking.
//
// All per-frame systems are gated on the player's recorded chunk actually
// being loaded, and silently no-op while the player entity does not exist.
package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
)

// lerp blends a toward b by factor t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// insideLoadedChunk reports whether the player's recorded chunk is present
// in the streamed world. Player logic must not act on terrain that has not
// streamed in yet.
func insideLoadedChunk(w *ecs.World) bool {
	cur := ecs.GetResource[chunk.CurrentPosition](w)
	idx := ecs.GetResource[chunk.Index](w)
	if cur == nil || idx == nil {
		return false
	}
	return idx.Loaded(cur.Pos)
}
