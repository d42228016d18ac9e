package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
)

// ChunkTracker converts the player's position into chunk coordinates each
// frame and signals the streaming system whenever the player crosses a
// chunk boundary. Unlike the gated systems it always runs, so streaming
// can catch up even when the player's chunk has not loaded yet.
type ChunkTracker struct {
	filter    *ecs.Filter2[components.Position, components.Player]
	tileSize  float32
	chunkSize int
}

// NewChunkTracker creates the chunk tracking system.
func NewChunkTracker(world *ecs.World, tileSize float32, chunkSize int) *ChunkTracker {
	return &ChunkTracker{
		filter:    ecs.NewFilter2[components.Position, components.Player](world),
		tileSize:  tileSize,
		chunkSize: chunkSize,
	}
}

// Initialize implements the app system interface.
func (s *ChunkTracker) Initialize(w *ecs.World) {}

// Update records boundary crossings. A player that has not spawned yet is
// a routine condition and is skipped silently.
func (s *ChunkTracker) Update(w *ecs.World) {
	cur := ecs.GetResource[chunk.CurrentPosition](w)
	signals := ecs.GetResource[chunk.Signals](w)
	if cur == nil || signals == nil {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		pos, _ := query.Get()

		p := chunk.PosOfPixel(pos.X, pos.Y, s.tileSize, s.chunkSize)
		if p != cur.Pos {
			signals.Send(chunk.UnloadChunks{Force: false})
			cur.Pos = p
		}
	}
}

// Finalize implements the app system interface.
func (s *ChunkTracker) Finalize(w *ecs.World) {}
