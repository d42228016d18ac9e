package player

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
)

// SpawnConfig holds the parameters needed to create the player.
type SpawnConfig struct {
	X, Y          float32 // spawn position in world pixels
	Size          float32 // collider and sprite edge length
	ProbeDistance float32 // ground probe cast length
	TileSize      float32
	ChunkSize     int
}

// Spawn creates the player entity and its visible child sprite once, at
// startup, and forces a chunk reload so streaming state matches the fresh
// player.
type Spawn struct {
	bodyMap   *ecs.Map6[components.Position, components.Velocity, components.Player, components.Sprite, components.Collider, components.GroundProbe]
	spriteMap *ecs.Map4[components.Position, components.Sprite, components.PlayerSprite, components.ChildOf]
	cfg       SpawnConfig
}

// NewSpawn creates the spawn system and registers the CurrentPosition
// resource.
func NewSpawn(world *ecs.World, cfg SpawnConfig) *Spawn {
	s := &Spawn{
		bodyMap:   ecs.NewMap6[components.Position, components.Velocity, components.Player, components.Sprite, components.Collider, components.GroundProbe](world),
		spriteMap: ecs.NewMap4[components.Position, components.Sprite, components.PlayerSprite, components.ChildOf](world),
		cfg:       cfg,
	}
	ecs.AddResource(world, &chunk.CurrentPosition{})
	return s
}

// Initialize spawns the player.
func (s *Spawn) Initialize(w *ecs.World) {
	half := s.cfg.Size / 2

	pos := components.Position{X: s.cfg.X, Y: s.cfg.Y}
	vel := components.Velocity{}
	pl := components.Player{}
	// Invisible placeholder on the body; only the child sprite renders.
	placeholder := components.Sprite{Size: s.cfg.Size, R: 255, G: 255, B: 255, A: 0}
	col := components.Collider{HalfW: half, HalfH: half}
	probe := components.GroundProbe{MaxDist: s.cfg.ProbeDistance}

	body := s.bodyMap.NewEntity(&pos, &vel, &pl, &placeholder, &col, &probe)

	childPos := pos
	visible := components.Sprite{Size: s.cfg.Size, R: 230, G: 41, B: 55, A: 255}
	rot := components.PlayerSprite{}
	link := components.ChildOf{Parent: body}
	s.spriteMap.NewEntity(&childPos, &visible, &rot, &link)

	cur := ecs.GetResource[chunk.CurrentPosition](w)
	cur.Pos = chunk.PosOfPixel(pos.X, pos.Y, s.cfg.TileSize, s.cfg.ChunkSize)

	signals := ecs.GetResource[chunk.Signals](w)
	signals.Send(chunk.UnloadChunks{Force: true})

	slog.Info("player spawned",
		"x", pos.X, "y", pos.Y,
		"chunk_x", cur.Pos.X, "chunk_y", cur.Pos.Y,
	)
}

// Update implements the app system interface.
func (s *Spawn) Update(w *ecs.World) {}

// Finalize implements the app system interface.
func (s *Spawn) Finalize(w *ecs.World) {}
