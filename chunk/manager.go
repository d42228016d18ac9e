package chunk

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
)

// Index is the world resource mapping loaded chunk positions to their
// entities. It answers the "is this chunk actually present" question that
// gates all player logic.
type Index struct {
	byPos map[Pos]ecs.Entity
}

// Loaded reports whether the chunk at pos is currently loaded.
func (i *Index) Loaded(pos Pos) bool {
	_, ok := i.byPos[pos]
	return ok
}

// Count returns the number of loaded chunks.
func (i *Index) Count() int {
	return len(i.byPos)
}

// Manager streams chunks in and out around the player's current chunk.
// It reacts to UnloadChunks signals rather than polling every frame.
type Manager struct {
	world    *ecs.World
	chunkMap *ecs.Map1[Chunk]
	gen      *Generator
	index    *Index

	size     int
	radius   int
	tileSize float32

	lastLoaded   int
	lastUnloaded int
}

// NewManager creates the chunk manager and registers the Signals and Index
// resources on the world.
func NewManager(world *ecs.World, gen *Generator, size, radius int, tileSize float32) *Manager {
	m := &Manager{
		world:    world,
		chunkMap: ecs.NewMap1[Chunk](world),
		gen:      gen,
		index:    &Index{byPos: make(map[Pos]ecs.Entity)},
		size:     size,
		radius:   radius,
		tileSize: tileSize,
	}
	ecs.AddResource(world, &Signals{})
	ecs.AddResource(world, m.index)
	return m
}

// Initialize implements the app system interface.
func (m *Manager) Initialize(w *ecs.World) {}

// Update drains streaming signals and reconciles the loaded chunk set.
func (m *Manager) Update(w *ecs.World) {
	m.lastLoaded = 0
	m.lastUnloaded = 0

	signals := ecs.GetResource[Signals](w)
	sigs := signals.Drain()
	if len(sigs) == 0 {
		return
	}

	force := false
	for _, sig := range sigs {
		if sig.Force {
			force = true
		}
	}

	center := Pos{}
	if cur := ecs.GetResource[CurrentPosition](w); cur != nil {
		center = cur.Pos
	}

	unloaded := 0
	for pos, e := range m.index.byPos {
		if force || !m.inRange(pos, center) {
			m.world.RemoveEntity(e)
			delete(m.index.byPos, pos)
			unloaded++
		}
	}

	loaded := 0
	for x := center.X - m.radius; x <= center.X+m.radius; x++ {
		for y := center.Y - m.radius; y <= center.Y+m.radius; y++ {
			pos := Pos{X: x, Y: y}
			if _, ok := m.index.byPos[pos]; ok {
				continue
			}
			c := m.gen.Generate(pos, m.size)
			m.index.byPos[pos] = m.chunkMap.NewEntity(c)
			loaded++
		}
	}

	m.lastLoaded = loaded
	m.lastUnloaded = unloaded

	slog.Debug("chunk streaming",
		"center_x", center.X, "center_y", center.Y,
		"loaded", loaded, "unloaded", unloaded,
		"total", len(m.index.byPos), "forced", force,
	)
}

// Finalize implements the app system interface.
func (m *Manager) Finalize(w *ecs.World) {}

// LastStreamCounts returns how many chunks the most recent Update loaded
// and unloaded.
func (m *Manager) LastStreamCounts() (loaded, unloaded int) {
	return m.lastLoaded, m.lastUnloaded
}

func (m *Manager) inRange(pos, center Pos) bool {
	dx := pos.X - center.X
	dy := pos.Y - center.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= m.radius && dy <= m.radius
}

// SolidAt reports whether the tile at tile coordinates is solid. Tiles in
// unloaded chunks are treated as air, so nothing collides with terrain that
// has not streamed in.
func (m *Manager) SolidAt(tileX, tileY int) bool {
	pos := PosOfTile(tileX, tileY, m.size)
	e, ok := m.index.byPos[pos]
	if !ok {
		return false
	}
	c := m.chunkMap.Get(e)
	if c == nil {
		return false
	}
	lx := tileX - pos.X*m.size
	ly := tileY - pos.Y*m.size
	return c.At(lx, ly).Solid()
}
