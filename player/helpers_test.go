package player

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
)

const (
	testTileSize  = 16
	testChunkSize = 32
	testDT        = 1.0 / 60.0

	testMoveSpeed   float32 = 160
	testJumpImpulse float32 = 256
	testLerp        float32 = 0.25

	testGravity  float32 = 1569.12
	testTerminal float32 = 530
)

// testSetup is a world with streaming infrastructure and a spawned player.
type testSetup struct {
	world   *ecs.World
	manager *chunk.Manager

	body   ecs.Entity
	posMap *ecs.Map1[components.Position]
	velMap *ecs.Map1[components.Velocity]
	plMap  *ecs.Map1[components.Player]
}

// newTestSetup builds the world, spawns the player at the default spawn
// point, and reconciles chunk streaming so the player's chunk is loaded.
func newTestSetup() *testSetup {
	world := ecs.NewWorld()
	gen := chunk.NewGenerator(1)
	manager := chunk.NewManager(&world, gen, testChunkSize, 2, testTileSize)

	spawn := NewSpawn(&world, SpawnConfig{
		X: 16, Y: 50,
		Size:          28,
		ProbeDistance: 0.625,
		TileSize:      testTileSize,
		ChunkSize:     testChunkSize,
	})
	spawn.Initialize(&world)
	manager.Update(&world)

	s := &testSetup{
		world:   &world,
		manager: manager,
		posMap:  ecs.NewMap1[components.Position](&world),
		velMap:  ecs.NewMap1[components.Velocity](&world),
		plMap:   ecs.NewMap1[components.Player](&world),
	}

	filter := ecs.NewFilter1[components.Player](&world)
	query := filter.Query()
	for query.Next() {
		s.body = query.Entity()
	}

	return s
}

func (s *testSetup) pos() *components.Position   { return s.posMap.Get(s.body) }
func (s *testSetup) vel() *components.Velocity   { return s.velMap.Get(s.body) }
func (s *testSetup) player() *components.Player  { return s.plMap.Get(s.body) }
func (s *testSetup) signals() *chunk.Signals     { return ecs.GetResource[chunk.Signals](s.world) }
func (s *testSetup) current() *chunk.CurrentPosition {
	return ecs.GetResource[chunk.CurrentPosition](s.world)
}

// blockStreaming points the recorded chunk at an unloaded position so the
// gated systems refuse to run.
func (s *testSetup) blockStreaming() {
	s.current().Pos = chunk.Pos{X: 999, Y: 999}
}
