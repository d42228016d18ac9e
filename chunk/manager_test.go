package chunk

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

func newTestManager() (*ecs.World, *Manager) {
	world := ecs.NewWorld()
	gen := NewGenerator(1)
	m := NewManager(&world, gen, 32, 2, 16)
	ecs.AddResource(&world, &CurrentPosition{})
	return &world, m
}

func TestManagerLoadsRegionOnForce(t *testing.T) {
	world, m := newTestManager()

	signals := ecs.GetResource[Signals](world)
	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	index := ecs.GetResource[Index](world)
	// (2*radius + 1)^2 chunks around the center
	if index.Count() != 25 {
		t.Errorf("expected 25 loaded chunks, got %d", index.Count())
	}
	if !index.Loaded(Pos{X: 0, Y: 0}) || !index.Loaded(Pos{X: 2, Y: -2}) {
		t.Error("expected chunks within the radius loaded")
	}
	if index.Loaded(Pos{X: 3, Y: 0}) {
		t.Error("chunk outside the radius must not load")
	}

	loaded, unloaded := m.LastStreamCounts()
	if loaded != 25 || unloaded != 0 {
		t.Errorf("expected stream counts 25/0, got %d/%d", loaded, unloaded)
	}
}

func TestManagerIdleWithoutSignals(t *testing.T) {
	world, m := newTestManager()

	m.Update(world)

	index := ecs.GetResource[Index](world)
	if index.Count() != 0 {
		t.Errorf("expected no chunks without a signal, got %d", index.Count())
	}
}

func TestManagerShiftsWindowOnCrossing(t *testing.T) {
	world, m := newTestManager()
	signals := ecs.GetResource[Signals](world)
	cur := ecs.GetResource[CurrentPosition](world)

	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	// Cross one chunk to the right
	cur.Pos = Pos{X: 1, Y: 0}
	signals.Send(UnloadChunks{Force: false})
	m.Update(world)

	index := ecs.GetResource[Index](world)
	if index.Count() != 25 {
		t.Errorf("expected window size preserved, got %d", index.Count())
	}
	if index.Loaded(Pos{X: -2, Y: 0}) {
		t.Error("trailing column must unload")
	}
	if !index.Loaded(Pos{X: 3, Y: 0}) {
		t.Error("leading column must load")
	}

	loaded, unloaded := m.LastStreamCounts()
	if loaded != 5 || unloaded != 5 {
		t.Errorf("expected stream counts 5/5, got %d/%d", loaded, unloaded)
	}
}

func TestManagerForceRegeneratesEverything(t *testing.T) {
	world, m := newTestManager()
	signals := ecs.GetResource[Signals](world)

	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	loaded, unloaded := m.LastStreamCounts()
	if loaded != 25 || unloaded != 25 {
		t.Errorf("expected full drop and reload, got %d/%d", loaded, unloaded)
	}
}

func TestManagerCoalescesSignals(t *testing.T) {
	world, m := newTestManager()
	signals := ecs.GetResource[Signals](world)

	signals.Send(UnloadChunks{Force: false})
	signals.Send(UnloadChunks{Force: true})
	signals.Send(UnloadChunks{Force: false})
	m.Update(world)

	loaded, _ := m.LastStreamCounts()
	if loaded != 25 {
		t.Errorf("expected one reconcile for queued signals, got %d loads", loaded)
	}
	if len(signals.Pending()) != 0 {
		t.Error("signals must be drained after an update")
	}
}

func TestSolidAtUnloadedIsAir(t *testing.T) {
	world, m := newTestManager()

	if m.SolidAt(0, -100) {
		t.Error("tiles in unloaded chunks must read as air")
	}

	signals := ecs.GetResource[Signals](world)
	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	// Deep below the surface inside the loaded region there is stone
	// unless a cave carved it; scan a column for at least one solid tile.
	solid := false
	for ty := -60; ty < 0; ty++ {
		if m.SolidAt(0, ty) {
			solid = true
			break
		}
	}
	if !solid {
		t.Error("expected solid terrain below the surface once loaded")
	}
}

func TestSolidAtMatchesGenerator(t *testing.T) {
	world, m := newTestManager()
	signals := ecs.GetResource[Signals](world)
	signals.Send(UnloadChunks{Force: true})
	m.Update(world)

	gen := NewGenerator(1)
	for _, tile := range []struct{ x, y int }{{0, 0}, {5, -3}, {-7, 2}, {31, -31}} {
		pos := PosOfTile(tile.x, tile.y, 32)
		c := gen.Generate(pos, 32)
		want := c.At(tile.x-pos.X*32, tile.y-pos.Y*32).Solid()
		if got := m.SolidAt(tile.x, tile.y); got != want {
			t.Errorf("SolidAt(%d, %d) = %v, want %v", tile.x, tile.y, got, want)
		}
	}
}
