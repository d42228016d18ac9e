package player

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

func TestSpawnCreatesBodyAndSprite(t *testing.T) {
	s := newTestSetup()

	if s.pos().X != 16 || s.pos().Y != 50 {
		t.Errorf("expected spawn at (16, 50), got (%f, %f)", s.pos().X, s.pos().Y)
	}

	colMap := ecs.NewMap1[components.Collider](s.world)
	col := colMap.Get(s.body)
	if col == nil || col.HalfW != 14 || col.HalfH != 14 {
		t.Errorf("expected 28 px collider, got %+v", col)
	}

	probeMap := ecs.NewMap1[components.GroundProbe](s.world)
	probe := probeMap.Get(s.body)
	if probe == nil || probe.MaxDist != 0.625 {
		t.Errorf("expected probe distance 0.625, got %+v", probe)
	}

	// Body sprite is an invisible placeholder
	spriteMap := ecs.NewMap1[components.Sprite](s.world)
	if placeholder := spriteMap.Get(s.body); placeholder == nil || placeholder.A != 0 {
		t.Errorf("expected invisible placeholder on the body, got %+v", placeholder)
	}

	// Exactly one visible child sprite linked to the body
	childFilter := ecs.NewFilter3[components.Sprite, components.PlayerSprite, components.ChildOf](s.world)
	children := 0
	query := childFilter.Query()
	for query.Next() {
		sprite, rot, link := query.Get()
		children++
		if sprite.A == 0 {
			t.Error("child sprite must be visible")
		}
		if rot.Angle != 0 {
			t.Errorf("expected unrotated sprite at spawn, got %f", rot.Angle)
		}
		if link.Parent != s.body {
			t.Error("child sprite must link to the player body")
		}
	}
	if children != 1 {
		t.Errorf("expected exactly one child sprite, got %d", children)
	}
}

func TestSpawnChunkIsLoaded(t *testing.T) {
	s := newTestSetup()

	if !insideLoadedChunk(s.world) {
		t.Error("expected the spawn chunk loaded after streaming reconciled")
	}
}
