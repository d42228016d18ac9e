package player

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

func setProbeHits(s *testSetup, hits []components.ProbeHit) {
	probeMap := ecs.NewMap1[components.GroundProbe](s.world)
	probeMap.Get(s.body).Hits = hits
}

func TestGroundedOnUpwardTileNormal(t *testing.T) {
	s := newTestSetup()
	sys := NewGrounded(s.world)

	setProbeHits(s, []components.ProbeHit{
		{Distance: 0.5, NormalA: components.Vec2{Y: -1}, NormalB: components.Vec2{Y: 1}},
	})
	sys.Update(s.world)

	if !s.player().OnGround {
		t.Error("expected grounded with an upward tile normal")
	}
}

func TestNotGroundedOnSideNormals(t *testing.T) {
	s := newTestSetup()
	sys := NewGrounded(s.world)

	setProbeHits(s, []components.ProbeHit{
		{NormalA: components.Vec2{X: 1}, NormalB: components.Vec2{X: -1}},
	})
	sys.Update(s.world)

	if s.player().OnGround {
		t.Error("side contact must not count as ground")
	}
}

func TestNotGroundedWithoutHits(t *testing.T) {
	s := newTestSetup()
	sys := NewGrounded(s.world)

	s.player().OnGround = true
	setProbeHits(s, nil)
	sys.Update(s.world)

	if s.player().OnGround {
		t.Error("expected on-ground flag cleared without probe hits")
	}
}

func TestGroundedOnAnyOfManyHits(t *testing.T) {
	s := newTestSetup()
	sys := NewGrounded(s.world)

	setProbeHits(s, []components.ProbeHit{
		{NormalA: components.Vec2{X: 1}, NormalB: components.Vec2{X: -1}},
		{NormalA: components.Vec2{Y: -1}, NormalB: components.Vec2{Y: 1}},
	})
	sys.Update(s.world)

	if !s.player().OnGround {
		t.Error("expected grounded when any hit reports ground")
	}
}
