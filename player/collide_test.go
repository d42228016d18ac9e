package player

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/physics"
)

func newTestCollisions(s *testSetup) (*CollisionSolver, *physics.Contacts) {
	contacts := &physics.Contacts{}
	ecs.AddResource(s.world, contacts)
	return NewCollisionSolver(s.world), contacts
}

func TestVerticalContactResolved(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)

	startY := s.pos().Y
	s.vel().Y = -100
	s.vel().X = 50

	contacts.Pairs = []physics.ContactPair{{
		Body:    s.body,
		NormalY: 1,
		Points:  []physics.ContactPoint{{Penetration: 2}},
	}}

	sys.Solve(s.world)

	if math.Abs(float64(s.pos().Y-(startY+2))) > 1e-4 {
		t.Errorf("expected pushed out by penetration, got y=%f", s.pos().Y)
	}
	if s.vel().Y != 0 {
		t.Errorf("expected vertical velocity zeroed, got %f", s.vel().Y)
	}
	if s.vel().X != 50 {
		t.Errorf("horizontal velocity must survive a vertical contact, got %f", s.vel().X)
	}
}

func TestHorizontalContactResolved(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)

	startX := s.pos().X
	s.vel().X = 80
	s.vel().Y = -30

	contacts.Pairs = []physics.ContactPair{{
		Body:    s.body,
		NormalX: -1,
		Points:  []physics.ContactPoint{{Penetration: 1.5}},
	}}

	sys.Solve(s.world)

	if math.Abs(float64(s.pos().X-(startX-1.5))) > 1e-4 {
		t.Errorf("expected pushed out along -x, got x=%f", s.pos().X)
	}
	if s.vel().X != 0 {
		t.Errorf("expected horizontal velocity zeroed, got %f", s.vel().X)
	}
	if s.vel().Y != -30 {
		t.Errorf("vertical velocity must survive a horizontal contact, got %f", s.vel().Y)
	}
}

func TestZeroPenetrationIgnored(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)

	startY := s.pos().Y
	s.vel().Y = -100

	contacts.Pairs = []physics.ContactPair{{
		Body:    s.body,
		NormalY: 1,
		Points:  []physics.ContactPoint{{Penetration: 0}},
	}}

	sys.Solve(s.world)

	if s.pos().Y != startY || s.vel().Y != -100 {
		t.Error("touching contact without penetration must not resolve")
	}
}

func TestNoclipSkipsCollisions(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)

	s.player().Noclip = true
	startY := s.pos().Y
	s.vel().Y = -100

	contacts.Pairs = []physics.ContactPair{{
		Body:    s.body,
		NormalY: 1,
		Points:  []physics.ContactPoint{{Penetration: 3}},
	}}

	sys.Solve(s.world)

	if s.pos().Y != startY || s.vel().Y != -100 {
		t.Error("noclip player must ignore contacts")
	}
}

func TestOtherBodiesContactsIgnored(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)

	startY := s.pos().Y

	contacts.Pairs = []physics.ContactPair{{
		Body:    ecs.Entity{}, // not the player
		NormalY: 1,
		Points:  []physics.ContactPoint{{Penetration: 3}},
	}}

	sys.Solve(s.world)

	if s.pos().Y != startY {
		t.Error("contacts of other bodies must not move the player")
	}
}

func TestCollisionsGatedOutsideLoadedChunk(t *testing.T) {
	s := newTestSetup()
	sys, contacts := newTestCollisions(s)
	s.blockStreaming()

	startY := s.pos().Y
	contacts.Pairs = []physics.ContactPair{{
		Body:    s.body,
		NormalY: 1,
		Points:  []physics.ContactPoint{{Penetration: 3}},
	}}

	sys.Solve(s.world)

	if s.pos().Y != startY {
		t.Error("expected no resolution outside loaded chunks")
	}
}
