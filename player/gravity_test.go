package player

import (
	"math"
	"testing"
)

func newTestGravity(s *testSetup) *Gravity {
	return NewGravity(s.world, GravityConfig{
		Accel:    testGravity,
		Terminal: testTerminal,
		DT:       testDT,
	})
}

func TestGravityAcceleratesDownward(t *testing.T) {
	s := newTestSetup()
	sys := newTestGravity(s)

	sys.Update(s.world)

	want := -testGravity * testDT
	if math.Abs(float64(s.vel().Y-want)) > 1e-3 {
		t.Errorf("expected vy %f after one frame, got %f", want, s.vel().Y)
	}
}

func TestGravityReachesTerminalVelocity(t *testing.T) {
	s := newTestSetup()
	sys := newTestGravity(s)

	step := testGravity * testDT
	for i := 0; i < 200; i++ {
		sys.Update(s.world)
		if s.vel().Y < -(testTerminal + step) {
			t.Fatalf("fall speed exceeded terminal by more than one step: %f", s.vel().Y)
		}
	}

	if s.vel().Y != -testTerminal {
		t.Errorf("expected settled fall speed %f, got %f", -testTerminal, s.vel().Y)
	}
}

func TestGravitySkippedOnGround(t *testing.T) {
	s := newTestSetup()
	sys := newTestGravity(s)

	s.player().OnGround = true
	sys.Update(s.world)

	if s.vel().Y != 0 {
		t.Errorf("grounded player must not accelerate, got vy=%f", s.vel().Y)
	}
}

func TestGravitySkippedInNoclip(t *testing.T) {
	s := newTestSetup()
	sys := newTestGravity(s)

	s.player().Noclip = true
	sys.Update(s.world)

	if s.vel().Y != 0 {
		t.Errorf("noclip player must not accelerate, got vy=%f", s.vel().Y)
	}
}

func TestGravityGatedOutsideLoadedChunk(t *testing.T) {
	s := newTestSetup()
	sys := newTestGravity(s)
	s.blockStreaming()

	sys.Update(s.world)

	if s.vel().Y != 0 {
		t.Errorf("expected no gravity outside loaded chunks, got vy=%f", s.vel().Y)
	}
}
