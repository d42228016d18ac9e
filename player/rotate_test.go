package player

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

const (
	testTumbleRate  float32 = 9.6
	testLandingLerp float32 = 0.25
)

func newTestRotate(s *testSetup) *Rotate {
	return NewRotate(s.world, RotateConfig{
		TumbleRate:  testTumbleRate,
		LandingLerp: testLandingLerp,
		DT:          testDT,
	})
}

func spriteState(s *testSetup) (*components.Position, *components.PlayerSprite) {
	filter := ecs.NewFilter2[components.Position, components.PlayerSprite](s.world)
	query := filter.Query()
	if !query.Next() {
		return nil, nil
	}
	pos, sprite := query.Get()
	query.Close()
	return pos, sprite
}

func TestTumbleOppositeToFacing(t *testing.T) {
	s := newTestSetup()
	sys := newTestRotate(s)

	s.player().OnGround = false
	s.player().Direction = 1
	sys.Update(s.world)

	_, sprite := spriteState(s)
	want := -testTumbleRate * testDT
	if math.Abs(float64(sprite.Angle-want)) > 1e-4 {
		t.Errorf("expected angle %f while moving right, got %f", want, sprite.Angle)
	}

	s.player().Direction = -1
	before := sprite.Angle
	sys.Update(s.world)
	if sprite.Angle <= before {
		t.Errorf("expected angle to increase while moving left, got %f -> %f", before, sprite.Angle)
	}
}

func TestNoTumbleWithoutFacing(t *testing.T) {
	s := newTestSetup()
	sys := newTestRotate(s)

	s.player().OnGround = false
	s.player().Direction = 0
	sys.Update(s.world)

	_, sprite := spriteState(s)
	if sprite.Angle != 0 {
		t.Errorf("expected no tumble with neutral facing, got %f", sprite.Angle)
	}
}

func TestLandingSettlesToRightAngle(t *testing.T) {
	s := newTestSetup()
	sys := newTestRotate(s)

	_, sprite := spriteState(s)
	sprite.Angle = 1.0
	s.player().OnGround = true

	sys.Update(s.world)
	halfPi := float32(math.Pi / 2)
	want := lerp(1.0, halfPi, testLandingLerp)
	if math.Abs(float64(sprite.Angle-want)) > 1e-4 {
		t.Errorf("expected one blend step toward %f, got %f", want, sprite.Angle)
	}

	for i := 0; i < 120; i++ {
		sys.Update(s.world)
	}
	if math.Abs(float64(sprite.Angle-halfPi)) > 1e-3 {
		t.Errorf("expected angle settled at %f, got %f", halfPi, sprite.Angle)
	}
}

func TestLandingPicksNearestRightAngle(t *testing.T) {
	s := newTestSetup()
	sys := newTestRotate(s)

	_, sprite := spriteState(s)
	sprite.Angle = -2.9 // closest right angle is -pi
	s.player().OnGround = true

	for i := 0; i < 120; i++ {
		sys.Update(s.world)
	}

	if math.Abs(float64(sprite.Angle)+math.Pi) > 1e-3 {
		t.Errorf("expected angle settled at -pi, got %f", sprite.Angle)
	}
}

func TestChildSpriteFollowsParent(t *testing.T) {
	s := newTestSetup()
	sys := newTestRotate(s)

	s.pos().X = 123
	s.pos().Y = 456
	sys.Update(s.world)

	pos, _ := spriteState(s)
	if pos.X != 123 || pos.Y != 456 {
		t.Errorf("expected child at (123, 456), got (%f, %f)", pos.X, pos.Y)
	}
}
