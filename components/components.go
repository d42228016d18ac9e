// Package components defines ECS components for the player and its sprite.
package components

import "github.com/mlange-42/ark/ecs"

// Vec2 is a 2D vector in world pixels. The world is Y-up: gravity pulls
// toward negative Y and ground contact normals point toward positive Y.
type Vec2 struct {
	X, Y float32
}

// Position is an entity's world position in pixels.
type Position struct {
	X float32 `inspect:"label,fmt:%.1f"`
	Y float32 `inspect:"label,fmt:%.1f"`
}

// Velocity is an entity's linear velocity in pixels per second.
type Velocity struct {
	X float32 `inspect:"label,fmt:%.1f"`
	Y float32 `inspect:"label,fmt:%.1f"`
}

// Player holds the controller state of the single player entity.
type Player struct {
	OnGround  bool `inspect:"bool"`
	Direction int8 `inspect:"label"` // -1 left, 0 neutral, +1 right
	Noclip    bool `inspect:"bool"`
}

// PlayerSprite is the cosmetic rotation state of the visible child sprite.
// The angle tumbles while airborne and settles to a right angle on landing.
type PlayerSprite struct {
	Angle float32 `inspect:"angle"`
}

// ChildOf links a cosmetic child entity to its parent.
type ChildOf struct {
	Parent ecs.Entity `inspect:"skip"`
}

// Sprite is a colored square for rendering. An alpha of zero makes it an
// invisible placeholder.
type Sprite struct {
	Size       float32 `inspect:"label,fmt:%.0f"`
	R, G, B, A uint8   `inspect:"skip"`
}

// Collider is a fixed axis-aligned box collision shape, as half-extents.
type Collider struct {
	HalfW float32 `inspect:"label,fmt:%.1f"`
	HalfH float32 `inspect:"label,fmt:%.1f"`
}

// ProbeHit is a single hit reported by a shape probe. NormalA is the surface
// normal on the probing shape, NormalB the normal on the hit tile.
type ProbeHit struct {
	Distance float32
	NormalA  Vec2
	NormalB  Vec2
}

// GroundProbe casts the entity's collider downward and records what it
// touches. Hits are rewritten by the physics solver every frame.
type GroundProbe struct {
	MaxDist float32    `inspect:"label,fmt:%.3f"`
	Hits    []ProbeHit `inspect:"skip"`
}
