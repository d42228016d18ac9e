package physics

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/components"
)

// Solver integrates kinematic bodies and generates tile contacts in
// fixed substeps. Registered hooks run every substep so constraint passes
// see fresh contact data at substep resolution.
type Solver struct {
	bodyFilter  *ecs.Filter3[components.Position, components.Velocity, components.Collider]
	probeFilter *ecs.Filter3[components.Position, components.Collider, components.GroundProbe]

	tiles    TileIndex
	tileSize float32
	substeps int
	dt       float32
	hooks    []Hook
}

// NewSolver creates the solver and registers the Contacts resource.
func NewSolver(world *ecs.World, tiles TileIndex, tileSize float32, substeps int, dt float32) *Solver {
	s := &Solver{
		bodyFilter:  ecs.NewFilter3[components.Position, components.Velocity, components.Collider](world),
		probeFilter: ecs.NewFilter3[components.Position, components.Collider, components.GroundProbe](world),
		tiles:       tiles,
		tileSize:    tileSize,
		substeps:    substeps,
		dt:          dt,
	}
	ecs.AddResource(world, &Contacts{})
	return s
}

// AddSubstepHook registers a constraint callback. Hooks run in
// registration order within each substep.
func (s *Solver) AddSubstepHook(h Hook) {
	s.hooks = append(s.hooks, h)
}

// Initialize implements the app system interface.
func (s *Solver) Initialize(w *ecs.World) {}

// Update runs all substeps for one tick, then refreshes ground probes.
func (s *Solver) Update(w *ecs.World) {
	contacts := ecs.GetResource[Contacts](w)
	subDT := s.dt / float32(s.substeps)

	for i := 0; i < s.substeps; i++ {
		s.integrate(subDT)
		s.collectContacts(contacts)
		for _, h := range s.hooks {
			h(w)
		}
	}

	s.updateProbes()
}

// Finalize implements the app system interface.
func (s *Solver) Finalize(w *ecs.World) {}

// integrate advances body positions by their velocity.
func (s *Solver) integrate(dt float32) {
	query := s.bodyFilter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}

// collectContacts rebuilds the Contacts resource for the current substep.
func (s *Solver) collectContacts(contacts *Contacts) {
	contacts.Pairs = contacts.Pairs[:0]

	query := s.bodyFilter.Query()
	for query.Next() {
		body := query.Entity()
		pos, _, col := query.Get()

		minTX := s.tileAt(pos.X - col.HalfW)
		maxTX := s.tileAt(pos.X + col.HalfW)
		minTY := s.tileAt(pos.Y - col.HalfH)
		maxTY := s.tileAt(pos.Y + col.HalfH)

		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				if !s.tiles.SolidAt(tx, ty) {
					continue
				}
				pair, ok := s.boxTileContact(body, pos, col, tx, ty)
				if ok {
					contacts.Pairs = append(contacts.Pairs, pair)
				}
			}
		}
	}
}

// boxTileContact computes the minimal-axis contact between a body box and
// one solid tile.
func (s *Solver) boxTileContact(body ecs.Entity, pos *components.Position, col *components.Collider, tx, ty int) (ContactPair, bool) {
	half := s.tileSize / 2
	tcx := (float32(tx) + 0.5) * s.tileSize
	tcy := (float32(ty) + 0.5) * s.tileSize

	dx := pos.X - tcx
	dy := pos.Y - tcy
	overlapX := (col.HalfW + half) - absf(dx)
	overlapY := (col.HalfH + half) - absf(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return ContactPair{}, false
	}

	pair := ContactPair{Body: body, TileX: tx, TileY: ty}
	var pen float32
	if overlapX < overlapY {
		pair.NormalX = signf(dx)
		pen = overlapX
	} else {
		pair.NormalY = signf(dy)
		pen = overlapY
	}

	// Contact point at the center of the overlap region.
	ox1 := maxf(pos.X-col.HalfW, float32(tx)*s.tileSize)
	ox2 := minf(pos.X+col.HalfW, float32(tx+1)*s.tileSize)
	oy1 := maxf(pos.Y-col.HalfH, float32(ty)*s.tileSize)
	oy2 := minf(pos.Y+col.HalfH, float32(ty+1)*s.tileSize)
	pair.Points = append(pair.Points, ContactPoint{
		X:           (ox1 + ox2) / 2,
		Y:           (oy1 + oy2) / 2,
		Penetration: pen,
	})

	return pair, true
}

// updateProbes casts each probe's box downward and rewrites its hits.
// The swept volume is the body box extended down by the probe distance;
// tiles beside the body produce side normals that do not count as ground.
func (s *Solver) updateProbes() {
	query := s.probeFilter.Query()
	for query.Next() {
		pos, col, probe := query.Get()
		probe.Hits = probe.Hits[:0]

		bottom := pos.Y - col.HalfH
		sweepCY := pos.Y - probe.MaxDist/2
		sweepHalfH := col.HalfH + probe.MaxDist/2

		minTX := s.tileAt(pos.X - col.HalfW)
		maxTX := s.tileAt(pos.X + col.HalfW)
		minTY := s.tileAt(bottom - probe.MaxDist)
		maxTY := s.tileAt(pos.Y + col.HalfH)

		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				if !s.tiles.SolidAt(tx, ty) {
					continue
				}

				half := s.tileSize / 2
				tcx := (float32(tx) + 0.5) * s.tileSize
				tcy := (float32(ty) + 0.5) * s.tileSize
				dx := pos.X - tcx
				dy := sweepCY - tcy
				overlapX := (col.HalfW + half) - absf(dx)
				overlapY := (sweepHalfH + half) - absf(dy)
				if overlapX <= 0 || overlapY <= 0 {
					continue
				}

				var nx, ny float32
				if overlapX < overlapY {
					nx = signf(dx)
				} else {
					ny = signf(dy)
				}

				tileTop := float32(ty+1) * s.tileSize
				dist := bottom - tileTop
				if dist < 0 {
					dist = 0
				}

				probe.Hits = append(probe.Hits, components.ProbeHit{
					Distance: dist,
					NormalA:  components.Vec2{X: -nx, Y: -ny},
					NormalB:  components.Vec2{X: nx, Y: ny},
				})
			}
		}
	}
}

// tileAt converts a world-pixel coordinate to a tile coordinate with floor
// semantics, so negative positions map to negative tiles.
func (s *Solver) tileAt(v float32) int {
	return int(math.Floor(float64(v / s.tileSize)))
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func signf(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
