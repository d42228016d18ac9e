package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/telemetry"
)

// signalProbe counts chunk streaming signals. It must run after the chunk
// tracker but before the manager drains the signal queue.
type signalProbe struct {
	collector *telemetry.Collector
}

func newSignalProbe(c *telemetry.Collector) *signalProbe {
	return &signalProbe{collector: c}
}

func (s *signalProbe) Initialize(w *ecs.World) {}

func (s *signalProbe) Update(w *ecs.World) {
	signals := ecs.GetResource[chunk.Signals](w)
	if signals == nil {
		return
	}
	for _, sig := range signals.Pending() {
		if sig.Force {
			s.collector.RecordForcedReload()
		} else {
			s.collector.RecordChunkCrossing()
		}
	}
}

func (s *signalProbe) Finalize(w *ecs.World) {}

// statsSystem samples per-tick player state at the end of the frame and
// flushes telemetry windows.
type statsSystem struct {
	game *Game
	tick int64

	prevGrounded bool
	hasPrev      bool
}

func newStatsSystem(g *Game) *statsSystem {
	return &statsSystem{game: g}
}

func (s *statsSystem) Initialize(w *ecs.World) {}

func (s *statsSystem) Update(w *ecs.World) {
	s.tick++
	g := s.game

	var posX, posY float64
	query := g.playerFilter.Query()
	if query.Next() {
		pos, vel, pl := query.Get()
		query.Close()

		posX = float64(pos.X)
		posY = float64(pos.Y)
		speed := math.Sqrt(float64(vel.X)*float64(vel.X) + float64(vel.Y)*float64(vel.Y))
		g.collector.RecordTick(speed, pl.OnGround)

		if s.hasPrev {
			if s.prevGrounded && !pl.OnGround && vel.Y > 0 {
				g.collector.RecordJump()
			}
			if !s.prevGrounded && pl.OnGround {
				g.collector.RecordLanding()
			}
		}
		s.prevGrounded = pl.OnGround
		s.hasPrev = true
	}

	loaded, unloaded := g.manager.LastStreamCounts()
	g.collector.RecordChunksLoaded(loaded)
	g.collector.RecordChunksUnloaded(unloaded)

	if !g.collector.ShouldFlush(s.tick) {
		return
	}

	loadedCount := 0
	if index := ecs.GetResource[chunk.Index](w); index != nil {
		loadedCount = index.Count()
	}

	stats := g.collector.Flush(s.tick, posX, posY, loadedCount)
	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

func (s *statsSystem) Finalize(w *ecs.World) {}
