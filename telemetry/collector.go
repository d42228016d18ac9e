package telemetry

import "math"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float32

	windowStartTick int64

	// Event counters for current window
	jumps          int
	landings       int
	groundedTicks  int
	ticks          int
	chunkCrossings int
	forcedReloads  int
	chunksLoaded   int
	chunksUnloaded int

	speedSamples []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Round, don't truncate: dt values like 1/60 make the quotient land
	// just under the whole number of ticks.
	ticksPerWindow := int64(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		speedSamples:        make([]float64, 0, ticksPerWindow),
	}
}

// RecordJump records a jump event.
func (c *Collector) RecordJump() {
	c.jumps++
}

// RecordLanding records an airborne-to-grounded transition.
func (c *Collector) RecordLanding() {
	c.landings++
}

// RecordChunkCrossing records the player crossing a chunk boundary.
func (c *Collector) RecordChunkCrossing() {
	c.chunkCrossings++
}

// RecordForcedReload records a forced whole-region reload.
func (c *Collector) RecordForcedReload() {
	c.forcedReloads++
}

// RecordChunksLoaded adds to the count of chunks spawned this window.
func (c *Collector) RecordChunksLoaded(n int) {
	c.chunksLoaded += n
}

// RecordChunksUnloaded adds to the count of chunks despawned this window.
func (c *Collector) RecordChunksUnloaded(n int) {
	c.chunksUnloaded += n
}

// RecordTick records per-tick player state: current speed and ground contact.
func (c *Collector) RecordTick(speed float64, grounded bool) {
	c.ticks++
	c.speedSamples = append(c.speedSamples, speed)
	if grounded {
		c.groundedTicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// posX, posY and loadedCount are sampled at the window end by the caller.
func (c *Collector) Flush(currentTick int64, posX, posY float64, loadedCount int) WindowStats {
	var groundedRatio float64
	if c.ticks > 0 {
		groundedRatio = float64(c.groundedTicks) / float64(c.ticks)
	}

	mean, std, p10, p50, p90 := ComputeSpeedStats(c.speedSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		PosX: posX,
		PosY: posY,

		Jumps:    c.jumps,
		Landings: c.landings,

		GroundedTicks: c.groundedTicks,
		GroundedRatio: groundedRatio,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,

		ChunkCrossings: c.chunkCrossings,
		ForcedReloads:  c.forcedReloads,
		ChunksLoaded:   c.chunksLoaded,
		ChunksUnloaded: c.chunksUnloaded,
		LoadedCount:    loadedCount,
	}

	c.windowStartTick = currentTick
	c.jumps = 0
	c.landings = 0
	c.groundedTicks = 0
	c.ticks = 0
	c.chunkCrossings = 0
	c.forcedReloads = 0
	c.chunksLoaded = 0
	c.chunksUnloaded = 0
	c.speedSamples = c.speedSamples[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
