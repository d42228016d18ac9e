// Package telemetry tracks movement and chunk streaming health over time windows.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Player state at window end
	PosX float64 `csv:"pos_x"`
	PosY float64 `csv:"pos_y"`

	// Movement events during the window
	Jumps    int `csv:"jumps"`
	Landings int `csv:"landings"`

	GroundedTicks int     `csv:"grounded_ticks"`
	GroundedRatio float64 `csv:"grounded_ratio"`

	// Speed distribution (sampled every tick)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Chunk streaming
	ChunkCrossings int `csv:"chunk_crossings"`
	ForcedReloads  int `csv:"forced_reloads"`
	ChunksLoaded   int `csv:"chunks_loaded"`
	ChunksUnloaded int `csv:"chunks_unloaded"`
	LoadedCount    int `csv:"loaded_count"`
}

// ComputeSpeedStats calculates mean, standard deviation, and percentiles
// from per-tick speed samples. The input slice is sorted in place.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("pos_x", s.PosX),
		slog.Float64("pos_y", s.PosY),
		slog.Int("jumps", s.Jumps),
		slog.Int("landings", s.Landings),
		slog.Int("grounded_ticks", s.GroundedTicks),
		slog.Float64("grounded_ratio", s.GroundedRatio),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Int("chunk_crossings", s.ChunkCrossings),
		slog.Int("forced_reloads", s.ForcedReloads),
		slog.Int("chunks_loaded", s.ChunksLoaded),
		slog.Int("chunks_unloaded", s.ChunksUnloaded),
		slog.Int("loaded_count", s.LoadedCount),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"pos_x", s.PosX,
		"pos_y", s.PosY,
		"jumps", s.Jumps,
		"landings", s.Landings,
		"grounded_ticks", s.GroundedTicks,
		"grounded_ratio", s.GroundedRatio,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"chunk_crossings", s.ChunkCrossings,
		"forced_reloads", s.ForcedReloads,
		"chunks_loaded", s.ChunksLoaded,
		"chunks_unloaded", s.ChunksUnloaded,
		"loaded_count", s.LoadedCount,
	)
}
