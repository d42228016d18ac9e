// Package game wires the ECS systems, camera, renderer, and telemetry into
// a runnable application.
package game

import (
	"log/slog"

	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/camera"
	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
	"github.com/kunring/mijocraft/config"
	"github.com/kunring/mijocraft/input"
	"github.com/kunring/mijocraft/inspector"
	"github.com/kunring/mijocraft/physics"
	"github.com/kunring/mijocraft/player"
	"github.com/kunring/mijocraft/renderer"
	"github.com/kunring/mijocraft/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete application state.
type Game struct {
	app  *app.App
	cfg  *config.Config
	keys input.Keyboard

	manager *chunk.Manager

	playerFilter *ecs.Filter3[components.Position, components.Velocity, components.Player]

	camera    *camera.Camera
	renderer  *renderer.Renderer
	inspector *inspector.Inspector

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick     int64
	paused   bool
	headless bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates and initializes a game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	tool := app.New(256)
	tool.TPS = float64(cfg.Screen.TargetFPS)
	world := &tool.World

	var keys input.Keyboard
	if opts.Headless {
		keys = input.NewScripted()
	} else {
		keys = input.NewRaylibKeyboard()
	}

	g := &Game{
		app:          tool,
		cfg:          cfg,
		keys:         keys,
		headless:     opts.Headless,
		logStats:     opts.LogStats,
		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
		playerFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Player](world),
	}

	// Chunk streaming
	gen := chunk.NewGenerator(opts.Seed)
	g.manager = chunk.NewManager(world, gen, cfg.World.ChunkSize, cfg.World.LoadRadius, float32(cfg.World.TileSize))

	// Physics solver over the streamed tiles, with the player's manual
	// collision response hooked into each substep
	solver := physics.NewSolver(world, g.manager, float32(cfg.World.TileSize),
		cfg.Physics.Substeps, float32(cfg.Physics.DT))
	collisions := player.NewCollisionSolver(world)
	solver.AddSubstepHook(collisions.Solve)

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, float32(cfg.Physics.DT))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	// Player controller systems, in frame order
	tool.AddSystem(player.NewSpawn(world, player.SpawnConfig{
		X:             float32(cfg.World.SpawnX),
		Y:             float32(cfg.World.SpawnY),
		Size:          float32(cfg.Player.Size),
		ProbeDistance: float32(cfg.Player.ProbeDistance),
		TileSize:      float32(cfg.World.TileSize),
		ChunkSize:     cfg.World.ChunkSize,
	}))
	tool.AddSystem(player.NewInput(world, keys, player.InputConfig{
		MoveSpeed:    cfg.Derived.MoveSpeed,
		JumpImpulse:  cfg.Derived.JumpImpulse,
		VelocityLerp: float32(cfg.Player.VelocityLerp),
	}))
	tool.AddSystem(player.NewGravity(world, player.GravityConfig{
		Accel:    cfg.Derived.Gravity,
		Terminal: float32(cfg.Physics.TerminalVelocity),
		DT:       float32(cfg.Physics.DT),
	}))
	tool.AddSystem(player.NewGrounded(world))
	tool.AddSystem(player.NewRotate(world, player.RotateConfig{
		TumbleRate:  float32(cfg.Player.TumbleRate),
		LandingLerp: float32(cfg.Player.LandingLerp),
		DT:          float32(cfg.Physics.DT),
	}))
	tool.AddSystem(player.NewChunkTracker(world, float32(cfg.World.TileSize), cfg.World.ChunkSize))

	// The signal probe must observe streaming signals before the manager
	// drains them
	tool.AddSystem(newSignalProbe(g.collector))
	tool.AddSystem(g.manager)
	tool.AddSystem(solver)
	tool.AddSystem(newStatsSystem(g))

	tool.Initialize()

	// Rendering
	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight,
			float32(cfg.World.SpawnX), float32(cfg.World.SpawnY))
		g.renderer = renderer.New(world, float32(cfg.World.TileSize))
		g.inspector = inspector.NewInspector(world, int32(g.screenWidth))
	}

	slog.Info("game initialized",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"tile_size", cfg.World.TileSize,
		"chunk_size", cfg.World.ChunkSize,
		"load_radius", cfg.World.LoadRadius,
	)

	return g
}

// World returns the underlying ECS world.
func (g *Game) World() *ecs.World {
	return &g.app.World
}

// Keys returns the active keyboard. In headless mode this is the scripted
// keyboard, so callers can drive the player programmatically.
func (g *Game) Keys() input.Keyboard {
	return g.keys
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Unload finalizes systems and closes output files.
func (g *Game) Unload() {
	g.app.Finalize()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
