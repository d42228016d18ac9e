// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds tile world and chunk streaming parameters.
type WorldConfig struct {
	TileSize   int     `yaml:"tile_size"`   // Tile edge length in pixels
	ChunkSize  int     `yaml:"chunk_size"`  // Chunk edge length in tiles
	LoadRadius int     `yaml:"load_radius"` // Chunks kept loaded around the player, per axis
	SpawnX     float64 `yaml:"spawn_x"`     // Player spawn position in pixels
	SpawnY     float64 `yaml:"spawn_y"`
}

// PlayerConfig holds player controller parameters.
type PlayerConfig struct {
	Size             float64 `yaml:"size"`               // Collider edge length in pixels
	MoveSpeedTiles   float64 `yaml:"move_speed_tiles"`   // Target horizontal speed in tiles/s
	JumpImpulseTiles float64 `yaml:"jump_impulse_tiles"` // Jump velocity in tiles/s
	VelocityLerp     float64 `yaml:"velocity_lerp"`      // Per-frame blend toward target velocity
	TumbleRate       float64 `yaml:"tumble_rate"`        // Airborne sprite spin in rad/s
	LandingLerp      float64 `yaml:"landing_lerp"`       // Per-frame blend toward a right angle
	ProbeDistance    float64 `yaml:"probe_distance"`     // Ground probe cast length in pixels
}

// PhysicsConfig holds solver parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                // Seconds per tick
	GravityAccel     float64 `yaml:"gravity_accel"`     // Downward acceleration in tiles/s^2
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Max fall speed in pixels/s
	Substeps         int     `yaml:"substeps"`          // Solver substeps per tick
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in seconds
}

// DerivedConfig holds values computed from the raw config after loading.
type DerivedConfig struct {
	MoveSpeed   float32 // pixels/s
	JumpImpulse float32 // pixels/s
	Gravity     float32 // pixels/s^2, positive magnitude
}

var cfg *Config

// Init loads the configuration. An empty path uses the embedded defaults;
// otherwise the file at path overrides them.
func Init(path string) error {
	c := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, c); err != nil {
		return fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := c.validate(); err != nil {
		return err
	}
	c.computeDerived()
	cfg = c
	return nil
}

// Cfg returns the loaded configuration. Init must have been called.
func Cfg() *Config {
	if cfg == nil {
		panic("config.Cfg called before config.Init")
	}
	return cfg
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.World.ChunkSize <= 0 {
		return fmt.Errorf("world.chunk_size must be positive, got %d", c.World.ChunkSize)
	}
	if c.World.LoadRadius < 0 {
		return fmt.Errorf("world.load_radius must not be negative, got %d", c.World.LoadRadius)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %f", c.Physics.DT)
	}
	if c.Physics.Substeps <= 0 {
		return fmt.Errorf("physics.substeps must be positive, got %d", c.Physics.Substeps)
	}
	if c.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("physics.terminal_velocity must be positive, got %f", c.Physics.TerminalVelocity)
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("player.size must be positive, got %f", c.Player.Size)
	}
	if c.Player.VelocityLerp <= 0 || c.Player.VelocityLerp > 1 {
		return fmt.Errorf("player.velocity_lerp must be in (0, 1], got %f", c.Player.VelocityLerp)
	}
	return nil
}

func (c *Config) computeDerived() {
	ts := float64(c.World.TileSize)
	c.Derived.MoveSpeed = float32(c.Player.MoveSpeedTiles * ts)
	c.Derived.JumpImpulse = float32(c.Player.JumpImpulseTiles * ts)
	c.Derived.Gravity = float32(c.Physics.GravityAccel * ts)
}
