package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
	"github.com/terrastream/terra/server/entity"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/generator/terra"
	"gopkg.in/yaml.v3"
)

// Config contains options for creating a Server.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Generator is the world.Generator used to fill new chunks. If nil, the
	// terrain generator is used with its default configuration and seed 0.
	Generator world.Generator
	// Radius is the horizontal distance in chunks around the viewpoint that
	// chunks are loaded at. If 0 or less, 4 is used.
	Radius int
	// Workers is the number of goroutines generating chunks. If set to 0 or
	// lower, the worker count is derived from the host's available CPUs.
	Workers int
	// CacheSize, TasksPerFrame, VerticalRadius and VerticalWeight are passed
	// to the world.Config of the Server's world. See world.Config for the
	// meaning of their zero values.
	CacheSize      int
	TasksPerFrame  int
	VerticalRadius int
	VerticalWeight int
	// Gravity is the vertical acceleration of the controlled body in
	// blocks/s². If 0, -9.81 is used.
	Gravity float64
	// TerminalVelocity is the lowest vertical velocity of the controlled body
	// in blocks/s. If 0, -54 is used.
	TerminalVelocity float64
	// BodySize is the extent of the controlled body. If any component is 0 or
	// less, a body of 0.6x1.8x0.6 blocks is used.
	BodySize mgl64.Vec3
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Generator == nil {
		conf.Generator = terra.New(terra.DefaultConfig(0))
	}
	if conf.Radius <= 0 {
		conf.Radius = 4
	}
	if conf.Gravity == 0 {
		conf.Gravity = -9.81
	}
	if conf.TerminalVelocity == 0 {
		conf.TerminalVelocity = -54
	}
	if conf.BodySize[0] <= 0 || conf.BodySize[1] <= 0 || conf.BodySize[2] <= 0 {
		conf.BodySize = mgl64.Vec3{0.6, 1.8, 0.6}
	}
	return conf
}

// New creates a Server using fields of conf. The world of the Server starts
// out empty: chunks are loaded by calling Server.StreamUpdate or Server.Frame.
func (conf Config) New() *Server {
	conf = conf.withDefaults()

	movement := entity.NewMovementComputer()
	movement.Gravity, movement.TerminalVelocity = conf.Gravity, conf.TerminalVelocity

	srv := &Server{
		conf:     conf,
		movement: movement,
		body:     entity.NewBody(mgl64.Vec3{}, conf.BodySize),
		world: world.Config{
			Log:            conf.Log,
			Generator:      conf.Generator,
			Workers:        conf.Workers,
			CacheSize:      conf.CacheSize,
			TasksPerFrame:  conf.TasksPerFrame,
			VerticalRadius: conf.VerticalRadius,
			VerticalWeight: conf.VerticalWeight,
		}.New(),
	}
	conf.Log.Info("Server created.", "radius", conf.Radius, "body", srv.body.ID)
	return srv
}

// UserConfig is the user configuration of a Server. It holds settings that
// affect the generated terrain, the streaming of chunks and the physics of
// the controlled body. UserConfig may be serialised and can be converted to a
// Config by calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed controls the procedural generation of the terrain.
		Seed int64 `yaml:"seed"`
		// SeaLevel is the height below which empty space above the terrain is
		// filled with water.
		SeaLevel int `yaml:"sea_level"`
		// FloorY is the height of the bedrock floor of the world.
		FloorY int `yaml:"floor_y"`
		// Flat gives every column of the world a height of FlatHeight.
		Flat       bool `yaml:"flat"`
		FlatHeight int  `yaml:"flat_height"`
		// DisableCaves, DisableOres and DisableFeatures turn off the caves,
		// ore veins and trees of the terrain respectively.
		DisableCaves    bool `yaml:"disable_caves"`
		DisableOres     bool `yaml:"disable_ores"`
		DisableFeatures bool `yaml:"disable_features"`
	} `yaml:"world"`
	Streaming struct {
		// Radius is the horizontal view distance in chunks.
		Radius int `yaml:"radius"`
		// VerticalRadius is the view distance in chunks below and above the
		// viewpoint.
		VerticalRadius int `yaml:"vertical_radius"`
		// VerticalWeight scales vertical chunk distances in the radius check.
		VerticalWeight int `yaml:"vertical_weight"`
		// CacheSize is the amount of unloaded chunks kept for reuse. Set to -1
		// to drop unloaded chunks immediately.
		CacheSize int `yaml:"cache_size"`
		// TasksPerFrame is the maximum amount of generation tasks started per
		// frame. Set to -1 to start every queued task at once.
		TasksPerFrame int `yaml:"tasks_per_frame"`
		// Workers is the number of background workers generating chunks. Set
		// to 0 to select a default based on the host's CPU count.
		Workers int `yaml:"workers"`
	} `yaml:"streaming"`
	Physics struct {
		// Gravity is the vertical acceleration of the body in blocks/s².
		Gravity float64 `yaml:"gravity"`
		// TerminalVelocity is the lowest vertical velocity of the body.
		TerminalVelocity float64 `yaml:"terminal_velocity"`
		// BodyWidth and BodyHeight are the dimensions of the body.
		BodyWidth  float64 `yaml:"body_width"`
		BodyHeight float64 `yaml:"body_height"`
	} `yaml:"physics"`
	Log struct {
		// Level is the minimum level of log messages: debug, info, warn or
		// error.
		Level string `yaml:"level"`
	} `yaml:"log"`
}

var (
	// ErrInvalidConfig is returned by UserConfig.Config if a value of the
	// UserConfig is out of range.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownFormat is returned by LoadUserConfig for files that are
	// neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown config format")
)

// Config converts a UserConfig to a Config, so that it may be used for
// creating a Server. An error wrapping ErrInvalidConfig is returned if any of
// the values of the UserConfig is out of range. If log is nil, a text logger
// writing to stderr at the configured level is created.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	level, err := uc.Level()
	if err != nil {
		return Config{}, err
	}
	switch {
	case uc.Streaming.Radius <= 0:
		return Config{}, fmt.Errorf("%w: streaming radius must be positive, got %v", ErrInvalidConfig, uc.Streaming.Radius)
	case uc.Streaming.VerticalRadius < 0:
		return Config{}, fmt.Errorf("%w: vertical radius must not be negative, got %v", ErrInvalidConfig, uc.Streaming.VerticalRadius)
	case uc.Streaming.VerticalWeight < 0:
		return Config{}, fmt.Errorf("%w: vertical weight must not be negative, got %v", ErrInvalidConfig, uc.Streaming.VerticalWeight)
	case uc.Streaming.Workers < 0:
		return Config{}, fmt.Errorf("%w: workers must not be negative, got %v", ErrInvalidConfig, uc.Streaming.Workers)
	case uc.Physics.Gravity > 0:
		return Config{}, fmt.Errorf("%w: gravity must point down, got %v", ErrInvalidConfig, uc.Physics.Gravity)
	case uc.Physics.TerminalVelocity > 0:
		return Config{}, fmt.Errorf("%w: terminal velocity must point down, got %v", ErrInvalidConfig, uc.Physics.TerminalVelocity)
	case uc.Physics.BodyWidth <= 0 || uc.Physics.BodyHeight <= 0:
		return Config{}, fmt.Errorf("%w: body size must be positive, got %vx%v", ErrInvalidConfig, uc.Physics.BodyWidth, uc.Physics.BodyHeight)
	case uc.World.FloorY > uc.World.SeaLevel:
		return Config{}, fmt.Errorf("%w: floor y %v above sea level %v", ErrInvalidConfig, uc.World.FloorY, uc.World.SeaLevel)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	gen := terra.DefaultConfig(uc.World.Seed)
	gen.SeaLevel, gen.FloorY = uc.World.SeaLevel, uc.World.FloorY
	gen.DisableCaves, gen.DisableOres, gen.DisableFeatures = uc.World.DisableCaves, uc.World.DisableOres, uc.World.DisableFeatures
	if uc.World.Flat {
		h := uc.World.FlatHeight
		gen.FlatHeight = &h
	}

	// world.Config reads 0 as unset and negative values as the viewpoint layer only.
	verticalRadius := uc.Streaming.VerticalRadius
	if verticalRadius == 0 {
		verticalRadius = -1
	}
	return Config{
		Log:              log,
		Generator:        terra.New(gen),
		Radius:           uc.Streaming.Radius,
		Workers:          uc.Streaming.Workers,
		CacheSize:        uc.Streaming.CacheSize,
		TasksPerFrame:    uc.Streaming.TasksPerFrame,
		VerticalRadius:   verticalRadius,
		VerticalWeight:   uc.Streaming.VerticalWeight,
		Gravity:          uc.Physics.Gravity,
		TerminalVelocity: uc.Physics.TerminalVelocity,
		BodySize:         mgl64.Vec3{uc.Physics.BodyWidth, uc.Physics.BodyHeight, uc.Physics.BodyWidth},
	}, nil
}

// Level parses the log level of the UserConfig. An empty level is treated as
// info.
func (uc UserConfig) Level() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(uc.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(uc.Log.Level))); err != nil {
		return level, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 0
	c.World.SeaLevel = 0
	c.World.FloorY = -64
	c.World.FlatHeight = 4
	c.Streaming.Radius = 4
	c.Streaming.VerticalRadius = 2
	c.Streaming.VerticalWeight = 4
	c.Streaming.CacheSize = 64
	c.Streaming.TasksPerFrame = 4
	c.Physics.Gravity = -9.81
	c.Physics.TerminalVelocity = -54
	c.Physics.BodyWidth = 0.6
	c.Physics.BodyHeight = 1.8
	c.Log.Level = "info"
	return c
}

// LoadUserConfig loads the UserConfig stored in the file at the path passed.
// Files ending in .yaml or .yml are decoded as YAML, all others as TOML. Keys
// missing from the file keep their value from DefaultConfig. If the file does
// not exist yet, it is created holding DefaultConfig.
func LoadUserConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return c, errors.New("config path must not be empty")
	}
	unmarshal, marshal, err := codec(path)
	if err != nil {
		return c, err
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := writeUserConfig(path, c, marshal); err != nil {
			return c, err
		}
		return c, nil
	}
	if len(contents) != 0 {
		if err := unmarshal(contents, &c); err != nil {
			return c, fmt.Errorf("decode config: %w", err)
		}
	}
	return c, nil
}

// codec returns the functions used to decode and encode the config file at
// the path passed.
func codec(path string) (func([]byte, any) error, func(any) ([]byte, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal, yaml.Marshal, nil
	case ".toml", "":
		return toml.Unmarshal, toml.Marshal, nil
	}
	return nil, nil, fmt.Errorf("%w: %v", ErrUnknownFormat, filepath.Ext(path))
}

func writeUserConfig(path string, c UserConfig, marshal func(any) ([]byte, error)) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
