package world

import (
	"log/slog"
)

// Config may be used to create a new World. It holds the generator used for the world and the parameters of
// the streaming of its chunks. Zero values are replaced with defaults when New is called.
type Config struct {
	// Log is the Logger that will be used to log errors and debug messages to.
	// If set to nil, slog.Default() is set.
	Log *slog.Logger
	// Generator fills new chunks. If nil, chunks are left empty.
	Generator Generator
	// Workers is the amount of goroutines generating chunks in parallel. If 0 or less, one less than the
	// amount of CPUs is used, with a minimum of one.
	Workers int
	// CacheSize is the maximum amount of unloaded chunks kept around for reuse. If 0, 64 is used. If
	// negative, unloaded chunks are dropped immediately.
	CacheSize int
	// TasksPerFrame is the maximum amount of generation tasks handed to workers per StreamUpdate. If 0, 4
	// is used. If negative, every queued task is handed over at once.
	TasksPerFrame int
	// VerticalRadius is the maximum distance in chunks below and above the viewpoint that chunks are loaded
	// at. If 0, 2 is used. If negative, only the layer of the viewpoint is loaded.
	VerticalRadius int
	// VerticalWeight multiplies the squared vertical chunk distance in the radius check. If 0 or less, 4 is
	// used.
	VerticalWeight int
	// Liquids configures fluid simulation.
	Liquids LiquidConfig
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Generator == nil {
		conf.Generator = NopGenerator{}
	}
	if conf.CacheSize == 0 {
		conf.CacheSize = 64
	}
	if conf.TasksPerFrame == 0 {
		conf.TasksPerFrame = 4
	}
	if conf.VerticalRadius == 0 {
		conf.VerticalRadius = 2
	}
	if conf.VerticalWeight <= 0 {
		conf.VerticalWeight = 4
	}
	return conf
}

// New creates a new World using the Config conf. The World starts out without any chunks: StreamUpdate must
// be called to load the area around a viewpoint.
func (conf Config) New() *World {
	conf = conf.withDefaults()

	m := NewMetrics()
	store := NewStore()
	cache := NewCache(conf.CacheSize)
	pool := NewPool(store, conf.Generator, conf.Workers, conf.Log, m)
	w := &World{
		conf:    conf,
		store:   store,
		cache:   cache,
		pool:    pool,
		metrics: m,
		streamer: NewStreamer(StreamerConfig{
			VerticalRadius: conf.VerticalRadius,
			VerticalWeight: conf.VerticalWeight,
			TasksPerFrame:  conf.TasksPerFrame,
		}, store, cache, pool, m),
		liquids: conf.Liquids.NewSystem(conf.Log),
	}
	conf.Log.Debug("world created",
		"workers", pool.Workers(),
		"cache_size", cache.Capacity(),
		"tasks_per_frame", conf.TasksPerFrame,
		"vertical_radius", conf.VerticalRadius,
	)
	return w
}
