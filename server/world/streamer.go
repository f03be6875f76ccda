package world

import (
	"cmp"
	"slices"

	"github.com/brentp/intintmap"
	"github.com/go-gl/mathgl/mgl64"
)

// ChunkState is the streaming state of a single chunk position.
type ChunkState int

const (
	// StateUnknown is the state of a position that was never required, or whose chunk was evicted from the
	// cache.
	StateUnknown ChunkState = iota
	// StatePending is the state of a position queued for or undergoing generation.
	StatePending
	// StateResident is the state of a position whose chunk is in the Store.
	StateResident
	// StateCached is the state of a position whose chunk was unloaded into the eviction cache.
	StateCached
)

// String ...
func (s ChunkState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResident:
		return "resident"
	case StateCached:
		return "cached"
	default:
		return "unknown"
	}
}

// request is a position in the required set along with its distance from the centre.
type request struct {
	pos      ChunkPos
	priority int64
}

// Streamer keeps the resident chunks of a Store in line with the area around a moving viewpoint. Chunks that
// leave the area are moved into a Cache, and chunks that enter it are restored from the Cache or generated
// by the Pool, nearest first.
//
// A Streamer is not safe for concurrent use.
type Streamer struct {
	store   *Store
	cache   *Cache
	pool    *Pool
	metrics *Metrics

	verticalRadius int
	verticalWeight int64
	tasksPerFrame  int

	valid    bool
	centre   ChunkPos
	radius   int
	required *intintmap.Map
	requests []request
}

// StreamerConfig holds the parameters of a Streamer.
type StreamerConfig struct {
	// VerticalRadius is the maximum distance in chunks from the centre on the Y axis.
	VerticalRadius int
	// VerticalWeight scales the squared Y distance in the radius check, flattening the required area.
	VerticalWeight int
	// TasksPerFrame is the maximum amount of generation tasks handed to workers per Update. 0 or less hands
	// over all of them.
	TasksPerFrame int
}

// NewStreamer creates a Streamer that manages the Store passed.
func NewStreamer(conf StreamerConfig, store *Store, cache *Cache, pool *Pool, metrics *Metrics) *Streamer {
	return &Streamer{
		store:          store,
		cache:          cache,
		pool:           pool,
		metrics:        metrics,
		verticalRadius: max(conf.VerticalRadius, 0),
		verticalWeight: int64(max(conf.VerticalWeight, 1)),
		tasksPerFrame:  conf.TasksPerFrame,
		required:       intintmap.New(64, 0.6),
	}
}

// Update runs a single streaming pass for a viewpoint and a horizontal radius in chunks. Chunks that are no
// longer required are unloaded into the cache, queued tasks that are no longer required are dropped, and
// required chunks that are missing are restored from the cache or queued for generation. Finally, up to
// TasksPerFrame of the nearest queued tasks are handed to the workers.
//
// Calling Update again with the same viewpoint and radius changes nothing besides dispatching more queued
// tasks.
func (s *Streamer) Update(viewpoint mgl64.Vec3, radius int) {
	centre := ChunkPosFromVec3(viewpoint)
	if !s.valid || centre != s.centre || radius != s.radius {
		s.enumerate(centre, radius)
	}

	for _, pos := range s.store.Positions() {
		if s.Required(pos) {
			continue
		}
		c, ok := s.store.Remove(pos)
		if !ok {
			continue
		}
		s.metrics.IncUnloaded()
		if _, evicted := s.cache.Put(pos, c); evicted {
			s.metrics.IncCacheEvictions()
		}
	}

	s.pool.Retain(s.Required)
	for _, r := range s.requests {
		if s.store.Resident(r.pos) || s.store.Pending(r.pos) {
			continue
		}
		if c, ok := s.cache.Take(r.pos); ok {
			s.store.Insert(r.pos, c)
			s.metrics.IncCacheHits()
			continue
		}
		if s.pool.Submit(r.pos) {
			s.metrics.IncSubmitted()
		}
	}
	s.pool.Sort(s.compare)
	s.pool.Drain(s.tasksPerFrame)

	s.metrics.SetResident(s.store.Len())
	s.metrics.SetQueued(s.pool.Queued())
}

// enumerate rebuilds the required set around the centre passed.
func (s *Streamer) enumerate(centre ChunkPos, radius int) {
	s.valid, s.centre, s.radius = true, centre, radius
	s.requests = s.requests[:0]

	r := max(radius, 0)
	vr := s.verticalRadius
	rSq := int64(r) * int64(r)
	for dx := -r; dx <= r; dx++ {
		for dy := -vr; dy <= vr; dy++ {
			for dz := -r; dz <= r; dz++ {
				x, y, z := int64(dx), int64(dy), int64(dz)
				if x*x+y*y*s.verticalWeight+z*z > rSq {
					continue
				}
				pos := centre.Add(ChunkPos{int32(dx), int32(dy), int32(dz)})
				s.requests = append(s.requests, request{pos: pos, priority: x*x + y*y + z*z})
			}
		}
	}
	slices.SortFunc(s.requests, func(a, b request) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return a.pos.Compare(b.pos)
	})

	s.required = intintmap.New(max(len(s.requests), 1), 0.6)
	for _, r := range s.requests {
		s.required.Put(r.pos.Pack(), r.priority)
	}
}

// compare orders required positions near to far, breaking ties by position.
func (s *Streamer) compare(a, b ChunkPos) int {
	pa, _ := s.required.Get(a.Pack())
	pb, _ := s.required.Get(b.Pack())
	if c := cmp.Compare(pa, pb); c != 0 {
		return c
	}
	return a.Compare(b)
}

// Required reports if the position is part of the required set of the last Update.
func (s *Streamer) Required(pos ChunkPos) bool {
	_, ok := s.required.Get(pos.Pack())
	return ok
}

// RequiredPositions returns the required set of the last Update, nearest first.
func (s *Streamer) RequiredPositions() []ChunkPos {
	positions := make([]ChunkPos, len(s.requests))
	for i, r := range s.requests {
		positions[i] = r.pos
	}
	return positions
}

// Centre returns the centre chunk of the last Update.
func (s *Streamer) Centre() ChunkPos {
	return s.centre
}

// State returns the streaming state of the position passed.
func (s *Streamer) State(pos ChunkPos) ChunkState {
	switch {
	case s.store.Resident(pos):
		return StateResident
	case s.store.Pending(pos):
		return StatePending
	case s.cache.Contains(pos):
		return StateCached
	default:
		return StateUnknown
	}
}
