package world

import (
	"sync"
)

// Metrics tracks streaming counters for observability. A nil *Metrics is valid and records nothing.
type Metrics struct {
	mu sync.Mutex

	generated        uint64
	cacheHits        uint64
	cacheEvictions   uint64
	unloaded         uint64
	submitted        uint64
	generationPanics uint64

	resident int
	queued   int
}

// MetricsSnapshot is a point in time copy of Metrics.
type MetricsSnapshot struct {
	// Generated is the amount of chunks committed by the generator.
	Generated uint64
	// CacheHits is the amount of chunks restored from the eviction cache instead of being generated.
	CacheHits uint64
	// CacheEvictions is the amount of chunks dropped from a full eviction cache.
	CacheEvictions uint64
	// Unloaded is the amount of chunks removed from the resident set.
	Unloaded uint64
	// Submitted is the amount of generation tasks accepted by the pool.
	Submitted uint64
	// GenerationPanics is the amount of generation tasks that panicked.
	GenerationPanics uint64

	Resident int
	Queued   int
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) add(f func(m *Metrics)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	f(m)
	m.mu.Unlock()
}

// IncGenerated increments the generated chunk counter.
func (m *Metrics) IncGenerated() { m.add(func(m *Metrics) { m.generated++ }) }

// IncCacheHits increments the cache hit counter.
func (m *Metrics) IncCacheHits() { m.add(func(m *Metrics) { m.cacheHits++ }) }

// IncCacheEvictions increments the cache eviction counter.
func (m *Metrics) IncCacheEvictions() { m.add(func(m *Metrics) { m.cacheEvictions++ }) }

// IncUnloaded increments the unloaded chunk counter.
func (m *Metrics) IncUnloaded() { m.add(func(m *Metrics) { m.unloaded++ }) }

// IncSubmitted increments the submitted task counter.
func (m *Metrics) IncSubmitted() { m.add(func(m *Metrics) { m.submitted++ }) }

// IncGenerationPanics increments the generator panic counter.
func (m *Metrics) IncGenerationPanics() { m.add(func(m *Metrics) { m.generationPanics++ }) }

// SetResident stores the current resident chunk gauge.
func (m *Metrics) SetResident(n int) { m.add(func(m *Metrics) { m.resident = n }) }

// SetQueued stores the current queued task gauge.
func (m *Metrics) SetQueued(n int) { m.add(func(m *Metrics) { m.queued = n }) }

// Snapshot returns a copy of all counters and gauges.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Generated:        m.generated,
		CacheHits:        m.cacheHits,
		CacheEvictions:   m.cacheEvictions,
		Unloaded:         m.unloaded,
		Submitted:        m.submitted,
		GenerationPanics: m.generationPanics,
		Resident:         m.resident,
		Queued:           m.queued,
	}
}
