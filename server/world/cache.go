package world

import (
	"slices"

	"github.com/terrastream/terra/server/world/chunk"
)

// Cache holds chunks that recently left the required set so that they can be restored without being
// generated again. It holds at most a fixed amount of chunks and evicts the one inserted earliest once it
// is full. A Cache is not safe for concurrent use: it is owned by the goroutine that streams the world.
type Cache struct {
	capacity int
	entries  map[ChunkPos]*chunk.Chunk
	order    []ChunkPos
}

// NewCache returns a Cache holding at most capacity chunks. A capacity of 0 or less disables caching.
func NewCache(capacity int) *Cache {
	return &Cache{capacity: max(capacity, 0), entries: make(map[ChunkPos]*chunk.Chunk, max(capacity, 0))}
}

// Put adds a chunk to the cache. If this pushes the cache over its capacity, the oldest entry is removed
// and returned.
func (c *Cache) Put(pos ChunkPos, ch *chunk.Chunk) (evicted ChunkPos, ok bool) {
	if c.capacity == 0 {
		return pos, true
	}
	if _, exists := c.entries[pos]; exists {
		c.entries[pos] = ch
		return ChunkPos{}, false
	}
	c.entries[pos] = ch
	c.order = append(c.order, pos)
	if len(c.order) <= c.capacity {
		return ChunkPos{}, false
	}
	evicted = c.order[0]
	c.order = slices.Delete(c.order, 0, 1)
	delete(c.entries, evicted)
	return evicted, true
}

// Take removes the chunk at the position passed from the cache and returns it.
func (c *Cache) Take(pos ChunkPos) (*chunk.Chunk, bool) {
	ch, ok := c.entries[pos]
	if !ok {
		return nil, false
	}
	delete(c.entries, pos)
	if i := slices.Index(c.order, pos); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return ch, true
}

// Contains reports if a chunk at the position passed is cached.
func (c *Cache) Contains(pos ChunkPos) bool {
	_, ok := c.entries[pos]
	return ok
}

// Len returns the amount of cached chunks.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Capacity ...
func (c *Cache) Capacity() int {
	return c.capacity
}
