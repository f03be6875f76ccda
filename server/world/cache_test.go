package world

import (
	"testing"

	"github.com/terrastream/terra/server/world/chunk"
)

func TestCacheEvictsOldestFirst(t *testing.T) {
	c := NewCache(2)
	a, b, d := ChunkPos{1, 0, 0}, ChunkPos{2, 0, 0}, ChunkPos{3, 0, 0}
	if _, ok := c.Put(a, chunk.New(a.Origin())); ok {
		t.Fatalf("unexpected eviction")
	}
	if _, ok := c.Put(b, chunk.New(b.Origin())); ok {
		t.Fatalf("unexpected eviction")
	}
	evicted, ok := c.Put(d, chunk.New(d.Origin()))
	if !ok || evicted != a {
		t.Fatalf("expected %v to be evicted, got %v (%v)", a, evicted, ok)
	}
	if c.Contains(a) || !c.Contains(b) || !c.Contains(d) || c.Len() != 2 {
		t.Fatalf("unexpected cache contents after eviction")
	}
}

func TestCacheTake(t *testing.T) {
	c := NewCache(2)
	a, b, d := ChunkPos{1, 0, 0}, ChunkPos{2, 0, 0}, ChunkPos{3, 0, 0}
	ch := chunk.New(a.Origin())
	c.Put(a, ch)
	c.Put(b, chunk.New(b.Origin()))
	if got, ok := c.Take(a); !ok || got != ch {
		t.Fatalf("expected to take back the chunk put in")
	}
	if _, ok := c.Take(a); ok {
		t.Fatalf("chunk was taken twice")
	}
	// a no longer counts towards the capacity.
	if _, ok := c.Put(d, chunk.New(d.Origin())); ok {
		t.Fatalf("unexpected eviction after take")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache(-1)
	pos := ChunkPos{4, 4, 4}
	if evicted, ok := c.Put(pos, chunk.New(pos.Origin())); !ok || evicted != pos {
		t.Fatalf("disabled cache must evict immediately")
	}
	if c.Len() != 0 {
		t.Fatalf("disabled cache holds %d chunks", c.Len())
	}
}
