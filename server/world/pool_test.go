package world

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/world/chunk"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stoneFloor fills the lowest voxel layer of every chunk with stone.
var stoneFloor = GeneratorFunc(func(_ ChunkPos, c *chunk.Chunk) {
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			c.SetBlock(x, 0, z, block.Stone)
		}
	}
})

func TestPoolGeneratesAndCommits(t *testing.T) {
	store := NewStore()
	m := NewMetrics()
	p := NewPool(store, stoneFloor, 2, discardLogger(), m)
	t.Cleanup(p.Close)

	pos := ChunkPos{1, -1, 2}
	if !p.Submit(pos) {
		t.Fatalf("first submit must be accepted")
	}
	if p.Submit(pos) {
		t.Fatalf("submit of a pending position must be rejected")
	}
	if n := p.Drain(0); n != 1 {
		t.Fatalf("expected one task dispatched, got %d", n)
	}
	p.Wait()

	c, ok := store.Chunk(pos)
	if !ok {
		t.Fatalf("chunk %v was not committed", pos)
	}
	if c.Origin() != pos.Origin() || c.Block(3, 0, 3) != block.Stone {
		t.Fatalf("committed chunk has unexpected contents")
	}
	if store.Pending(pos) {
		t.Fatalf("pending mark survived commit")
	}
	if p.Submit(pos) {
		t.Fatalf("submit of a resident position must be rejected")
	}
	if s := m.Snapshot(); s.Generated != 1 {
		t.Fatalf("expected 1 generated chunk, got %d", s.Generated)
	}
}

func TestPoolNoDuplicateInFlight(t *testing.T) {
	var (
		mu      sync.Mutex
		running = make(map[ChunkPos]int)
		dup     atomic.Bool
	)
	release := make(chan struct{})
	gen := GeneratorFunc(func(pos ChunkPos, _ *chunk.Chunk) {
		mu.Lock()
		running[pos]++
		if running[pos] > 1 {
			dup.Store(true)
		}
		mu.Unlock()
		<-release
		mu.Lock()
		running[pos]--
		mu.Unlock()
	})

	store := NewStore()
	p := NewPool(store, gen, 4, discardLogger(), nil)
	t.Cleanup(p.Close)

	positions := []ChunkPos{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for _, pos := range positions {
			p.Submit(pos)
		}
		p.Drain(0)
	}
	if p.InFlight() > len(positions) {
		t.Errorf("%d tasks in flight for %d positions", p.InFlight(), len(positions))
	}
	close(release)
	p.Wait()

	if dup.Load() {
		t.Fatalf("a position was generated twice at once")
	}
	if store.Len() != len(positions) {
		t.Fatalf("expected %d resident chunks, got %d", len(positions), store.Len())
	}
}

func TestPoolRetainClearsPending(t *testing.T) {
	store := NewStore()
	p := NewPool(store, stoneFloor, 1, discardLogger(), nil)
	t.Cleanup(p.Close)

	keep, drop := ChunkPos{0, 0, 0}, ChunkPos{9, 9, 9}
	p.Submit(keep)
	p.Submit(drop)
	p.Retain(func(pos ChunkPos) bool { return pos == keep })

	if p.Queued() != 1 {
		t.Fatalf("expected 1 queued task, got %d", p.Queued())
	}
	if store.Pending(drop) {
		t.Fatalf("dropped position is still pending")
	}
	if !store.Pending(keep) {
		t.Fatalf("kept position lost its pending mark")
	}
	if !p.Submit(drop) {
		t.Fatalf("dropped position must be submittable again")
	}
}

func TestPoolSortOrdersBacklog(t *testing.T) {
	store := NewStore()
	p := NewPool(store, stoneFloor, 1, discardLogger(), nil)
	t.Cleanup(p.Close)

	far, near := ChunkPos{5, 0, 0}, ChunkPos{1, 0, 0}
	p.Submit(far)
	p.Submit(near)
	p.Sort(func(a, b ChunkPos) int { return a.Compare(b) })
	if p.queue[0] != near {
		t.Fatalf("expected %v first, got %v", near, p.queue[0])
	}
	if n := p.Drain(1); n != 1 || p.Queued() != 1 || p.queue[0] != far {
		t.Fatalf("Drain(1) must dispatch only the head of the queue")
	}
}

func TestPoolRecoversGeneratorPanic(t *testing.T) {
	store := NewStore()
	m := NewMetrics()
	var calls atomic.Int32
	gen := GeneratorFunc(func(ChunkPos, *chunk.Chunk) {
		if calls.Add(1) == 1 {
			panic("boom")
		}
	})
	p := NewPool(store, gen, 1, discardLogger(), m)
	t.Cleanup(p.Close)

	pos := ChunkPos{2, 2, 2}
	p.Submit(pos)
	p.Drain(0)
	p.Wait()

	if store.Resident(pos) || store.Pending(pos) {
		t.Fatalf("panicking generation must leave the position unknown")
	}
	if s := m.Snapshot(); s.GenerationPanics != 1 {
		t.Fatalf("expected 1 generation panic, got %d", s.GenerationPanics)
	}

	// The pool keeps working and the position can be generated again.
	if !p.Submit(pos) {
		t.Fatalf("position must be submittable after a panic")
	}
	p.Drain(0)
	p.Wait()
	if !store.Resident(pos) {
		t.Fatalf("second generation attempt did not commit")
	}
}

func TestPoolDispatchAfterClosePanics(t *testing.T) {
	store := NewStore()
	p := NewPool(store, stoneFloor, 1, discardLogger(), nil)
	p.Close()

	p.Submit(ChunkPos{})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPoolClosed) {
			t.Fatalf("expected a panic wrapping ErrPoolClosed, got %v", r)
		}
	}()
	p.Drain(0)
	t.Fatalf("Drain on a closed pool returned")
}

func TestPoolCloseWaitsForRunningTasks(t *testing.T) {
	store := NewStore()
	slow := GeneratorFunc(func(ChunkPos, *chunk.Chunk) { time.Sleep(20 * time.Millisecond) })
	p := NewPool(store, slow, 2, discardLogger(), nil)

	p.Submit(ChunkPos{0, 0, 0})
	p.Submit(ChunkPos{1, 0, 0})
	p.Submit(ChunkPos{2, 0, 0})
	p.Drain(2)
	p.Close()

	if store.Len() != 2 {
		t.Fatalf("expected both dispatched chunks to be committed, got %d", store.Len())
	}
	if store.PendingLen() != 0 {
		t.Fatalf("expected no pending positions after close, got %d", store.PendingLen())
	}
}
